package common

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/cespare/xxhash/v2"
	"github.com/learn-bcos/go-bcos/common/hexutil"
)

// Align controls how a byte string of the wrong length is fitted into a
// fixed-width container.
type Align uint

const (
	AlignRight     Align = 0 // shorter input is left padded with zeros, longer input keeps its tail
	AlignLeft      Align = 1 // shorter input is right padded with zeros, longer input keeps its head
	FailIfTooSmall Align = 2
	FailIfTooBig   Align = 4

	// AlignExact rejects any input whose length differs from the container.
	AlignExact = FailIfTooSmall | FailIfTooBig
)

// ErrUnaligned is returned when the input length does not match the container
// width and the alignment forbids padding or truncation.
var ErrUnaligned = errors.New("input length does not match fixed width")

// FitBytes copies src into dst according to align. Bytes of dst that src
// does not cover are left untouched, so dst should be zeroed by the caller.
func FitBytes(dst, src []byte, align Align) error {
	n := len(dst)
	switch {
	case len(src) == n:
		copy(dst, src)
	case len(src) < n:
		if align&FailIfTooSmall != 0 {
			return ErrUnaligned
		}
		if align&AlignLeft != 0 {
			copy(dst, src)
		} else {
			copy(dst[n-len(src):], src)
		}
	default:
		if align&FailIfTooBig != 0 {
			return ErrUnaligned
		}
		if align&AlignLeft != 0 {
			copy(dst, src[:n])
		} else {
			copy(dst, src[len(src)-n:])
		}
	}
	return nil
}

// fitHex decodes s leniently and fits it into dst.
func fitHex(dst []byte, s string, align Align) error {
	b, err := hexutil.FromHex(s)
	if err != nil {
		return err
	}
	return FitBytes(dst, b, align)
}

func bitNot(dst, a []byte) {
	for i := range dst {
		dst[i] = ^a[i]
	}
}

func bitAnd(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

func bitOr(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

func bitXor(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

func fillRandom(b []byte) {
	if _, err := rand.Read(b); err != nil {
		panic("common: system randomness unavailable: " + err.Error())
	}
}

// sum64 is the content hash of a container, used for sharding and
// duplicate detection.
func sum64(b []byte) uint64 {
	return xxhash.Sum64(b)
}

func bigFromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// abridged renders the first four bytes of b followed by an ellipsis.
func abridged(b []byte) string {
	if len(b) <= 4 {
		return hex.EncodeToString(b)
	}
	return hex.EncodeToString(b[:4]) + "…"
}

// formatFixed implements fmt.Formatter for the fixed-width types.
func formatFixed(s fmt.State, c rune, b []byte) {
	hexb := make([]byte, 2+len(b)*2)
	copy(hexb, "0x")
	hex.Encode(hexb[2:], b)

	switch c {
	case 'x', 'X':
		if !s.Flag('#') {
			hexb = hexb[2:]
		}
		if c == 'X' {
			hexb = bytesToUpper(hexb)
		}
		fallthrough
	case 'v', 's':
		s.Write(hexb)
	case 'q':
		q := []byte{'"'}
		s.Write(q)
		s.Write(hexb)
		s.Write(q)
	case 'd':
		fmt.Fprint(s, bigFromBytes(b))
	default:
		fmt.Fprintf(s, "%%!%c(fixed=%x)", c, b)
	}
}

func bytesToUpper(b []byte) []byte {
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return b
}
