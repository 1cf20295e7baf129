// Package common contains various helper functions.
package common

import (
	"encoding/base64"
	"errors"
)

var (
	// ErrOutOfRange is returned when a crop starts past the end of a view.
	ErrOutOfRange = errors.New("view crop out of range")
	ErrBadBase64  = errors.New("invalid base64 input")
)

// ByteView is a non-owning window onto a byte buffer. Cropping a view never
// copies, the result aliases the same backing array.
type ByteView []byte

// Len returns the number of bytes in the view.
func (v ByteView) Len() int { return len(v) }

// Bytes returns the view as a plain slice.
func (v ByteView) Bytes() []byte { return v }

// String returns the raw bytes of the view as a string.
func (v ByteView) String() string { return string(v) }

// Empty reports whether the view holds no bytes.
func (v ByteView) Empty() bool { return len(v) == 0 }

// Cropped returns the sub view [begin, min(begin+count, len)).
func (v ByteView) Cropped(begin, count int) (ByteView, error) {
	if begin < 0 || count < 0 || begin > len(v) {
		return nil, ErrOutOfRange
	}
	end := len(v)
	if count < end-begin {
		end = begin + count
	}
	return v[begin:end:end], nil
}

// CroppedFrom returns the sub view [begin, len).
func (v ByteView) CroppedFrom(begin int) (ByteView, error) {
	if begin < 0 || begin > len(v) {
		return nil, ErrOutOfRange
	}
	return v[begin:], nil
}

// CopyBytes returns an exact copy of the provided bytes.
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)

	return
}

// TrimLeftZeroes returns a subslice of s without leading zeroes
func TrimLeftZeroes(s []byte) []byte {
	idx := 0
	for ; idx < len(s); idx++ {
		if s[idx] != 0 {
			break
		}
	}
	return s[idx:]
}

// ToBase64 encodes b with the standard padded alphabet.
func ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// FromBase64 decodes a standard padded base64 string.
func FromBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrBadBase64
	}
	return b, nil
}
