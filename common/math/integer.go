// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package math provides integer and byte-order helpers shared by the codec.
package math

import (
	"errors"
	"math/big"
	"math/bits"

	"github.com/holiman/uint256"
)

var (
	// MaxBig160 is the largest value that fits into 160 bits.
	MaxBig160 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 160), big.NewInt(1))
	// MaxBig256 is the largest value that fits into 256 bits.
	MaxBig256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	// MaxBig512 is the largest value that fits into 512 bits.
	MaxBig512 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 512), big.NewInt(1))

	tt256 = new(big.Int).Lsh(big.NewInt(1), 256)
)

// ErrUint64Overflow is returned when a big-endian byte string is wider than 8 bytes.
var ErrUint64Overflow = errors.New("big-endian value does not fit into 64 bits")

const (
	// number of bits in a big.Word
	wordBits = 32 << (uint64(^big.Word(0)) >> 63)
	// number of bytes in a big.Word
	wordBytes = wordBits / 8
)

// BytesRequired returns the number of bytes needed to hold u without
// leading zero bytes. Zero needs no bytes at all.
// BytesRequired 返回去掉前导零之后表示 u 所需的字节数，0 需要 0 个字节。
func BytesRequired(u uint64) int {
	return (bits.Len64(u) + 7) / 8
}

// BigBytesRequired is BytesRequired for arbitrary precision integers.
// The sign of b is ignored.
func BigBytesRequired(b *big.Int) int {
	return (b.BitLen() + 7) / 8
}

// PutUint64BE writes the len(dst) least significant bytes of u into dst in
// big-endian order. Bytes of u that do not fit are dropped.
func PutUint64BE(dst []byte, u uint64) {
	for i := len(dst); i > 0; i-- {
		dst[i-1] = byte(u)
		u >>= 8
	}
}

// ReadUint64BE interprets b as a big-endian unsigned integer.
func ReadUint64BE(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, ErrUint64Overflow
	}
	var u uint64
	for _, c := range b {
		u = u<<8 | uint64(c)
	}
	return u, nil
}

// PaddedBigBytes encodes a big integer as a big-endian byte slice. The length
// of the slice is at least n bytes.
func PaddedBigBytes(bigint *big.Int, n int) []byte {
	if bigint.BitLen()/8 >= n {
		return bigint.Bytes()
	}
	ret := make([]byte, n)
	ReadBits(bigint, ret)
	return ret
}

// ReadBits encodes the absolute value of bigint as big-endian bytes. Callers must ensure
// that buf has enough space. If buf is too short the result will be incomplete.
func ReadBits(bigint *big.Int, buf []byte) {
	i := len(buf)
	for _, d := range bigint.Bits() {
		for j := 0; j < wordBytes && i > 0; j++ {
			i--
			buf[i] = byte(d)
			d >>= 8
		}
	}
}

// U2S interprets x as a 256 bit two's complement number and returns its
// signed value.
func U2S(x *uint256.Int) *big.Int {
	v := x.ToBig()
	if x.Sign() < 0 {
		return v.Sub(v, tt256)
	}
	return v
}

// S2U converts a signed integer in the range [-2^255, 2^255) into its 256
// bit two's complement representation. Values outside that range wrap.
func S2U(x *big.Int) *uint256.Int {
	v := new(big.Int).Set(x)
	if v.Sign() < 0 {
		v.Add(v, tt256)
	}
	v.And(v, MaxBig256)
	u, _ := uint256.FromBig(v)
	return u
}
