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

package math

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

func TestBytesRequired(t *testing.T) {
	tests := []struct {
		in   uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{0xff, 1},
		{0x100, 2},
		{0x123456, 3},
		{1<<56 - 1, 7},
		{^uint64(0), 8},
	}
	for _, test := range tests {
		if got := BytesRequired(test.in); got != test.want {
			t.Errorf("BytesRequired(%#x) = %d, want %d", test.in, got, test.want)
		}
	}
	if got := BigBytesRequired(MaxBig512); got != 64 {
		t.Errorf("BigBytesRequired(MaxBig512) = %d", got)
	}
}

func TestUint64BE(t *testing.T) {
	buf := make([]byte, 3)
	PutUint64BE(buf, 0x123456)
	if !bytes.Equal(buf, []byte{0x12, 0x34, 0x56}) {
		t.Errorf("PutUint64BE wrote %x", buf)
	}
	v, err := ReadUint64BE(buf)
	if err != nil || v != 0x123456 {
		t.Errorf("ReadUint64BE = %#x, %v", v, err)
	}
	if _, err := ReadUint64BE(make([]byte, 9)); err != ErrUint64Overflow {
		t.Errorf("expected overflow error, got %v", err)
	}
	if v, _ := ReadUint64BE(nil); v != 0 {
		t.Errorf("empty input decoded to %d", v)
	}
}

func TestPaddedBigBytes(t *testing.T) {
	tests := []struct {
		num    *big.Int
		n      int
		result []byte
	}{
		{num: big.NewInt(0), n: 4, result: []byte{0, 0, 0, 0}},
		{num: big.NewInt(1), n: 4, result: []byte{0, 0, 0, 1}},
		{num: big.NewInt(512), n: 4, result: []byte{0, 0, 2, 0}},
		{num: MaxBig256, n: 4, result: MaxBig256.Bytes()},
	}
	for _, test := range tests {
		if result := PaddedBigBytes(test.num, test.n); !bytes.Equal(result, test.result) {
			t.Errorf("PaddedBigBytes(%d, %d) = %v, want %v", test.num, test.n, result, test.result)
		}
	}
}

func TestReadBits(t *testing.T) {
	check := func(input string) {
		want, _ := hex.DecodeString(input)
		n, _ := new(big.Int).SetString(input, 16)
		buf := make([]byte, len(want))
		ReadBits(n, buf)
		if !bytes.Equal(buf, want) {
			t.Errorf("have: %x\nwant: %x", buf, want)
		}
	}
	check("000000000000000000000000000000000000000000000000000000FEFCF3F8F0")
	check("0000000000012345000000000000000000000000000000000000FEFCF3F8F0")
	check("18F8F8F1000111000110011100222004330052300000000000000000FEFCF3F8F0")
}

func TestTwosComplement(t *testing.T) {
	minusOne := new(uint256.Int).SetAllOne()
	if got := U2S(minusOne); got.Cmp(big.NewInt(-1)) != 0 {
		t.Errorf("U2S(2^256-1) = %v, want -1", got)
	}
	if got := S2U(big.NewInt(-1)); !got.Eq(minusOne) {
		t.Errorf("S2U(-1) = %v", got)
	}
	five := uint256.NewInt(5)
	if got := U2S(five); got.Int64() != 5 {
		t.Errorf("U2S(5) = %v", got)
	}
	if got := S2U(big.NewInt(5)); !got.Eq(five) {
		t.Errorf("S2U(5) = %v", got)
	}
}
