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

package rlp

import "errors"

// ErrMalformed and ErrBadCast are the two broad failure classes of the decoder.
// Every finer-grained decoding error below matches one of them with errors.Is.
//
// ErrMalformed 表示输入不是规范的 RLP 编码，ErrBadCast 表示数据项的类型与请求的转换不符。
var (
	ErrMalformed = errors.New("rlp: malformed encoding")
	ErrBadCast   = errors.New("rlp: bad cast")
)

var (
	ErrCanonSize     = newError("non-canonical size information", ErrMalformed) // 长度信息不是规范编码
	ErrValueTooLarge = newError("value size exceeds available input length", ErrMalformed)
	ErrUnexpectedEnd = newError("unexpected end of input", ErrMalformed)            // 输入在前缀或长度编码中间结束
	ErrTrailingBytes = newError("input contains more than one value", ErrMalformed) // 严格模式下数据项之后还有多余字节
	ErrElemTooLarge  = newError("element is larger than containing list", ErrMalformed)

	ErrExpectedString = newError("expected String or Byte", ErrBadCast)
	ErrExpectedList   = newError("expected List", ErrBadCast)
	ErrUintOverflow   = newError("uint overflow", ErrBadCast)

	// ErrCanonInt is returned for integers with leading zero bytes. It is both a
	// malformed encoding and a failed conversion.
	ErrCanonInt = newError("non-canonical integer format", ErrMalformed, ErrBadCast)
)

// Encoder errors.
var (
	ErrItemTooLarge   = errors.New("rlp: item length does not fit into 8 bytes")
	ErrIncompleteList = errors.New("rlp: output requested while lists are still open")
	ErrNegativeBigInt = errors.New("rlp: cannot encode negative big.Int")
)

type codecError struct {
	msg   string
	kinds []error
}

func newError(msg string, kinds ...error) error {
	return &codecError{msg: "rlp: " + msg, kinds: kinds}
}

func (e *codecError) Error() string   { return e.msg }
func (e *codecError) Unwrap() []error { return e.kinds }
