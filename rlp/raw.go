// Copyright 2015 The go-ethereum Authors
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

import "fmt"

// RLP 的编码规则：
//
// 对于单个字节，如果值在 [0x00, 0x7f] 范围内，直接编码为自身。
// 对于字节数组，如果长度小于 56 字节，前缀为 0x80 + 长度，后接数据；否则前缀为 0xb7 + 长度编码的字节数，后接长度与数据。
// 对于列表，前缀从 0xc0 开始，规则与字节数组相同，长度指所有子项编码后的总长度。

// Kind represents the kind of value contained in an RLP item.
// Kind 表示 RLP 数据项中包含的值的类型。
type Kind int8

const (
	Byte   Kind = iota // 单字节，值小于 0x80 时编码为其自身
	String             // 字节序列
	List               // 其他 RLP 值的有序集合
)

func (k Kind) String() string {
	switch k {
	case Byte:
		return "Byte"
	case String:
		return "String"
	case List:
		return "List"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// RawValue represents an encoded RLP value and can be used to delay
// RLP decoding or to precompute an encoding. Note that the encoder does
// not verify whether the content of RawValues is valid RLP.
// RawValue 表示一个已编码的 RLP 值，可用于延迟 RLP 解码或预计算编码。
type RawValue []byte

// StringSize returns the encoded size of a string.
// StringSize 返回字符串的编码大小。
func StringSize(s string) uint64 {
	switch n := len(s); n {
	case 0:
		return 1
	case 1:
		if s[0] <= 0x7f {
			return 1
		}
		return 2
	default:
		return uint64(headsize(uint64(n)) + n)
	}
}

// BytesSize returns the encoded size of a byte slice.
func BytesSize(b []byte) uint64 {
	return StringSize(string(b))
}

// ListSize returns the encoded size of an RLP list with the given
// content size.
// ListSize 返回具有给定内容大小的 RLP 列表的编码大小。
func ListSize(contentSize uint64) uint64 {
	return uint64(headsize(contentSize)) + contentSize
}

// IntSize returns the encoded size of the integer x.
func IntSize(x uint64) int {
	if x < 0x80 {
		return 1
	}
	return 1 + intsize(x)
}

// Split returns the content of first RLP value and any
// bytes after the value as subslices of b.
// Split 返回第一个 RLP 值的内容以及该值之后的任何字节，作为 b 的子切片。
func Split(b []byte) (k Kind, content, rest []byte, err error) {
	k, ts, cs, err := readKind(b)
	if err != nil {
		return 0, nil, b, err
	}
	return k, b[ts : ts+cs], b[ts+cs:], nil
}

// SplitString splits b into the content of an RLP string
// and any remaining bytes after the string.
func SplitString(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if k == List {
		return nil, b, ErrExpectedString
	}
	return content, rest, nil
}

// SplitUint64 decodes an integer at the beginning of b.
// It also returns the remaining data after the integer in 'rest'.
// SplitUint64 解码 b 开头的整数，并在 rest 中返回整数后的剩余数据。
func SplitUint64(b []byte) (x uint64, rest []byte, err error) {
	content, rest, err := SplitString(b)
	if err != nil {
		return 0, b, err
	}
	x, err = bigEndianUint(content, 8)
	if err != nil {
		return 0, b, err
	}
	return x, rest, nil
}

// SplitList splits b into the content of a list and any remaining
// bytes after the list.
func SplitList(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if k != List {
		return nil, b, ErrExpectedList
	}
	return content, rest, nil
}

// CountValues counts the number of encoded values in b.
// CountValues 统计 b 中顶级编码值的数量，只识别边界而不解码内容。
func CountValues(b []byte) (int, error) {
	i := 0
	for ; len(b) > 0; i++ {
		_, tagsize, size, err := readKind(b)
		if err != nil {
			return 0, err
		}
		b = b[tagsize+size:]
	}
	return i, nil
}

// readKind reads the header of the first item in buf. It enforces every
// canonical encoding rule that can be checked without looking at the payload.
// readKind 读取 buf 中第一个数据项的前缀，确定类型、前缀长度和载荷长度。
func readKind(buf []byte) (k Kind, tagsize, contentsize uint64, err error) {
	if len(buf) == 0 {
		return 0, 0, 0, ErrUnexpectedEnd
	}
	b := buf[0]
	switch {
	case b < 0x80:
		k = Byte
		tagsize = 0
		contentsize = 1
	case b < 0xB8:
		k = String
		tagsize = 1
		contentsize = uint64(b - 0x80)
		// Reject strings that should've been single bytes.
		// 长度为 1 且值小于 0x80 的字符串应该编码为单字节
		if contentsize == 1 && len(buf) > 1 && buf[1] < 128 {
			return 0, 0, 0, ErrCanonSize
		}
	case b < 0xC0:
		k = String
		tagsize = uint64(b-0xB7) + 1
		contentsize, err = readSize(buf[1:], b-0xB7)
	case b < 0xF8:
		k = List
		tagsize = 1
		contentsize = uint64(b - 0xC0)
	default:
		k = List
		tagsize = uint64(b-0xF7) + 1
		contentsize, err = readSize(buf[1:], b-0xF7)
	}
	if err != nil {
		return 0, 0, 0, err
	}
	// Reject values larger than the input slice.
	// tagsize <= len(buf) holds here, so the subtraction cannot wrap.
	if contentsize > uint64(len(buf))-tagsize {
		return 0, 0, 0, ErrValueTooLarge
	}
	return k, tagsize, contentsize, nil
}

// readSize decodes the slen byte length field of a long string or list.
func readSize(b []byte, slen byte) (uint64, error) {
	if int(slen) > len(b) {
		return 0, ErrUnexpectedEnd
	}
	// Reject sizes with leading zero bytes.
	// 长度编码不能有前导 0
	if b[0] == 0 {
		return 0, ErrCanonSize
	}
	var s uint64
	for _, c := range b[:slen] {
		s = s<<8 | uint64(c)
	}
	// Reject sizes < 56 (shouldn't have separate size).
	if s < 56 {
		return 0, ErrCanonSize
	}
	return s, nil
}

// bigEndianUint decodes the payload of an integer of at most maxBytes bytes.
// The empty payload is zero. Leading zero bytes are rejected.
func bigEndianUint(content []byte, maxBytes int) (uint64, error) {
	switch n := len(content); {
	case n == 0:
		return 0, nil
	case content[0] == 0:
		return 0, ErrCanonInt
	case n > maxBytes:
		return 0, ErrUintOverflow
	}
	var x uint64
	for _, c := range content {
		x = x<<8 | uint64(c)
	}
	return x, nil
}

// AppendUint64 appends the RLP encoding of i to b, and returns the resulting slice.
// AppendUint64 将 i 的 RLP 编码追加到 b，并返回结果切片。
func AppendUint64(b []byte, i uint64) []byte {
	if i == 0 {
		return append(b, 0x80)
	} else if i < 128 {
		return append(b, byte(i))
	}
	var buf [8]byte
	n := putint(buf[:], i)
	b = append(b, 0x80+byte(n))
	return append(b, buf[:n]...)
}

// headsize returns the size of a list or string header
// for a value of the given size.
func headsize(size uint64) int {
	if size < 56 {
		return 1
	}
	return 1 + intsize(size)
}

// puthead writes a list or string header to buf.
// buf must be at least 9 bytes long.
// puthead 将列表或字符串的前缀写入 buf，返回写入的字节数。
func puthead(buf []byte, smalltag, largetag byte, size uint64) int {
	if size < 56 {
		buf[0] = smalltag + byte(size)
		return 1
	}
	sizesize := putint(buf[1:], size)
	buf[0] = largetag + byte(sizesize)
	return sizesize + 1
}

// putint writes i to the beginning of b in big endian byte
// order, using the least number of bytes needed to represent i.
// putint 将 i 以大端字节序写入 b 的开头，使用表示 i 所需的最少字节数。
func putint(b []byte, i uint64) (size int) {
	size = intsize(i)
	for j := size - 1; j >= 0; j-- {
		b[j] = byte(i)
		i >>= 8
	}
	return size
}

// intsize computes the minimum number of bytes required to store i.
// intsize 计算存储 i 所需的最小字节数，0 也至少需要 1 个字节。
func intsize(i uint64) (size int) {
	for size = 1; ; size++ {
		if i >>= 8; i == 0 {
			return size
		}
	}
}
