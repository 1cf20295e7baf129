// Copyright 2014 The go-ethereum Authors
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

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/learn-bcos/go-bcos/common"
)

// Item is a read-only view of a single RLP value inside a caller-owned buffer.
// Items never copy the input: the payload and all nested items alias it, so the
// buffer must not be modified while items derived from it are in use.
//
// Item 是调用方缓冲区中单个 RLP 数据项的只读视图，不会复制输入数据。
// 零值 Item 是空数据项（IsNull 返回 true）。
type Item struct {
	data   common.ByteView // 前缀 + 长度编码 + 载荷
	kind   Kind
	prefix int
}

// NewItem decodes the item at the start of b. The item must span all of b,
// trailing bytes are rejected with ErrTrailingBytes.
// NewItem 严格模式解析：输入长度大于数据项本身的长度时返回错误。
func NewItem(b []byte) (Item, error) {
	return ParseItem(b, true)
}

// NewItemLenient decodes the item at the start of b and ignores whatever
// follows it. ActualSize reports how many bytes were consumed.
// NewItemLenient 宽松模式解析：只取第一个数据项，忽略其后的字节。
func NewItemLenient(b []byte) (Item, error) {
	return ParseItem(b, false)
}

// ParseItem decodes the item at the start of b. If failIfTooBig is set, b must
// contain exactly one item. Empty input yields the null item.
func ParseItem(b []byte, failIfTooBig bool) (Item, error) {
	if len(b) == 0 {
		return Item{}, nil
	}
	k, ts, cs, err := readKind(b)
	if err != nil {
		return Item{}, err
	}
	size := ts + cs
	if failIfTooBig && uint64(len(b)) > size {
		return Item{}, ErrTrailingBytes
	}
	// readKind checked size against len(b)
	data, err := common.ByteView(b).Cropped(0, int(size))
	if err != nil {
		return Item{}, ErrValueTooLarge
	}
	return Item{data: data, kind: k, prefix: int(ts)}, nil
}

// IsNull reports whether the item holds no data at all.
func (it Item) IsNull() bool { return len(it.data) == 0 }

// IsEmpty reports whether the item is the empty string or the empty list.
func (it Item) IsEmpty() bool { return it.IsEmptyData() || it.IsEmptyList() }

func (it Item) IsEmptyData() bool { return !it.IsNull() && it.data[0] == 0x80 }
func (it Item) IsEmptyList() bool { return !it.IsNull() && it.data[0] == 0xC0 }

// IsData reports whether the item is a byte or a string.
// IsData 判断当前数据项是否为字符串（包括单字节）。
func (it Item) IsData() bool { return !it.IsNull() && it.data[0] < 0xC0 }

// IsList reports whether the item is a list.
func (it Item) IsList() bool { return !it.IsNull() && it.data[0] >= 0xC0 }

// Kind returns the kind of the item. The null item reports String.
func (it Item) Kind() Kind {
	if it.IsNull() {
		return String
	}
	return it.kind
}

// ActualData returns the full encoding of the item: prefix, length and payload.
func (it Item) ActualData() common.ByteView { return it.data }

// ActualSize returns the number of input bytes the item occupies.
func (it Item) ActualSize() int { return len(it.data) }

// PrefixSize returns the size of the tag byte plus any separate length field.
// Single byte items have no prefix.
func (it Item) PrefixSize() int { return it.prefix }

// PayloadSize returns the size of the item's content.
func (it Item) PayloadSize() int { return len(it.data) - it.prefix }

// Payload returns the content of the item without its header. For lists this
// is the concatenated encoding of the elements.
// Payload 返回去掉前缀和长度编码之后的数据载荷。
func (it Item) Payload() common.ByteView { return it.data[it.prefix:] }

// String returns the hex encoding of the item.
func (it Item) String() string {
	return fmt.Sprintf("%x", []byte(it.data))
}

// ToBytes returns a copy of the string content.
func (it Item) ToBytes() ([]byte, error) {
	if !it.IsData() {
		return nil, ErrExpectedString
	}
	return common.CopyBytes(it.Payload()), nil
}

// ToString returns the string content as a Go string.
func (it Item) ToString() (string, error) {
	if !it.IsData() {
		return "", ErrExpectedString
	}
	return it.Payload().String(), nil
}

// ToUintN decodes the item as an unsigned integer of at most bits bits.
// bits is capped at 64. Widths that are not a multiple of 8 are allowed: the
// value itself must fit.
// ToUintN 将数据项转换为无符号整数，拒绝前导 0 和溢出。
func (it Item) ToUintN(bits int) (uint64, error) {
	if !it.IsData() {
		return 0, ErrExpectedString
	}
	switch {
	case bits > 64:
		bits = 64
	case bits < 0:
		bits = 0
	}
	x, err := bigEndianUint(it.Payload(), (bits+7)/8)
	if err != nil {
		return 0, err
	}
	if bits < 64 && x>>uint(bits) != 0 {
		return 0, ErrUintOverflow
	}
	return x, nil
}

// ToUint64 decodes the item as a 64 bit unsigned integer.
func (it Item) ToUint64() (uint64, error) { return it.ToUintN(64) }

// ToUint32 decodes the item as a 32 bit unsigned integer.
func (it Item) ToUint32() (uint32, error) {
	x, err := it.ToUintN(32)
	return uint32(x), err
}

// ToBool decodes the integers zero and one as false and true.
func (it Item) ToBool() (bool, error) {
	x, err := it.ToUintN(8)
	if err != nil {
		return false, err
	}
	switch x {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: invalid boolean value %d", ErrBadCast, x)
	}
}

// ToBig decodes the item as an unsigned integer of at most maxBytes bytes.
// A non-positive maxBytes means no size limit.
func (it Item) ToBig(maxBytes int) (*big.Int, error) {
	if !it.IsData() {
		return nil, ErrExpectedString
	}
	p := it.Payload()
	if len(p) > 0 && p[0] == 0 {
		return nil, ErrCanonInt
	}
	if maxBytes > 0 && len(p) > maxBytes {
		return nil, ErrUintOverflow
	}
	return new(big.Int).SetBytes(p), nil
}

// ToUint160 decodes the item as an unsigned integer of at most 160 bits.
func (it Item) ToUint160() (*big.Int, error) { return it.ToBig(20) }

// ToUint512 decodes the item as an unsigned integer of at most 512 bits.
func (it Item) ToUint512() (*big.Int, error) { return it.ToBig(64) }

// ToUint256 decodes the item as an unsigned integer of at most 256 bits.
func (it Item) ToUint256() (*uint256.Int, error) {
	if !it.IsData() {
		return nil, ErrExpectedString
	}
	p := it.Payload()
	if len(p) > 0 && p[0] == 0 {
		return nil, ErrCanonInt
	}
	if len(p) > 32 {
		return nil, ErrUintOverflow
	}
	return new(uint256.Int).SetBytes(p), nil
}

// ToFixedBytes copies the string content into dst, fitting it according to
// align. Mismatched lengths the alignment does not allow fail with ErrBadCast.
// ToFixedBytes 将字符串内容按对齐方式写入定长数组。
func (it Item) ToFixedBytes(dst []byte, align common.Align) error {
	if !it.IsData() {
		return ErrExpectedString
	}
	clear(dst)
	if err := common.FitBytes(dst, it.Payload(), align); err != nil {
		return fmt.Errorf("%w: %w", ErrBadCast, err)
	}
	return nil
}

// ToAddress decodes a string of exactly 20 bytes.
func (it Item) ToAddress() (a common.Address, err error) {
	err = it.ToFixedBytes(a[:], common.AlignExact)
	return a, err
}

// ToHash decodes a string of exactly 32 bytes.
func (it Item) ToHash() (h common.Hash, err error) {
	err = it.ToFixedBytes(h[:], common.AlignExact)
	return h, err
}

// ToHash512 decodes a string of exactly 64 bytes.
func (it Item) ToHash512() (h common.Hash512, err error) {
	err = it.ToFixedBytes(h[:], common.AlignExact)
	return h, err
}

// ToHash2048 decodes a string of exactly 256 bytes.
func (it Item) ToHash2048() (h common.Hash2048, err error) {
	err = it.ToFixedBytes(h[:], common.AlignExact)
	return h, err
}

// SplitList returns the elements of a list item. The elements alias the
// item's buffer. Any malformed element fails the whole call.
// SplitList 分解列表，返回列表包含的所有数据项。
func (it Item) SplitList() ([]Item, error) {
	if !it.IsList() {
		return nil, ErrExpectedList
	}
	var (
		elems []Item
		rest  = it.Payload()
	)
	for !rest.Empty() {
		elem, err := ParseItem(rest, false)
		if err != nil {
			return nil, elemError(err)
		}
		elems = append(elems, elem)
		if rest, err = rest.CroppedFrom(elem.ActualSize()); err != nil {
			return nil, ErrElemTooLarge
		}
	}
	return elems, nil
}

// Iterate returns an iterator over the elements of a list item.
func (it Item) Iterate() (*Iterator, error) {
	if !it.IsList() {
		return nil, ErrExpectedList
	}
	return &Iterator{data: it.Payload()}, nil
}

// elemError maps size errors of list elements to ErrElemTooLarge.
func elemError(err error) error {
	if errors.Is(err, ErrValueTooLarge) || errors.Is(err, ErrUnexpectedEnd) {
		return ErrElemTooLarge
	}
	return err
}
