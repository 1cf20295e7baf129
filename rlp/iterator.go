// Copyright 2020 The go-ethereum Authors
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

// Iterator walks the elements of an RLP list without building a slice.
// Iterator 提供了一种高效的方式来遍历 RLP 编码的列表，而无需一次性解码整个列表。
type Iterator struct {
	data []byte // 尚未处理的列表内容
	next Item   // 当前元素
	err  error
}

// NewListIterator creates an iterator for the (list) represented by data
// NewListIterator 为由 data 表示的（列表）创建一个迭代器
func NewListIterator(data RawValue) (*Iterator, error) {
	item, err := NewItem(data)
	if err != nil {
		return nil, err
	}
	return item.Iterate()
}

// Next forwards the iterator one step, returns true if it was not at end yet.
// It returns false once the list is exhausted or an element is malformed.
// Next 将迭代器向前移动一步，到达末尾或遇到错误时返回 false。
func (it *Iterator) Next() bool {
	if it.err != nil || len(it.data) == 0 {
		return false
	}
	item, err := ParseItem(it.data, false)
	if err != nil {
		it.err = elemError(err)
		it.next = Item{}
		return false
	}
	it.next = item
	it.data = it.data[item.ActualSize():]
	return true
}

// Item returns the current element.
func (it *Iterator) Item() Item {
	return it.next
}

// Value returns the encoding of the current element.
func (it *Iterator) Value() []byte {
	return it.next.ActualData()
}

func (it *Iterator) Err() error {
	return it.err
}
