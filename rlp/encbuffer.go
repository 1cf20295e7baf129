// Copyright 2022 The go-ethereum Authors
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

import "sync"

// listFrame is the bookkeeping record of a list that is still being built.
// listFrame 记录一个尚未完成编码的列表。
type listFrame struct {
	remaining int // 列表还需要追加的数据项数目
	start     int // 列表内容在输出中的起始位置
}

// The global Stream pool used by the package level encoding helpers.
var streamPool = sync.Pool{
	New: func() interface{} { return new(Stream) },
}

func getStream() *Stream {
	s := streamPool.Get().(*Stream)
	s.Reset()
	return s
}

// writeStringHeader writes the header of a string with the given content size.
func (s *Stream) writeStringHeader(size int) {
	if size < 56 {
		s.out = append(s.out, 0x80+byte(size))
		return
	}
	if intsize(uint64(size)) > 8 {
		s.err = ErrItemTooLarge
		return
	}
	n := puthead(s.sizebuf[:], 0x80, 0xB7, uint64(size))
	s.out = append(s.out, s.sizebuf[:n]...)
}

// noteAppended records that one item was appended to the innermost open list
// and closes every list that became complete as a result. Closing a list is
// itself an append to its parent, so closures cascade up the frame stack.
//
// noteAppended 通知追加了新的数据项，执行列表出栈操作。
func (s *Stream) noteAppended() {
	for len(s.frames) > 0 {
		top := &s.frames[len(s.frames)-1]
		top.remaining--
		if top.remaining > 0 {
			return
		}
		start := top.start
		s.frames = s.frames[:len(s.frames)-1]
		if err := s.insertListHeader(start); err != nil {
			s.err = err
			return
		}
	}
}

// insertListHeader splices the header of the list whose content begins at
// start into the output, shifting the content right.
// 腾出空间放前缀和长度编码，源和目的重叠，copy 会正确处理。
func (s *Stream) insertListHeader(start int) error {
	count := uint64(len(s.out) - start)
	if intsize(count) > 8 {
		return ErrItemTooLarge
	}
	n := puthead(s.sizebuf[:], 0xC0, 0xF7, count)
	s.out = append(s.out, s.sizebuf[:n]...)
	copy(s.out[start+n:], s.out[start:len(s.out)-n])
	copy(s.out[start:], s.sizebuf[:n])
	return nil
}
