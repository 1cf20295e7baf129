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
	"io"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/learn-bcos/go-bcos/common"
)

var (
	// Common encoded values.
	// These are useful when implementing EncodeRLP.
	// 常见编码值。这些在实现 EncodeRLP 时很有用。

	// EmptyString is the encoding of an empty string.
	// EmptyString 是空字符串的 RLP 编码
	EmptyString = []byte{0x80}
	// EmptyList is the encoding of an empty list.
	// EmptyList 是空列表的 RLP 编码
	EmptyList = []byte{0xC0}
)

var errNegativeCount = errors.New("rlp: negative list item count")

// Encodable is implemented by types that know how to append themselves to
// a Stream. Implementations should append exactly one item.
// Encodable 接口由需要自定义编码规则的类型实现，应当只追加一个数据项。
type Encodable interface {
	EncodeRLP(*Stream) error
}

// Stream builds an RLP encoding incrementally. Lists are opened with their
// element count up front; the list header is written once the last element
// has been appended. The zero value is ready to use.
//
// Builder methods return the stream so calls can be chained. The first
// error is kept and all later appends are ignored. It is reported by Err,
// Bytes and Take.
//
// Stream 负责序列化：追加式输出缓冲区加上一个待完成列表的栈。
// Stream 不是并发安全的。
type Stream struct {
	out     []byte
	frames  []listFrame
	err     error
	sizebuf [9]byte // auxiliary buffer for headers
}

// NewListStream creates a stream that begins with a list of itemCount elements.
func NewListStream(itemCount int) *Stream {
	return new(Stream).AppendList(itemCount)
}

// Reset discards all output, open lists and the recorded error.
func (s *Stream) Reset() {
	s.out = s.out[:0]
	s.frames = s.frames[:0]
	s.err = nil
}

// Err returns the first error encountered while appending.
func (s *Stream) Err() error { return s.err }

// Len returns the number of bytes written so far, excluding the headers of
// lists that are still open.
func (s *Stream) Len() int { return len(s.out) }

// OpenLists returns the number of lists still waiting for elements.
func (s *Stream) OpenLists() int { return len(s.frames) }

// Bytes returns the encoding built so far without consuming it. The returned
// slice aliases the stream's buffer and is only valid until the next append.
// Bytes 查看当前编码结果，若还有列表未完成编码返回 ErrIncompleteList。
func (s *Stream) Bytes() ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.out, nil
}

// Take returns the encoding and resets the stream. The caller owns the result.
// Take 取走当前编码结果。
func (s *Stream) Take() ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	out := s.out
	s.out = nil
	s.Reset()
	return out, nil
}

// WriteTo writes the encoding to w.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	n, err := w.Write(s.out)
	return int64(n), err
}

func (s *Stream) check() error {
	if s.err != nil {
		return s.err
	}
	if len(s.frames) > 0 {
		return ErrIncompleteList
	}
	return nil
}

// AppendList opens a list of itemCount elements. The next itemCount appends
// become its elements. A zero count writes the empty list immediately, which
// counts as one element of the enclosing list.
// AppendList 开启新的列表追加流程，若 itemCount 为 0 直接完成空列表编码。
func (s *Stream) AppendList(itemCount int) *Stream {
	if s.err != nil {
		return s
	}
	switch {
	case itemCount < 0:
		s.err = errNegativeCount
	case itemCount == 0:
		s.out = append(s.out, 0xC0)
		s.noteAppended()
	default:
		s.frames = append(s.frames, listFrame{remaining: itemCount, start: len(s.out)})
	}
	return s
}

// AppendString appends b as an RLP string.
func (s *Stream) AppendString(b []byte) *Stream {
	return s.AppendBytes(b, false)
}

// AppendBytes appends b as an RLP string, optionally dropping its leading
// zero bytes first.
// AppendBytes 追加字节数组，ignoreLeadingZeros 为 true 时忽略前导零。
func (s *Stream) AppendBytes(b []byte, ignoreLeadingZeros bool) *Stream {
	if s.err != nil {
		return s
	}
	if ignoreLeadingZeros {
		b = common.TrimLeftZeroes(b)
	}
	if len(b) == 1 && b[0] <= 0x7F {
		// fits single byte, no string header
		s.out = append(s.out, b[0])
	} else {
		s.writeStringHeader(len(b))
		if s.err != nil {
			return s
		}
		s.out = append(s.out, b...)
	}
	s.noteAppended()
	return s
}

// AppendUint appends u as a canonical integer: big-endian without leading
// zero bytes, zero being the empty string.
func (s *Stream) AppendUint(u uint64) *Stream {
	if s.err != nil {
		return s
	}
	s.out = AppendUint64(s.out, u)
	s.noteAppended()
	return s
}

// AppendBig appends a non-negative big integer.
func (s *Stream) AppendBig(i *big.Int) *Stream {
	if s.err != nil {
		return s
	}
	switch {
	case i == nil:
		return s.AppendUint(0)
	case i.Sign() < 0:
		s.err = ErrNegativeBigInt
		return s
	case i.IsUint64():
		return s.AppendUint(i.Uint64())
	}
	return s.AppendString(i.Bytes())
}

// AppendUint256 appends a 256 bit unsigned integer.
func (s *Stream) AppendUint256(i *uint256.Int) *Stream {
	if s.err != nil {
		return s
	}
	if i == nil || i.IsUint64() {
		var u uint64
		if i != nil {
			u = i.Uint64()
		}
		return s.AppendUint(u)
	}
	return s.AppendString(i.Bytes())
}

// AppendFixed appends the content of a fixed-width container as a string.
func (s *Stream) AppendFixed(b []byte, ignoreLeadingZeros bool) *Stream {
	return s.AppendBytes(b, ignoreLeadingZeros)
}

// AppendAddress appends all 20 bytes of a as a string.
func (s *Stream) AppendAddress(a common.Address) *Stream {
	return s.AppendString(a[:])
}

// AppendHash appends all 32 bytes of h as a string.
func (s *Stream) AppendHash(h common.Hash) *Stream {
	return s.AppendString(h[:])
}

// AppendRaw appends enc verbatim. enc must be exactly one encoded item; it is
// not validated.
// AppendRaw 直接追加原始数据项。
func (s *Stream) AppendRaw(enc []byte) *Stream {
	if s.err != nil {
		return s
	}
	s.out = append(s.out, enc...)
	s.noteAppended()
	return s
}

// AppendItem appends the full encoding of a decoded item.
func (s *Stream) AppendItem(it Item) *Stream {
	return s.AppendRaw(it.ActualData())
}

// Append appends v according to its Go type.
//
//	[]byte, string               string
//	uint, uint8 ... uint64       integer
//	bool                         integer 0 or 1
//	*big.Int, *uint256.Int       integer
//	common.Address, common.Hash  full width string
//	Item, RawValue               verbatim
//	Encodable                    EncodeRLP
//	[]interface{}, []string      list
//	nil                          empty list
//
// Signed integers and other types record an error.
// Append 按值的类型追加到编码流。
func (s *Stream) Append(v interface{}) *Stream {
	if s.err != nil {
		return s
	}
	switch v := v.(type) {
	case nil:
		return s.AppendList(0)
	case []byte:
		return s.AppendString(v)
	case string:
		return s.AppendString([]byte(v))
	case uint:
		return s.AppendUint(uint64(v))
	case uint8:
		return s.AppendUint(uint64(v))
	case uint16:
		return s.AppendUint(uint64(v))
	case uint32:
		return s.AppendUint(uint64(v))
	case uint64:
		return s.AppendUint(v)
	case bool:
		if v {
			return s.AppendUint(1)
		}
		return s.AppendUint(0)
	case *big.Int:
		return s.AppendBig(v)
	case big.Int:
		return s.AppendBig(&v)
	case *uint256.Int:
		return s.AppendUint256(v)
	case uint256.Int:
		return s.AppendUint256(&v)
	case common.Address:
		return s.AppendString(v[:])
	case common.Hash:
		return s.AppendString(v[:])
	case common.Hash512:
		return s.AppendString(v[:])
	case common.Hash2048:
		return s.AppendString(v[:])
	case Item:
		return s.AppendItem(v)
	case RawValue:
		return s.AppendRaw(v)
	case Encodable:
		if err := v.EncodeRLP(s); err != nil && s.err == nil {
			s.err = err
		}
		return s
	case []interface{}:
		s.AppendList(len(v))
		for _, elem := range v {
			s.Append(elem)
		}
		return s
	case []string:
		s.AppendList(len(v))
		for _, elem := range v {
			s.AppendString([]byte(elem))
		}
		return s
	case [][]byte:
		s.AppendList(len(v))
		for _, elem := range v {
			s.AppendString(elem)
		}
		return s
	default:
		s.err = fmt.Errorf("rlp: type %T is not RLP-serializable", v)
		return s
	}
}

// Encode writes the RLP encoding of val to w.
// Encode 将 val 的 RLP 编码写入 w 中。
func Encode(w io.Writer, val interface{}) error {
	s := getStream()
	defer streamPool.Put(s)

	if _, err := s.Append(val).WriteTo(w); err != nil {
		return err
	}
	return nil
}

// EncodeToBytes returns the RLP encoding of val.
// EncodeToBytes 返回 val 的 RLP 编码。
func EncodeToBytes(val interface{}) ([]byte, error) {
	s := getStream()
	defer streamPool.Put(s)

	return s.Append(val).output()
}

// EncodeList returns the encoding of a list holding vals.
// EncodeList 将所有参数编码为一个列表。
func EncodeList(vals ...interface{}) ([]byte, error) {
	s := getStream()
	defer streamPool.Put(s)

	s.AppendList(len(vals))
	for _, v := range vals {
		s.Append(v)
	}
	return s.output()
}

// output returns a copy of the finished encoding, leaving the buffer with
// the stream so it can be pooled.
func (s *Stream) output() ([]byte, error) {
	b, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	return common.CopyBytes(b), nil
}
