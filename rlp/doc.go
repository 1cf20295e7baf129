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

/*
Package rlp implements the RLP serialization format.

The purpose of RLP (Recursive Linear Prefix) is to encode arbitrarily nested arrays of
binary data. The only purpose of RLP is to encode structure; encoding specific atomic data
types (eg. strings, ints, floats) is left up to higher-order protocols. Integers are
represented in big endian binary form with no leading zeroes (thus making the integer
value zero equivalent to the empty string).

RLP values are distinguished by a type tag. The type tag precedes the value in the input
and defines the size and kind of the bytes that follow.

	0x00..0x7f   a single byte, encoding itself
	0x80..0xb7   a string of 0-55 bytes, length in the tag
	0xb8..0xbf   a longer string, tag holds the size of the big endian length field
	0xc0..0xf7   a list whose encoded elements take 0-55 bytes
	0xf8..0xff   a longer list

# Encoding

A Stream builds an encoding value by value. A list is opened with its element count,
and its header is filled in once the last element has been appended:

	s := rlp.NewListStream(2)
	s.AppendString([]byte("cat")).AppendUint(1024)
	enc, err := s.Take()

Nested lists are opened the same way. Appending the last element of an inner list
completes the inner list, which in turn counts as one element of the outer list.
Requesting the output while a list is still open fails with ErrIncompleteList.

Stream.Append and EncodeList accept plain Go values (byte slices, strings, unsigned
integers, bool, *big.Int, *uint256.Int, fixed-width containers, already encoded values and
slices of those). Types implementing Encodable append themselves.

# Decoding

An Item is a view of one value inside a byte buffer. NewItem requires the buffer to
hold exactly one value, NewItemLenient decodes the first value and ignores the rest.
Both check the canonical encoding rules:

  - a single byte below 0x80 must not be wrapped in a string header
  - a length below 56 must not use the long form
  - length fields must not have leading zero bytes
  - a value must not claim more bytes than the input holds

Conversions (ToUint64, ToBig, ToHash, ...) additionally reject integers with leading
zero bytes or more bytes than the target type. Lists are decoded with SplitList or
Iterate. Items alias the input buffer; nothing is copied until ToBytes is called.

All decoding errors match either ErrMalformed or ErrBadCast with errors.Is.
*/
package rlp
