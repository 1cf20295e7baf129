// Package compress wraps snappy block compression for encoded payloads.
package compress

import (
	"errors"

	"github.com/golang/snappy"
)

// ErrCorruptedInput is returned when a snappy block cannot be decoded.
var ErrCorruptedInput = errors.New("corrupted snappy input")

// Compress returns the snappy block encoding of src.
func Compress(src []byte) []byte {
	return snappy.Encode(nil, src)
}

// Uncompress decodes a snappy block produced by Compress.
func Uncompress(src []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, src)
	if err != nil {
		return nil, ErrCorruptedInput
	}
	return out, nil
}

// UncompressedLength returns the decoded size recorded in the block header.
func UncompressedLength(src []byte) (int, error) {
	n, err := snappy.DecodedLen(src)
	if err != nil {
		return 0, ErrCorruptedInput
	}
	return n, nil
}
