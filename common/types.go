package common

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/learn-bcos/go-bcos/common/hexutil"
)

// Lengths of the fixed-width types in bytes.
const (
	AddressLength  = 20
	HashLength     = 32
	Hash512Length  = 64
	Hash2048Length = 256
)

// Address represents an account or contract address, the rightmost 160 bits of a Keccak hash.
type Address [AddressLength]byte

// BytesToAddress sets b to address.
// If b is larger than len(h), b will be cropped from the left.
func BytesToAddress(b []byte) Address {
	var h Address
	h.SetBytes(b)
	return h
}

// AddressFromBytes fits b into an Address according to align.
func AddressFromBytes(b []byte, align Align) (Address, error) {
	var h Address
	err := FitBytes(h[:], b, align)
	return h, err
}

// AddressFromHex decodes a hex string (0x prefix optional) and fits it according to align.
func AddressFromHex(s string, align Align) (Address, error) {
	var h Address
	err := fitHex(h[:], s, align)
	return h, err
}

// BigToAddress sets byte representation of b to address.
// If b is larger than len(h), b will be cropped from the left.
func BigToAddress(b *big.Int) Address {
	return BytesToAddress(b.Bytes())
}

// HexToAddress sets byte representation of s to address. Invalid input yields the zero value.
func HexToAddress(s string) Address {
	b, _ := hexutil.FromHex(s)
	return BytesToAddress(b)
}

// RandomAddress returns an Address filled from the system's secure random source.
func RandomAddress() Address {
	var h Address
	fillRandom(h[:])
	return h
}

// Bytes gets the byte representation of the underlying address.
func (h Address) Bytes() []byte { return h[:] }

// Big converts address to a big integer.
func (h Address) Big() *big.Int { return bigFromBytes(h[:]) }

// Hex converts address to a hex string.
func (h Address) Hex() string { return hexutil.Encode(h[:]) }

// TerminalString implements log.TerminalStringer, formatting a string for console
// output during logging.
func (h Address) TerminalString() string { return abridged(h[:]) }

// String implements the stringer interface and is used also by the logger when
// doing full logging into a file.
func (h Address) String() string { return h.Hex() }

// Format implements fmt.Formatter.
func (h Address) Format(s fmt.State, c rune) { formatFixed(s, c, h[:]) }

// SetBytes sets the address to the value of b.
// If b is larger than len(h), b will be cropped from the left.
func (h *Address) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-AddressLength:]
	}
	copy(h[AddressLength-len(b):], b)
}

// MarshalText returns the hex representation of h.
func (h Address) MarshalText() ([]byte, error) {
	return []byte(hexutil.Encode(h[:])), nil
}

// UnmarshalText parses a address in hex syntax.
func (h *Address) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Address", input, h[:])
}

// IsZero reports whether every byte of h is zero.
func (h Address) IsZero() bool { return allZero(h[:]) }

// Cmp compares two addresses as big-endian unsigned integers.
func (h Address) Cmp(o Address) int { return bytes.Compare(h[:], o[:]) }

// Not returns the bitwise complement of h.
func (h Address) Not() (r Address) {
	bitNot(r[:], h[:])
	return r
}

// And returns the bitwise AND of h and o.
func (h Address) And(o Address) (r Address) {
	bitAnd(r[:], h[:], o[:])
	return r
}

// Or returns the bitwise OR of h and o.
func (h Address) Or(o Address) (r Address) {
	bitOr(r[:], h[:], o[:])
	return r
}

// Xor returns the bitwise XOR of h and o.
func (h Address) Xor(o Address) (r Address) {
	bitXor(r[:], h[:], o[:])
	return r
}

// Sum64 returns a 64 bit content hash of h.
func (h Address) Sum64() uint64 { return sum64(h[:]) }

// Hash represents the 32 byte Keccak256 digest of arbitrary data.
type Hash [HashLength]byte

// BytesToHash sets b to hash.
// If b is larger than len(h), b will be cropped from the left.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// HashFromBytes fits b into a Hash according to align.
func HashFromBytes(b []byte, align Align) (Hash, error) {
	var h Hash
	err := FitBytes(h[:], b, align)
	return h, err
}

// HashFromHex decodes a hex string (0x prefix optional) and fits it according to align.
func HashFromHex(s string, align Align) (Hash, error) {
	var h Hash
	err := fitHex(h[:], s, align)
	return h, err
}

// BigToHash sets byte representation of b to hash.
// If b is larger than len(h), b will be cropped from the left.
func BigToHash(b *big.Int) Hash {
	return BytesToHash(b.Bytes())
}

// HexToHash sets byte representation of s to hash. Invalid input yields the zero value.
func HexToHash(s string) Hash {
	b, _ := hexutil.FromHex(s)
	return BytesToHash(b)
}

// RandomHash returns a Hash filled from the system's secure random source.
func RandomHash() Hash {
	var h Hash
	fillRandom(h[:])
	return h
}

// Bytes gets the byte representation of the underlying hash.
func (h Hash) Bytes() []byte { return h[:] }

// Big converts hash to a big integer.
func (h Hash) Big() *big.Int { return bigFromBytes(h[:]) }

// Hex converts hash to a hex string.
func (h Hash) Hex() string { return hexutil.Encode(h[:]) }

// TerminalString implements log.TerminalStringer, formatting a string for console
// output during logging.
func (h Hash) TerminalString() string { return abridged(h[:]) }

// String implements the stringer interface and is used also by the logger when
// doing full logging into a file.
func (h Hash) String() string { return h.Hex() }

// Format implements fmt.Formatter.
func (h Hash) Format(s fmt.State, c rune) { formatFixed(s, c, h[:]) }

// SetBytes sets the hash to the value of b.
// If b is larger than len(h), b will be cropped from the left.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// MarshalText returns the hex representation of h.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(hexutil.Encode(h[:])), nil
}

// UnmarshalText parses a hash in hex syntax.
func (h *Hash) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash", input, h[:])
}

// IsZero reports whether every byte of h is zero.
func (h Hash) IsZero() bool { return allZero(h[:]) }

// Cmp compares two hashes as big-endian unsigned integers.
func (h Hash) Cmp(o Hash) int { return bytes.Compare(h[:], o[:]) }

// Not returns the bitwise complement of h.
func (h Hash) Not() (r Hash) {
	bitNot(r[:], h[:])
	return r
}

// And returns the bitwise AND of h and o.
func (h Hash) And(o Hash) (r Hash) {
	bitAnd(r[:], h[:], o[:])
	return r
}

// Or returns the bitwise OR of h and o.
func (h Hash) Or(o Hash) (r Hash) {
	bitOr(r[:], h[:], o[:])
	return r
}

// Xor returns the bitwise XOR of h and o.
func (h Hash) Xor(o Hash) (r Hash) {
	bitXor(r[:], h[:], o[:])
	return r
}

// Sum64 returns a 64 bit content hash of h.
func (h Hash) Sum64() uint64 { return sum64(h[:]) }

// Hash512 represents a 64 byte value, typically an uncompressed public key without its prefix.
type Hash512 [Hash512Length]byte

// BytesToHash512 sets b to hash512.
// If b is larger than len(h), b will be cropped from the left.
func BytesToHash512(b []byte) Hash512 {
	var h Hash512
	h.SetBytes(b)
	return h
}

// Hash512FromBytes fits b into a Hash512 according to align.
func Hash512FromBytes(b []byte, align Align) (Hash512, error) {
	var h Hash512
	err := FitBytes(h[:], b, align)
	return h, err
}

// Hash512FromHex decodes a hex string (0x prefix optional) and fits it according to align.
func Hash512FromHex(s string, align Align) (Hash512, error) {
	var h Hash512
	err := fitHex(h[:], s, align)
	return h, err
}

// BigToHash512 sets byte representation of b to hash512.
// If b is larger than len(h), b will be cropped from the left.
func BigToHash512(b *big.Int) Hash512 {
	return BytesToHash512(b.Bytes())
}

// HexToHash512 sets byte representation of s to hash512. Invalid input yields the zero value.
func HexToHash512(s string) Hash512 {
	b, _ := hexutil.FromHex(s)
	return BytesToHash512(b)
}

// RandomHash512 returns a Hash512 filled from the system's secure random source.
func RandomHash512() Hash512 {
	var h Hash512
	fillRandom(h[:])
	return h
}

// Bytes gets the byte representation of the underlying hash512.
func (h Hash512) Bytes() []byte { return h[:] }

// Big converts hash512 to a big integer.
func (h Hash512) Big() *big.Int { return bigFromBytes(h[:]) }

// Hex converts hash512 to a hex string.
func (h Hash512) Hex() string { return hexutil.Encode(h[:]) }

// TerminalString implements log.TerminalStringer, formatting a string for console
// output during logging.
func (h Hash512) TerminalString() string { return abridged(h[:]) }

// String implements the stringer interface and is used also by the logger when
// doing full logging into a file.
func (h Hash512) String() string { return h.Hex() }

// Format implements fmt.Formatter.
func (h Hash512) Format(s fmt.State, c rune) { formatFixed(s, c, h[:]) }

// SetBytes sets the hash512 to the value of b.
// If b is larger than len(h), b will be cropped from the left.
func (h *Hash512) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-Hash512Length:]
	}
	copy(h[Hash512Length-len(b):], b)
}

// MarshalText returns the hex representation of h.
func (h Hash512) MarshalText() ([]byte, error) {
	return []byte(hexutil.Encode(h[:])), nil
}

// UnmarshalText parses a hash512 in hex syntax.
func (h *Hash512) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash512", input, h[:])
}

// IsZero reports whether every byte of h is zero.
func (h Hash512) IsZero() bool { return allZero(h[:]) }

// Cmp compares two Hash512 values as big-endian unsigned integers.
func (h Hash512) Cmp(o Hash512) int { return bytes.Compare(h[:], o[:]) }

// Not returns the bitwise complement of h.
func (h Hash512) Not() (r Hash512) {
	bitNot(r[:], h[:])
	return r
}

// And returns the bitwise AND of h and o.
func (h Hash512) And(o Hash512) (r Hash512) {
	bitAnd(r[:], h[:], o[:])
	return r
}

// Or returns the bitwise OR of h and o.
func (h Hash512) Or(o Hash512) (r Hash512) {
	bitOr(r[:], h[:], o[:])
	return r
}

// Xor returns the bitwise XOR of h and o.
func (h Hash512) Xor(o Hash512) (r Hash512) {
	bitXor(r[:], h[:], o[:])
	return r
}

// Sum64 returns a 64 bit content hash of h.
func (h Hash512) Sum64() uint64 { return sum64(h[:]) }

// Hash2048 represents a 256 byte bloom-sized bit set.
type Hash2048 [Hash2048Length]byte

// BytesToHash2048 sets b to hash2048.
// If b is larger than len(h), b will be cropped from the left.
func BytesToHash2048(b []byte) Hash2048 {
	var h Hash2048
	h.SetBytes(b)
	return h
}

// Hash2048FromBytes fits b into a Hash2048 according to align.
func Hash2048FromBytes(b []byte, align Align) (Hash2048, error) {
	var h Hash2048
	err := FitBytes(h[:], b, align)
	return h, err
}

// Hash2048FromHex decodes a hex string (0x prefix optional) and fits it according to align.
func Hash2048FromHex(s string, align Align) (Hash2048, error) {
	var h Hash2048
	err := fitHex(h[:], s, align)
	return h, err
}

// BigToHash2048 sets byte representation of b to hash2048.
// If b is larger than len(h), b will be cropped from the left.
func BigToHash2048(b *big.Int) Hash2048 {
	return BytesToHash2048(b.Bytes())
}

// HexToHash2048 sets byte representation of s to hash2048. Invalid input yields the zero value.
func HexToHash2048(s string) Hash2048 {
	b, _ := hexutil.FromHex(s)
	return BytesToHash2048(b)
}

// RandomHash2048 returns a Hash2048 filled from the system's secure random source.
func RandomHash2048() Hash2048 {
	var h Hash2048
	fillRandom(h[:])
	return h
}

// Bytes gets the byte representation of the underlying hash2048.
func (h Hash2048) Bytes() []byte { return h[:] }

// Big converts hash2048 to a big integer.
func (h Hash2048) Big() *big.Int { return bigFromBytes(h[:]) }

// Hex converts hash2048 to a hex string.
func (h Hash2048) Hex() string { return hexutil.Encode(h[:]) }

// TerminalString implements log.TerminalStringer, formatting a string for console
// output during logging.
func (h Hash2048) TerminalString() string { return abridged(h[:]) }

// String implements the stringer interface and is used also by the logger when
// doing full logging into a file.
func (h Hash2048) String() string { return h.Hex() }

// Format implements fmt.Formatter.
func (h Hash2048) Format(s fmt.State, c rune) { formatFixed(s, c, h[:]) }

// SetBytes sets the hash2048 to the value of b.
// If b is larger than len(h), b will be cropped from the left.
func (h *Hash2048) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-Hash2048Length:]
	}
	copy(h[Hash2048Length-len(b):], b)
}

// MarshalText returns the hex representation of h.
func (h Hash2048) MarshalText() ([]byte, error) {
	return []byte(hexutil.Encode(h[:])), nil
}

// UnmarshalText parses a hash2048 in hex syntax.
func (h *Hash2048) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash2048", input, h[:])
}

// IsZero reports whether every byte of h is zero.
func (h Hash2048) IsZero() bool { return allZero(h[:]) }

// Cmp compares two Hash2048 values as big-endian unsigned integers.
func (h Hash2048) Cmp(o Hash2048) int { return bytes.Compare(h[:], o[:]) }

// Not returns the bitwise complement of h.
func (h Hash2048) Not() (r Hash2048) {
	bitNot(r[:], h[:])
	return r
}

// And returns the bitwise AND of h and o.
func (h Hash2048) And(o Hash2048) (r Hash2048) {
	bitAnd(r[:], h[:], o[:])
	return r
}

// Or returns the bitwise OR of h and o.
func (h Hash2048) Or(o Hash2048) (r Hash2048) {
	bitOr(r[:], h[:], o[:])
	return r
}

// Xor returns the bitwise XOR of h and o.
func (h Hash2048) Xor(o Hash2048) (r Hash2048) {
	bitXor(r[:], h[:], o[:])
	return r
}

// Sum64 returns a 64 bit content hash of h.
func (h Hash2048) Sum64() uint64 { return sum64(h[:]) }

// Uint256ToHash converts a 256 bit integer to its big-endian hash form.
func Uint256ToHash(u *uint256.Int) Hash { return Hash(u.Bytes32()) }

// Uint256 returns the hash interpreted as a big-endian 256 bit integer.
func (h Hash) Uint256() *uint256.Int { return new(uint256.Int).SetBytes32(h[:]) }

// Right160 returns the last 20 bytes of h.
func Right160(h Hash) Address {
	var a Address
	copy(a[:], h[HashLength-AddressLength:])
	return a
}
