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

// Package crypto holds the hashing, signing and address derivation helpers
// used together with the RLP codec.
package crypto

import (
	"hash"

	"github.com/holiman/uint256"
	"github.com/learn-bcos/go-bcos/common"
	"github.com/learn-bcos/go-bcos/rlp"
	"golang.org/x/crypto/sha3"
)

// DigestLength sets the signature digest exact length
// DigestLength 设置签名摘要的确切长度
const DigestLength = 32

// KeccakState wraps sha3.state. In addition to the usual hash methods, it also supports
// Read to get a variable amount of data from the hash state. Read is faster than Sum
// because it doesn't copy the internal state, but also modifies the internal state.
//
// KeccakState 封装了 sha3.state，Read 比 Sum 更快，但会修改内部状态。
type KeccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

// NewKeccakState creates a new KeccakState
func NewKeccakState() KeccakState {
	return sha3.NewLegacyKeccak256().(KeccakState)
}

// Keccak256 calculates and returns the Keccak256 hash of the input data.
// 计算并返回输入数据的 Keccak256 哈希值
func Keccak256(data ...[]byte) []byte {
	b := make([]byte, 32)
	d := NewKeccakState()
	for _, b := range data {
		d.Write(b)
	}
	d.Read(b)
	return b
}

// Keccak256Hash calculates and returns the Keccak256 hash of the input data,
// converting it to an internal Hash data structure.
func Keccak256Hash(data ...[]byte) (h common.Hash) {
	d := NewKeccakState()
	for _, b := range data {
		d.Write(b)
	}
	d.Read(h[:])
	return h
}

// PubkeyToAddress derives the account address of a public key: the low 160
// bits of the keccak hash of its 64 raw bytes.
// PubkeyToAddress 取公钥 Keccak256 哈希的后 20 字节作为地址。
func PubkeyToAddress(pub PubKey) common.Address {
	return common.Right160(Keccak256Hash(pub[:]))
}

// CreateAddress computes the address of a contract created by sender with
// the given nonce, keccak(rlp([sender, nonce])) truncated to 160 bits.
//
// CreateAddress 根据调用者地址和 nonce 计算合约地址：
// address = Keccak256(RLP([sender, nonce]))[12:]
func CreateAddress(sender common.Address, nonce *uint256.Int) common.Address {
	data, err := rlp.EncodeList(sender, nonce)
	if err != nil {
		// both values always encode
		panic(err)
	}
	return common.Right160(Keccak256Hash(data))
}
