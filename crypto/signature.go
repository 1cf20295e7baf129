// Copyright 2017 The go-ethereum Authors
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

package crypto

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	decred_ecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/learn-bcos/go-bcos/common"
	"github.com/learn-bcos/go-bcos/common/hexutil"
)

// SignatureLength indicates the byte length required to carry a signature with recovery id.
// SignatureLength 表示携带恢复ID的签名所需的字节长度。
const SignatureLength = 64 + 1 // 64 bytes ECDSA signature + 1 byte recovery id

// RecoveryIDOffset points to the byte offset within the signature that contains the recovery id.
const RecoveryIDOffset = 64

var (
	ErrBadSecKey    = errors.New("crypto: invalid secp256k1 secret key")
	ErrBadSignature = errors.New("crypto: invalid signature")
)

type (
	// SecKey is a raw 32 byte secp256k1 secret key.
	SecKey = common.Hash
	// PubKey is an uncompressed public key without the 0x04 marker, X || Y.
	// PubKey 为去掉 0x04 标识字节的未压缩公钥。
	PubKey = common.Hash512
)

// Signature is a recoverable signature in the [R || S || V] format where V
// is the recovery id.
type Signature [SignatureLength]byte

// R returns the r value of the signature.
func (sig Signature) R() (r common.Hash) {
	copy(r[:], sig[:32])
	return r
}

// S returns the s value of the signature.
func (sig Signature) S() (s common.Hash) {
	copy(s[:], sig[32:64])
	return s
}

// V returns the recovery id.
func (sig Signature) V() byte { return sig[RecoveryIDOffset] }

func (sig Signature) Bytes() []byte { return sig[:] }

func (sig Signature) Hex() string { return hexutil.Encode(sig[:]) }

// IsValid reports whether r and s lie in [1, N) and v is 0 or 1. Recovery
// ids 2 and 3 are possible but so unlikely that they are rejected here.
// IsValid 检查 v、r、s 的值是否处于合法范围。
func (sig Signature) IsValid() bool {
	if sig.V() > 1 {
		return false
	}
	var r, s secp256k1.ModNScalar
	if r.SetByteSlice(sig[:32]) || s.SetByteSlice(sig[32:64]) {
		return false // overflow
	}
	return !r.IsZero() && !s.IsZero()
}

// secretKey converts sec into a decred private key, rejecting zero and values
// not below the group order.
func secretKey(sec SecKey) (*secp256k1.PrivateKey, error) {
	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(sec[:]); overflow || k.IsZero() {
		return nil, ErrBadSecKey
	}
	return secp256k1.NewPrivateKey(&k), nil
}

func fromDecredPub(pub *secp256k1.PublicKey) (p PubKey) {
	copy(p[:], pub.SerializeUncompressed()[1:])
	return p
}

// ToPubKey computes the public key belonging to sec.
// ToPubKey 计算私钥对应的公钥（64 字节）。
func ToPubKey(sec SecKey) (PubKey, error) {
	priv, err := secretKey(sec)
	if err != nil {
		return PubKey{}, err
	}
	defer priv.Zero()
	return fromDecredPub(priv.PubKey()), nil
}

// Sign calculates an ECDSA signature of digest. The s value of the result is
// always in the lower half of the curve order.
//
// This function is susceptible to chosen plaintext attacks that can leak
// information about the private key that is used for signing. Callers must
// be aware that the given hash cannot be chosen by an adversary.
//
// Sign 计算 ECDSA 签名，生成的签名格式为 [R || S || V]，V 为 0 或 1。
func Sign(sec SecKey, digest common.Hash) (sig Signature, err error) {
	priv, err := secretKey(sec)
	if err != nil {
		return sig, err
	}
	defer priv.Zero()

	compact := decred_ecdsa.SignCompact(priv, digest[:], false)
	// decred puts 27+v in front, move it to the end.
	copy(sig[:], compact[1:])
	sig[RecoveryIDOffset] = compact[0] - 27
	return sig, nil
}

// Recover returns the public key that created sig over digest.
// Recover 根据签名和被签名的摘要恢复出签名者公钥。
func Recover(sig Signature, digest common.Hash) (PubKey, error) {
	// secp256k1 only has four recovery ids
	if sig.V() > 3 {
		return PubKey{}, ErrBadSignature
	}
	btcsig := make([]byte, SignatureLength)
	btcsig[0] = sig.V() + 27
	copy(btcsig[1:], sig[:RecoveryIDOffset])

	pub, _, err := decred_ecdsa.RecoverCompact(btcsig, digest[:])
	if err != nil {
		return PubKey{}, ErrBadSignature
	}
	return fromDecredPub(pub), nil
}

// Verify checks that sig over digest was created by the owner of pub.
func Verify(pub PubKey, sig Signature, digest common.Hash) bool {
	recovered, err := Recover(sig, digest)
	return err == nil && recovered == pub
}

// KeyPair bundles a secret key with its public key and account address.
type KeyPair struct {
	Secret  SecKey
	Public  PubKey
	Address common.Address
}

// NewKeyPair derives the public key and address of sec.
func NewKeyPair(sec SecKey) (*KeyPair, error) {
	pub, err := ToPubKey(sec)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Secret: sec, Public: pub, Address: PubkeyToAddress(pub)}, nil
}

// GenerateKeyPair creates a key pair from a fresh random secret.
// GenerateKeyPair 生成新的随机密钥对。
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	defer priv.Zero()
	var sec SecKey
	priv.Key.PutBytes((*[32]byte)(&sec))
	return NewKeyPair(sec)
}
