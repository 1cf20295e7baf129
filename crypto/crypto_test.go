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

package crypto

import (
	"bytes"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/learn-bcos/go-bcos/common"
	"github.com/learn-bcos/go-bcos/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testSecHex  = "0x1f2b77e3a4b50120692912c94b204540ad44404386b10c615786a7efaa065d20"
	testPubHex  = "0xdfa13518ff965498743f3a01439dd86bc34ff9969c7a3f0430bbf8865734252953c9884af787b2cadd45f92dff2b81e21cfdf98873e492e5fdc07e9eb67ca74d"
	testAddrHex = "0xabcd68033a72978c1084e2d44d1fa06ddc4a2d57"
)

// These tests are sanity checks.
// They should ensure that we don't e.g. use Sha3-224 instead of Sha3-256
// and that the sha3 library uses keccak-f permutation.
func TestKeccak256Hash(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte{}, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{[]byte("hello"), "0x1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"},
		// longer than the sponge rate of 136 bytes
		{[]byte(strings.Repeat("r", 200)), "0xaac9a41d73145d4163a16b74db2e559b49158aac08932f04ed58db939c303c0d"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Keccak256Hash(test.in).Hex())
		assert.Equal(t, test.want, hexutil.Encode(Keccak256(test.in)))
	}
	// split input hashes the same as joined input
	assert.Equal(t, Keccak256Hash([]byte("hello")), Keccak256Hash([]byte("he"), []byte("llo")))
}

func TestToPubKey(t *testing.T) {
	pub, err := ToPubKey(common.HexToHash(testSecHex))
	require.NoError(t, err)
	assert.Equal(t, testPubHex, pub.Hex())

	_, err = ToPubKey(SecKey{})
	assert.ErrorIs(t, err, ErrBadSecKey)

	// the group order itself is not a valid key
	_, err = ToPubKey(common.HexToHash("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"))
	assert.ErrorIs(t, err, ErrBadSecKey)
}

func TestSignAndRecover(t *testing.T) {
	sec := common.HexToHash(testSecHex)
	digest := Keccak256Hash([]byte("hello"))

	sig, err := Sign(sec, digest)
	require.NoError(t, err)
	assert.True(t, sig.IsValid())

	pub, err := Recover(sig, digest)
	require.NoError(t, err)
	assert.Equal(t, testPubHex, pub.Hex())
	assert.True(t, Verify(pub, sig, digest))

	// a different digest recovers a different key
	assert.False(t, Verify(pub, sig, Keccak256Hash([]byte("world"))))

	// signing is deterministic
	sig2, err := Sign(sec, digest)
	require.NoError(t, err)
	assert.Equal(t, sig, sig2)
}

func TestSignLowS(t *testing.T) {
	halfN := common.HexToHash("0x7fffffffffffffffffffffffffffffff5d576e7357a4501ddfe92f46681b20a0")
	sec := common.HexToHash(testSecHex)
	for i := 0; i < 16; i++ {
		sig, err := Sign(sec, Keccak256Hash([]byte{byte(i)}))
		require.NoError(t, err)
		s := sig.S()
		assert.LessOrEqual(t, bytes.Compare(s[:], halfN[:]), 0)
	}
}

func TestRecoverErrors(t *testing.T) {
	digest := Keccak256Hash([]byte("hello"))
	sig, err := Sign(common.HexToHash(testSecHex), digest)
	require.NoError(t, err)

	bad := sig
	bad[RecoveryIDOffset] = 4
	_, err = Recover(bad, digest)
	assert.ErrorIs(t, err, ErrBadSignature)
	assert.False(t, bad.IsValid())

	_, err = Recover(Signature{}, digest)
	assert.ErrorIs(t, err, ErrBadSignature)
	assert.False(t, Signature{}.IsValid())
}

func TestSignatureIsValid(t *testing.T) {
	var sig Signature
	sig[31], sig[63] = 1, 1
	assert.True(t, sig.IsValid())

	sig[RecoveryIDOffset] = 2
	assert.False(t, sig.IsValid())

	sig[RecoveryIDOffset] = 0
	n := common.HexToHash("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	copy(sig[:32], n[:])
	assert.False(t, sig.IsValid())
}

func TestPubkeyToAddress(t *testing.T) {
	kp, err := NewKeyPair(common.HexToHash(testSecHex))
	require.NoError(t, err)
	assert.Equal(t, testPubHex, kp.Public.Hex())
	assert.Equal(t, testAddrHex, kp.Address.Hex())
	assert.Equal(t, kp.Address, PubkeyToAddress(kp.Public))
}

func TestCreateAddress(t *testing.T) {
	sender := common.HexToAddress("0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0")
	assert.Equal(t, "0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d", CreateAddress(sender, uint256.NewInt(0)).Hex())
	assert.Equal(t, "0x343c43a37d37dff08ae8c4a11544c718abb4fcf8", CreateAddress(sender, uint256.NewInt(1)).Hex())
	assert.Equal(t, "0xf778b86fa74e846c4f0a1fbd1335fe81c00a0c91", CreateAddress(sender, uint256.NewInt(2)).Hex())
}

func TestGenerateKeyPair(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)
	assert.False(t, kp.Secret.IsZero())

	digest := common.RandomHash()
	sig, err := Sign(kp.Secret, digest)
	require.NoError(t, err)
	assert.True(t, Verify(kp.Public, sig, digest))
}

func BenchmarkSign(b *testing.B) {
	sec := common.HexToHash(testSecHex)
	digest := Keccak256Hash([]byte("hello"))
	for i := 0; i < b.N; i++ {
		Sign(sec, digest)
	}
}

func BenchmarkRecover(b *testing.B) {
	digest := Keccak256Hash([]byte("hello"))
	sig, _ := Sign(common.HexToHash(testSecHex), digest)
	for i := 0; i < b.N; i++ {
		Recover(sig, digest)
	}
}
