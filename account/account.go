// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/btcsuite/btcutil/bech32"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/geonft/fault"
)

// Kind - the role of a key
type Kind int

// enumeration of key roles
const (
	AccountKind  Kind = iota // a player's identity
	TreasureKind Kind = iota // the dedicated key of a single treasure
	kindLimit    Kind = iota
)

// bech32 human readable parts, indexed by Kind
var humanReadablePart = [kindLimit]string{
	AccountKind:  "account",
	TreasureKind: "treasure",
}

// decode errors, indexed by Kind
var decodeError = [kindLimit]error{
	AccountKind:  fault.InvalidAccountKey,
	TreasureKind: fault.InvalidTreasureKey,
}

// PublicKey - an ed25519 public key together with its role
type PublicKey struct {
	kind Kind
	key  ed25519.PublicKey
}

// AccountKeyFromString - decode a bech32 account public key
func AccountKeyFromString(encoded string) (*PublicKey, error) {
	return FromString(AccountKind, encoded)
}

// TreasureKeyFromString - decode a bech32 treasure public key
func TreasureKeyFromString(encoded string) (*PublicKey, error) {
	return FromString(TreasureKind, encoded)
}

// FromString - decode a bech32 public key of the given kind
//
// the human readable part must match the kind, so an account key is
// never accepted where a treasure key is expected
func FromString(kind Kind, encoded string) (*PublicKey, error) {
	if kind < 0 || kind >= kindLimit {
		return nil, fault.InvalidKeyKind
	}

	hrp, data, err := bech32.Decode(encoded)
	if nil != err {
		return nil, decodeError[kind]
	}
	if hrp != humanReadablePart[kind] {
		return nil, decodeError[kind]
	}

	key, err := bech32.ConvertBits(data, 5, 8, false)
	if nil != err {
		return nil, decodeError[kind]
	}

	return FromBytes(kind, key)
}

// FromBytes - wrap raw public key bytes
func FromBytes(kind Kind, key []byte) (*PublicKey, error) {
	if kind < 0 || kind >= kindLimit {
		return nil, fault.InvalidKeyKind
	}
	if ed25519.PublicKeySize != len(key) {
		return nil, fault.InvalidKeyLength
	}

	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, key)

	return &PublicKey{
		kind: kind,
		key:  publicKey,
	}, nil
}

// Kind - role of this key
func (publicKey *PublicKey) Kind() Kind {
	return publicKey.kind
}

// Bytes - the raw 32 byte key
func (publicKey *PublicKey) Bytes() []byte {
	return publicKey.key[:]
}

// String - canonical bech32 encoding
func (publicKey *PublicKey) String() string {
	data, err := bech32.ConvertBits(publicKey.key, 8, 5, true)
	if nil != err {
		return ""
	}
	s, err := bech32.Encode(humanReadablePart[publicKey.kind], data)
	if nil != err {
		return ""
	}
	return s
}

// MarshalText - convert a key to its bech32 JSON form
func (publicKey PublicKey) MarshalText() ([]byte, error) {
	return []byte(publicKey.String()), nil
}

// CheckSignature - verify an ed25519 signature of a message
func (publicKey *PublicKey) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(publicKey.key, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Canonical - decode and re-encode so that only one spelling of a key
// is ever stored
func Canonical(kind Kind, encoded string) (string, error) {
	publicKey, err := FromString(kind, encoded)
	if nil != err {
		return "", err
	}
	return publicKey.String(), nil
}
