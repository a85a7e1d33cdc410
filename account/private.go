// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/geonft/fault"
)

// PrivateKey - an ed25519 private key together with its role
type PrivateKey struct {
	kind Kind
	key  ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key from a random source
func NewPrivateKey(kind Kind, random io.Reader) (*PrivateKey, error) {
	if kind < 0 || kind >= kindLimit {
		return nil, fault.InvalidKeyKind
	}
	_, key, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		kind: kind,
		key:  key,
	}, nil
}

// PrivateKeyFromSeed - regenerate a key from its 32 byte seed
func PrivateKeyFromSeed(kind Kind, seed []byte) (*PrivateKey, error) {
	if kind < 0 || kind >= kindLimit {
		return nil, fault.InvalidKeyKind
	}
	if ed25519.SeedSize != len(seed) {
		return nil, fault.InvalidKeyLength
	}
	return &PrivateKey{
		kind: kind,
		key:  ed25519.NewKeyFromSeed(seed),
	}, nil
}

// Kind - role of this key
func (privateKey *PrivateKey) Kind() Kind {
	return privateKey.kind
}

// Seed - the 32 byte seed the key was generated from
func (privateKey *PrivateKey) Seed() []byte {
	return privateKey.key.Seed()
}

// PublicKey - the matching public key
func (privateKey *PrivateKey) PublicKey() *PublicKey {
	publicKey, _ := FromBytes(privateKey.kind, privateKey.key.Public().(ed25519.PublicKey))
	return publicKey
}

// Sign - ed25519 signature of a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.key, message)
}
