// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/geonft/account"
	"github.com/bitmark-inc/geonft/fault"
)

func TestPrivateFromSeed(t *testing.T) {
	privateKey := makeKey(t, account.TreasureKind, treasureSeed)

	assert.Equal(t, account.TreasureKind, privateKey.Kind(), "wrong kind")
	assert.Equal(t, treasureSeed, privateKey.Seed(), "wrong seed")
	assert.Equal(t, account.TreasureKind, privateKey.PublicKey().Kind(), "wrong public key kind")

	again := makeKey(t, account.TreasureKind, treasureSeed)
	assert.Equal(t, privateKey.PublicKey().String(), again.PublicKey().String(), "seed is not deterministic")

	other := makeKey(t, account.AccountKind, treasureSeed)
	assert.Equal(t, privateKey.PublicKey().Bytes(), other.PublicKey().Bytes(), "kind changed the key bytes")
	assert.NotEqual(t, privateKey.PublicKey().String(), other.PublicKey().String(), "kind did not change the encoding")
}

func TestNewPrivate(t *testing.T) {
	first, err := account.NewPrivateKey(account.AccountKind, rand.Reader)
	assert.Nil(t, err, "wrong NewPrivateKey")
	second, err := account.NewPrivateKey(account.AccountKind, rand.Reader)
	assert.Nil(t, err, "wrong NewPrivateKey")

	assert.NotEqual(t, first.Seed(), second.Seed(), "random keys are equal")

	fixed, err := account.NewPrivateKey(account.AccountKind, bytes.NewReader(accountSeed))
	assert.Nil(t, err, "wrong NewPrivateKey from reader")
	assert.Equal(t, accountSeed, fixed.Seed(), "reader was not used as the seed")
}

func TestPrivateInvalid(t *testing.T) {
	_, err := account.PrivateKeyFromSeed(account.AccountKind, accountSeed[:31])
	assert.Equal(t, fault.InvalidKeyLength, err, "short seed accepted")

	_, err = account.PrivateKeyFromSeed(account.Kind(99), accountSeed)
	assert.Equal(t, fault.InvalidKeyKind, err, "bad kind accepted")

	_, err = account.NewPrivateKey(account.Kind(-1), rand.Reader)
	assert.Equal(t, fault.InvalidKeyKind, err, "bad kind accepted")

	_, err = account.NewPrivateKey(account.AccountKind, bytes.NewReader([]byte{1, 2, 3}))
	assert.NotNil(t, err, "short random source accepted")
}

func TestPrivateSign(t *testing.T) {
	privateKey := makeKey(t, account.AccountKind, accountSeed)
	message := []byte("plant")

	signature := privateKey.Sign(message)
	assert.Nil(t, privateKey.PublicKey().CheckSignature(message, signature), "signature does not verify")

	other := makeKey(t, account.AccountKind, treasureSeed)
	err := other.PublicKey().CheckSignature(message, signature)
	assert.True(t, fault.IsErrSignature(err), "wrong error: %v", err)
}
