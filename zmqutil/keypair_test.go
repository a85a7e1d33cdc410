// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/zmqutil"
)

func TestMakeKeyPair(t *testing.T) {
	directory, err := ioutil.TempDir("", "zmq-keys-")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(directory)

	publicFile := filepath.Join(directory, "publish.public")
	privateFile := filepath.Join(directory, "publish.private")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Nil(t, err, "wrong MakeKeyPair")

	publicKey, err := zmqutil.ReadPublicKeyFile(publicFile)
	assert.Nil(t, err, "wrong ReadPublicKeyFile")
	assert.Equal(t, 32, len(publicKey), "wrong public key length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(privateFile)
	assert.Nil(t, err, "wrong ReadPrivateKeyFile")
	assert.Equal(t, 32, len(privateKey), "wrong private key length")

	_, err = zmqutil.ReadPublicKeyFile(privateFile)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private key read as public")

	_, err = zmqutil.ReadPrivateKeyFile(publicFile)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public key read as private")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "key files overwritten")
}

func TestParseKey(t *testing.T) {
	_, _, err := zmqutil.ParseKey("PUBLIC:1234")
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "short key accepted")

	_, _, err = zmqutil.ParseKey("SECRET:00")
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "untagged key accepted")

	key, private, err := zmqutil.ParseKey("  PRIVATE:000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f\n")
	assert.Nil(t, err, "wrong ParseKey")
	assert.True(t, private, "private key not recognised")
	assert.Equal(t, byte(0x1f), key[31], "wrong key bytes")
}
