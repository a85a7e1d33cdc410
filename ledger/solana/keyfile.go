// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package solana

import (
	"bytes"
	"encoding/json"
	"io/ioutil"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/geonft/fault"
)

// LoadPayerKey - read a solana-keygen JSON key file
//
// the file holds the 64 byte private key as an array of numbers
func LoadPayerKey(fileName string) (ed25519.PrivateKey, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	var numbers []int
	err = json.Unmarshal(data, &numbers)
	if nil != err {
		return nil, fault.InvalidKeyFile
	}
	if ed25519.PrivateKeySize != len(numbers) {
		return nil, fault.InvalidKeyFile
	}

	raw := make([]byte, len(numbers))
	for i, n := range numbers {
		if n < 0 || n > 255 {
			return nil, fault.InvalidKeyFile
		}
		raw[i] = byte(n)
	}

	privateKey := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !bytes.Equal(privateKey[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
		return nil, fault.InvalidKeyFile
	}
	return privateKey, nil
}

// SavePayerKey - write a key in solana-keygen JSON format
func SavePayerKey(fileName string, privateKey ed25519.PrivateKey) error {
	numbers := make([]int, len(privateKey))
	for i, b := range privateKey {
		numbers[i] = int(b)
	}
	data, err := json.Marshal(numbers)
	if nil != err {
		return err
	}
	return ioutil.WriteFile(fileName, data, 0600)
}
