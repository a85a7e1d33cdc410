// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/geonft/account"
	"github.com/bitmark-inc/geonft/fault"
)

// key kind names as stored in key files
const (
	AccountName  = "account"
	TreasureName = "treasure"
)

// RawKeyPair - text version of a key file
type RawKeyPair struct {
	Kind      string `json:"kind"`
	PublicKey string `json:"public_key"`
	Seed      string `json:"seed"`
}

// KindFromName - convert a kind name to an account kind
func KindFromName(name string) (account.Kind, error) {
	switch name {
	case AccountName:
		return account.AccountKind, nil
	case TreasureName:
		return account.TreasureKind, nil
	default:
		return 0, fault.InvalidKeyKind
	}
}

// NameFromKind - the key file name of an account kind
func NameFromKind(kind account.Kind) string {
	if account.TreasureKind == kind {
		return TreasureName
	}
	return AccountName
}

// MakeRawKeyPair - create a new key of the given kind
func MakeRawKeyPair(kind account.Kind) (*RawKeyPair, *account.PrivateKey, error) {
	privateKey, err := account.NewPrivateKey(kind, rand.Reader)
	if nil != err {
		return nil, nil, err
	}
	return Raw(privateKey), privateKey, nil
}

// Raw - text form of a private key
func Raw(privateKey *account.PrivateKey) *RawKeyPair {
	return &RawKeyPair{
		Kind:      NameFromKind(privateKey.Kind()),
		PublicKey: privateKey.PublicKey().String(),
		Seed:      base64.StdEncoding.EncodeToString(privateKey.Seed()),
	}
}

// PrivateKey - recover the private key and check that it matches the
// recorded public key
func (raw *RawKeyPair) PrivateKey() (*account.PrivateKey, error) {
	kind, err := KindFromName(raw.Kind)
	if nil != err {
		return nil, err
	}
	seed, err := base64.StdEncoding.DecodeString(raw.Seed)
	if nil != err {
		return nil, fault.InvalidKeyFile
	}
	privateKey, err := account.PrivateKeyFromSeed(kind, seed)
	if nil != err {
		return nil, err
	}
	if privateKey.PublicKey().String() != raw.PublicKey {
		return nil, fault.InvalidKeyFile
	}
	return privateKey, nil
}

// Save - write a key file readable only by the owner
func (raw *RawKeyPair) Save(fileName string) error {
	data, err := json.MarshalIndent(raw, "", "  ")
	if nil != err {
		return err
	}
	return ioutil.WriteFile(fileName, append(data, '\n'), 0600)
}

// Load - read a key file and recover the private key
func Load(fileName string) (*account.PrivateKey, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	var raw RawKeyPair
	if err := json.Unmarshal(data, &raw); nil != err {
		return nil, fault.InvalidKeyFile
	}
	return raw.PrivateKey()
}

// Exists - true if the key file is already present
func Exists(fileName string) bool {
	_, err := os.Stat(fileName)
	return nil == err
}
