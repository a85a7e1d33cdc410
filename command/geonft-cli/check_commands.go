// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io/ioutil"

	"github.com/bitmark-inc/geonft/account"
	"github.com/bitmark-inc/geonft/events"
	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/keypair"
)

// request kinds accepted by admit and verify
const (
	plantKind = "plant"
	claimKind = "claim"
)

func checkEvents(m *metadata) (*events.Store, error) {
	if "" == m.events {
		return nil, ErrRequiredEvents
	}
	return events.New(m.events)
}

// load a key file and check it holds the expected kind of key
func checkKeyFile(fileName string, kind account.Kind, missing error) (*account.PrivateKey, error) {
	if "" == fileName {
		return nil, missing
	}
	privateKey, err := keypair.Load(fileName)
	if nil != err {
		return nil, err
	}
	if kind != privateKey.Kind() {
		return nil, fault.InvalidKeyKind
	}
	return privateKey, nil
}

func checkRequestKind(kind string) (string, error) {
	switch kind {
	case plantKind, claimKind:
		return kind, nil
	default:
		return "", ErrInvalidRequestKind
	}
}

// read a JSON request into request
func checkRequestFile(fileName string, request interface{}) error {
	if "" == fileName {
		return ErrRequiredRequestFile
	}
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}
	return json.Unmarshal(data, request)
}
