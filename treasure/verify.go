// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasure

import (
	"github.com/bitmark-inc/geonft/account"
	"github.com/bitmark-inc/geonft/fault"
)

// PlantedFunc - reports whether a canonical treasure key has been planted
type PlantedFunc func(treasureKey string) (bool, error)

// Verify - decode both keys and both signatures and check them
//
// any decode failure is a fault.DecodeError, any verification failure
// is a fault.SignatureError
func (request *PlantRequest) Verify() (*Plant, error) {
	treasureKey, err := account.TreasureKeyFromString(request.TreasurePublicKey)
	if nil != err {
		return nil, err
	}
	accountKey, err := account.AccountKeyFromString(request.AccountPublicKey)
	if nil != err {
		return nil, err
	}
	treasureSignature, err := account.SignatureFromString(request.TreasureSignature)
	if nil != err {
		return nil, err
	}
	accountSignature, err := account.SignatureFromString(request.AccountSignature)
	if nil != err {
		return nil, err
	}

	digest := ImageDigest(request.Image)

	err = treasureKey.CheckSignature(PlantTreasureMessage(accountKey, digest), treasureSignature)
	if nil != err {
		return nil, err
	}
	err = accountKey.CheckSignature(PlantAccountMessage(treasureKey), accountSignature)
	if nil != err {
		return nil, err
	}

	return &Plant{
		Account:  accountKey,
		Treasure: treasureKey,
		Image:    request.Image,
		Digest:   digest,
	}, nil
}

// Verify - decode both keys and both signatures, check them and check
// that the treasure has been planted
func (request *ClaimRequest) Verify(planted PlantedFunc) (*Claim, error) {
	treasureKey, err := account.TreasureKeyFromString(request.TreasurePublicKey)
	if nil != err {
		return nil, err
	}

	ok, err := planted(treasureKey.String())
	if nil != err {
		return nil, err
	}
	if !ok {
		return nil, fault.TreasureNotPlanted
	}

	accountKey, err := account.AccountKeyFromString(request.AccountPublicKey)
	if nil != err {
		return nil, err
	}
	treasureSignature, err := account.SignatureFromString(request.TreasureSignature)
	if nil != err {
		return nil, err
	}
	accountSignature, err := account.SignatureFromString(request.AccountSignature)
	if nil != err {
		return nil, err
	}

	err = treasureKey.CheckSignature(ClaimTreasureMessage(accountKey), treasureSignature)
	if nil != err {
		return nil, err
	}
	err = accountKey.CheckSignature(ClaimAccountMessage(treasureKey), accountSignature)
	if nil != err {
		return nil, err
	}

	return &Claim{
		Account:  accountKey,
		Treasure: treasureKey,
	}, nil
}

// Decode - decode keys of a stored plant without checking signatures
//
// only for records that passed Verify before they were stored
func (request *PlantRequest) Decode() (*Plant, error) {
	treasureKey, err := account.TreasureKeyFromString(request.TreasurePublicKey)
	if nil != err {
		return nil, err
	}
	accountKey, err := account.AccountKeyFromString(request.AccountPublicKey)
	if nil != err {
		return nil, err
	}
	return &Plant{
		Account:  accountKey,
		Treasure: treasureKey,
		Image:    request.Image,
		Digest:   ImageDigest(request.Image),
	}, nil
}

// Decode - decode keys of a stored claim without checking signatures
//
// only for records that passed Verify before they were stored
func (request *ClaimRequest) Decode() (*Claim, error) {
	treasureKey, err := account.TreasureKeyFromString(request.TreasurePublicKey)
	if nil != err {
		return nil, err
	}
	accountKey, err := account.AccountKeyFromString(request.AccountPublicKey)
	if nil != err {
		return nil, err
	}
	return &Claim{
		Account:  accountKey,
		Treasure: treasureKey,
	}, nil
}
