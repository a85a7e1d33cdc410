// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasurerecord

import (
	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/util"
)

// Pack - pack a plant record
func (plant *PlantTreasure) Pack() (Packed, error) {
	if err := checkKey(plant.Account, fault.InvalidAccountKey); nil != err {
		return nil, err
	}
	if err := checkKey(plant.Treasure, fault.InvalidTreasureKey); nil != err {
		return nil, err
	}
	if 0 == len(plant.Digest) || len(plant.Digest) > maxDigestLength {
		return nil, fault.NotTreasureRecordPack
	}

	message := appendUint64(nil, uint64(PlantTreasureTag))
	message = appendBytes(message, plant.Account)
	message = appendBytes(message, plant.Treasure)
	message = appendBytes(message, plant.Digest)
	return message, nil
}

// Pack - pack a claim record
func (claim *ClaimTreasure) Pack() (Packed, error) {
	if err := checkKey(claim.Account, fault.InvalidAccountKey); nil != err {
		return nil, err
	}
	if err := checkKey(claim.Treasure, fault.InvalidTreasureKey); nil != err {
		return nil, err
	}

	message := appendUint64(nil, uint64(ClaimTreasureTag))
	message = appendBytes(message, claim.Account)
	message = appendBytes(message, claim.Treasure)
	return message, nil
}

func checkKey(key []byte, err error) error {
	if 0 == len(key) || len(key) > maxKeyLength {
		return err
	}
	return nil
}

// append a single field to a buffer
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}
