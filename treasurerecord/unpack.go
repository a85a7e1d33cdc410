// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasurerecord

import (
	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/util"
)

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   switch r := result.(type) {
//   case *treasurerecord.PlantTreasure:
func (record Packed) Unpack() (r Record, n int, e error) {

	defer func() {
		if p := recover(); nil != p {
			e = fault.NotTreasureRecordPack
		}
	}()

	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.NotTreasureRecordPack
	}

unpack_switch:
	switch TagType(recordType) {

	case PlantTreasureTag:

		account, accountLength := unpackField(record[n:], maxKeyLength)
		if 0 == accountLength {
			break unpack_switch
		}
		n += accountLength

		treasure, treasureLength := unpackField(record[n:], maxKeyLength)
		if 0 == treasureLength {
			break unpack_switch
		}
		n += treasureLength

		digest, digestLength := unpackField(record[n:], maxDigestLength)
		if 0 == digestLength {
			break unpack_switch
		}
		n += digestLength

		plant := &PlantTreasure{
			Account:  account,
			Treasure: treasure,
			Digest:   digest,
		}
		return plant, n, nil

	case ClaimTreasureTag:

		account, accountLength := unpackField(record[n:], maxKeyLength)
		if 0 == accountLength {
			break unpack_switch
		}
		n += accountLength

		treasure, treasureLength := unpackField(record[n:], maxKeyLength)
		if 0 == treasureLength {
			break unpack_switch
		}
		n += treasureLength

		claim := &ClaimTreasure{
			Account:  account,
			Treasure: treasure,
		}
		return claim, n, nil

	default:
	}
	return nil, 0, fault.NotTreasureRecordPack
}

// read one length prefixed field, returning a copy and the bytes consumed
func unpackField(buffer []byte, maximum int) ([]byte, int) {
	length, offset := util.ClippedVarint64(buffer, 1, maximum)
	if 0 == offset {
		return nil, 0
	}
	field := make([]byte, length)
	copy(field, buffer[offset:offset+length])
	return field, offset + length
}
