// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasurerecord

import (
	"github.com/bitmark-inc/geonft/util"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded as a Varint64 at the start of the record
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	PlantTreasureTag = TagType(iota)
	ClaimTreasureTag = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// limits on field sizes
const (
	maxKeyLength    = 64
	maxDigestLength = 64
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
}

// PlantTreasure - the ledger form of a planted treasure
//
// the image itself is stored in the content store, only its digest is
// carried here
type PlantTreasure struct {
	Account  []byte `json:"account"`
	Treasure []byte `json:"treasure"`
	Digest   []byte `json:"digest"`
}

// ClaimTreasure - the ledger form of a claim
type ClaimTreasure struct {
	Account  []byte `json:"account"`
	Treasure []byte `json:"treasure"`
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}
