// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasure

import (
	"crypto/sha256"

	"github.com/bitmark-inc/geonft/account"
	"github.com/bitmark-inc/geonft/treasurerecord"
)

// message prefixes
const (
	plantPrefix = "plant"
	claimPrefix = "claim"
)

// DigestSize - bytes in an image digest
const DigestSize = sha256.Size

// PlantRequest - the stored form of a plant
type PlantRequest struct {
	AccountPublicKey  string `json:"account_public_key"`  // bech32: the planting account
	TreasurePublicKey string `json:"treasure_public_key"` // bech32: the treasure
	Image             []byte `json:"image"`               // base64 in JSON
	AccountSignature  string `json:"account_signature"`   // base64: by account key
	TreasureSignature string `json:"treasure_signature"`  // base64: by treasure key
}

// ClaimRequest - the stored form of a claim
type ClaimRequest struct {
	AccountPublicKey  string `json:"account_public_key"`  // bech32: the claiming account
	TreasurePublicKey string `json:"treasure_public_key"` // bech32: the treasure
	AccountSignature  string `json:"account_signature"`   // base64: by account key
	TreasureSignature string `json:"treasure_signature"`  // base64: by treasure key
}

// Plant - a verified plant request with decoded keys
type Plant struct {
	Account  *account.PublicKey
	Treasure *account.PublicKey
	Image    []byte
	Digest   [DigestSize]byte
}

// Claim - a verified claim request with decoded keys
type Claim struct {
	Account  *account.PublicKey
	Treasure *account.PublicKey
}

// ImageDigest - digest carried on the ledger in place of the image
func ImageDigest(image []byte) [DigestSize]byte {
	return sha256.Sum256(image)
}

// PlantAccountMessage - the message signed by the planting account
func PlantAccountMessage(treasureKey *account.PublicKey) []byte {
	return append([]byte(plantPrefix), treasureKey.String()...)
}

// PlantTreasureMessage - the message signed by the treasure key
func PlantTreasureMessage(accountKey *account.PublicKey, digest [DigestSize]byte) []byte {
	message := append([]byte(plantPrefix), accountKey.String()...)
	return append(message, digest[:]...)
}

// ClaimAccountMessage - the message signed by the claiming account
func ClaimAccountMessage(treasureKey *account.PublicKey) []byte {
	return append([]byte(claimPrefix), treasureKey.String()...)
}

// ClaimTreasureMessage - the message signed by the treasure key
func ClaimTreasureMessage(accountKey *account.PublicKey) []byte {
	return append([]byte(claimPrefix), accountKey.String()...)
}

// Key - canonical treasure key, the identity of the treasure
func (plant *Plant) Key() string {
	return plant.Treasure.String()
}

// Record - the on-chain form, the image is replaced by its digest
func (plant *Plant) Record() *treasurerecord.PlantTreasure {
	return &treasurerecord.PlantTreasure{
		Account:  plant.Account.Bytes(),
		Treasure: plant.Treasure.Bytes(),
		Digest:   plant.Digest[:],
	}
}

// Key - canonical treasure key, the identity of the treasure
func (claim *Claim) Key() string {
	return claim.Treasure.String()
}

// Record - the on-chain form
func (claim *Claim) Record() *treasurerecord.ClaimTreasure {
	return &treasurerecord.ClaimTreasure{
		Account:  claim.Account.Bytes(),
		Treasure: claim.Treasure.Bytes(),
	}
}
