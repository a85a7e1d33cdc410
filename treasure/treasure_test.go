// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasure_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/geonft/account"
	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/treasure"
)

var testImage = []byte("\x89PNG\r\n\x1a\n a very small treasure picture")

type testKeys struct {
	planter  *account.PrivateKey
	claimer  *account.PrivateKey
	treasure *account.PrivateKey
}

func makeKeys(t *testing.T) testKeys {
	keys := testKeys{}
	var err error
	keys.planter, err = account.PrivateKeyFromSeed(account.AccountKind, bytes.Repeat([]byte{0x01}, 32))
	if nil != err {
		t.Fatalf("planter key error: %s", err)
	}
	keys.claimer, err = account.PrivateKeyFromSeed(account.AccountKind, bytes.Repeat([]byte{0x02}, 32))
	if nil != err {
		t.Fatalf("claimer key error: %s", err)
	}
	keys.treasure, err = account.PrivateKeyFromSeed(account.TreasureKind, bytes.Repeat([]byte{0x03}, 32))
	if nil != err {
		t.Fatalf("treasure key error: %s", err)
	}
	return keys
}

func always(bool) treasure.PlantedFunc {
	return func(string) (bool, error) { return true, nil }
}

func never(string) (bool, error) {
	return false, nil
}

// flip one bit of the raw key and re-encode
func flipKey(t *testing.T, kind account.Kind, encoded string, bit int) string {
	publicKey, err := account.FromString(kind, encoded)
	if nil != err {
		t.Fatalf("decode key error: %s", err)
	}
	raw := append([]byte{}, publicKey.Bytes()...)
	raw[bit/8] ^= 1 << uint(bit%8)
	flipped, err := account.FromBytes(kind, raw)
	if nil != err {
		t.Fatalf("flipped key error: %s", err)
	}
	return flipped.String()
}

// flip one bit of the raw signature and re-encode
func flipSignature(t *testing.T, encoded string, bit int) string {
	signature, err := account.SignatureFromString(encoded)
	if nil != err {
		t.Fatalf("decode signature error: %s", err)
	}
	raw := append(account.Signature{}, signature...)
	raw[bit/8] ^= 1 << uint(bit%8)
	return raw.String()
}

func TestPlantVerifies(t *testing.T) {
	keys := makeKeys(t)

	request, err := treasure.SignPlant(keys.planter, keys.treasure, testImage)
	assert.Nil(t, err, "wrong SignPlant")

	plant, err := request.Verify()
	assert.Nil(t, err, "valid plant rejected")
	assert.Equal(t, keys.treasure.PublicKey().String(), plant.Key(), "wrong treasure key")
	assert.Equal(t, treasure.ImageDigest(testImage), plant.Digest, "wrong digest")

	record := plant.Record()
	assert.Equal(t, keys.planter.PublicKey().Bytes(), record.Account, "wrong record account")
	assert.Equal(t, keys.treasure.PublicKey().Bytes(), record.Treasure, "wrong record treasure")
	assert.Equal(t, plant.Digest[:], record.Digest, "wrong record digest")
}

func TestPlantImageBitFlips(t *testing.T) {
	keys := makeKeys(t)
	request, _ := treasure.SignPlant(keys.planter, keys.treasure, testImage)

	for bit := 0; bit < 8*len(testImage); bit += 1 {
		tampered := *request
		tampered.Image = append([]byte{}, testImage...)
		tampered.Image[bit/8] ^= 1 << uint(bit%8)

		_, err := tampered.Verify()
		assert.Equal(t, fault.InvalidSignature, err, "image bit %d flip accepted", bit)
	}
}

func TestPlantKeyBitFlips(t *testing.T) {
	keys := makeKeys(t)
	request, _ := treasure.SignPlant(keys.planter, keys.treasure, testImage)

	for bit := 0; bit < 256; bit += 1 {
		tampered := *request
		tampered.AccountPublicKey = flipKey(t, account.AccountKind, request.AccountPublicKey, bit)
		_, err := tampered.Verify()
		assert.True(t, fault.IsErrSignature(err), "account key bit %d flip accepted", bit)

		tampered = *request
		tampered.TreasurePublicKey = flipKey(t, account.TreasureKind, request.TreasurePublicKey, bit)
		_, err = tampered.Verify()
		assert.True(t, fault.IsErrSignature(err), "treasure key bit %d flip accepted", bit)
	}
}

func TestPlantSignatureBitFlips(t *testing.T) {
	keys := makeKeys(t)
	request, _ := treasure.SignPlant(keys.planter, keys.treasure, testImage)

	for bit := 0; bit < 512; bit += 1 {
		tampered := *request
		tampered.AccountSignature = flipSignature(t, request.AccountSignature, bit)
		_, err := tampered.Verify()
		assert.True(t, fault.IsErrSignature(err), "account signature bit %d flip accepted", bit)

		tampered = *request
		tampered.TreasureSignature = flipSignature(t, request.TreasureSignature, bit)
		_, err = tampered.Verify()
		assert.True(t, fault.IsErrSignature(err), "treasure signature bit %d flip accepted", bit)
	}
}

func TestPlantSwappedSignatures(t *testing.T) {
	keys := makeKeys(t)
	request, _ := treasure.SignPlant(keys.planter, keys.treasure, testImage)

	request.AccountSignature, request.TreasureSignature = request.TreasureSignature, request.AccountSignature
	_, err := request.Verify()
	assert.Equal(t, fault.InvalidSignature, err, "swapped signatures accepted")
}

func TestPlantDecodeErrors(t *testing.T) {
	keys := makeKeys(t)
	request, _ := treasure.SignPlant(keys.planter, keys.treasure, testImage)

	tampered := *request
	tampered.TreasurePublicKey = "treasure1invalid"
	_, err := tampered.Verify()
	assert.Equal(t, fault.InvalidTreasureKey, err, "wrong treasure key error")

	tampered = *request
	tampered.AccountPublicKey = request.TreasurePublicKey
	_, err = tampered.Verify()
	assert.Equal(t, fault.InvalidAccountKey, err, "wrong account key error")

	tampered = *request
	tampered.AccountSignature = "not base64!"
	_, err = tampered.Verify()
	assert.Equal(t, fault.InvalidSignatureEncoding, err, "wrong signature error")
	assert.True(t, fault.IsErrDecode(err), "wrong error class")
}

func TestClaimVerifies(t *testing.T) {
	keys := makeKeys(t)

	request, err := treasure.SignClaim(keys.claimer, keys.treasure)
	assert.Nil(t, err, "wrong SignClaim")

	asked := ""
	claim, err := request.Verify(func(key string) (bool, error) {
		asked = key
		return true, nil
	})
	assert.Nil(t, err, "valid claim rejected")
	assert.Equal(t, keys.treasure.PublicKey().String(), asked, "wrong key checked for plant")
	assert.Equal(t, asked, claim.Key(), "wrong claim key")
	assert.Equal(t, keys.claimer.PublicKey().Bytes(), claim.Record().Account, "wrong record account")
}

func TestClaimRequiresPlant(t *testing.T) {
	keys := makeKeys(t)
	request, _ := treasure.SignClaim(keys.claimer, keys.treasure)

	_, err := request.Verify(never)
	assert.Equal(t, fault.TreasureNotPlanted, err, "claim without plant accepted")

	lookupFailed := errors.New("lookup failed")
	_, err = request.Verify(func(string) (bool, error) { return false, lookupFailed })
	assert.Equal(t, lookupFailed, err, "lookup error lost")
}

func TestClaimBitFlips(t *testing.T) {
	keys := makeKeys(t)
	request, _ := treasure.SignClaim(keys.claimer, keys.treasure)

	for bit := 0; bit < 256; bit += 1 {
		tampered := *request
		tampered.AccountPublicKey = flipKey(t, account.AccountKind, request.AccountPublicKey, bit)
		_, err := tampered.Verify(always(true))
		assert.True(t, fault.IsErrSignature(err), "account key bit %d flip accepted", bit)
	}
	for bit := 0; bit < 512; bit += 1 {
		tampered := *request
		tampered.TreasureSignature = flipSignature(t, request.TreasureSignature, bit)
		_, err := tampered.Verify(always(true))
		assert.True(t, fault.IsErrSignature(err), "treasure signature bit %d flip accepted", bit)
	}
}

func TestPlantSignatureIsNotClaimSignature(t *testing.T) {
	keys := makeKeys(t)
	plant, _ := treasure.SignPlant(keys.planter, keys.treasure, testImage)

	claim := &treasure.ClaimRequest{
		AccountPublicKey:  plant.AccountPublicKey,
		TreasurePublicKey: plant.TreasurePublicKey,
		AccountSignature:  plant.AccountSignature,
		TreasureSignature: plant.TreasureSignature,
	}
	_, err := claim.Verify(always(true))
	assert.Equal(t, fault.InvalidSignature, err, "plant signatures accepted as claim")
}

func TestSignWrongKinds(t *testing.T) {
	keys := makeKeys(t)

	_, err := treasure.SignPlant(keys.treasure, keys.planter, testImage)
	assert.Equal(t, fault.InvalidKeyKind, err, "swapped keys accepted")

	_, err = treasure.SignClaim(keys.claimer, keys.claimer)
	assert.Equal(t, fault.InvalidKeyKind, err, "account key accepted as treasure")
}

func TestDecodeStored(t *testing.T) {
	keys := makeKeys(t)
	plantRequest, _ := treasure.SignPlant(keys.planter, keys.treasure, testImage)
	claimRequest, _ := treasure.SignClaim(keys.claimer, keys.treasure)

	plant, err := plantRequest.Decode()
	assert.Nil(t, err, "wrong plant Decode")
	assert.Equal(t, treasure.ImageDigest(testImage), plant.Digest, "wrong digest")

	claim, err := claimRequest.Decode()
	assert.Nil(t, err, "wrong claim Decode")
	assert.Equal(t, plant.Key(), claim.Key(), "keys differ")
}
