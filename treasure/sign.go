// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasure

import (
	"github.com/bitmark-inc/geonft/account"
	"github.com/bitmark-inc/geonft/fault"
)

// SignPlant - build a fully signed plant request
func SignPlant(accountKey *account.PrivateKey, treasureKey *account.PrivateKey, image []byte) (*PlantRequest, error) {
	if account.AccountKind != accountKey.Kind() || account.TreasureKind != treasureKey.Kind() {
		return nil, fault.InvalidKeyKind
	}

	accountPublic := accountKey.PublicKey()
	treasurePublic := treasureKey.PublicKey()
	digest := ImageDigest(image)

	return &PlantRequest{
		AccountPublicKey:  accountPublic.String(),
		TreasurePublicKey: treasurePublic.String(),
		Image:             image,
		AccountSignature:  accountKey.Sign(PlantAccountMessage(treasurePublic)).String(),
		TreasureSignature: treasureKey.Sign(PlantTreasureMessage(accountPublic, digest)).String(),
	}, nil
}

// SignClaim - build a fully signed claim request
func SignClaim(accountKey *account.PrivateKey, treasureKey *account.PrivateKey) (*ClaimRequest, error) {
	if account.AccountKind != accountKey.Kind() || account.TreasureKind != treasureKey.Kind() {
		return nil, fault.InvalidKeyKind
	}

	accountPublic := accountKey.PublicKey()
	treasurePublic := treasureKey.PublicKey()

	return &ClaimRequest{
		AccountPublicKey:  accountPublic.String(),
		TreasurePublicKey: treasurePublic.String(),
		AccountSignature:  accountKey.Sign(ClaimAccountMessage(treasurePublic)).String(),
		TreasureSignature: treasureKey.Sign(ClaimTreasureMessage(accountPublic)).String(),
	}, nil
}
