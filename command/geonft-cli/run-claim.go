// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/geonft/account"
	"github.com/bitmark-inc/geonft/treasure"
)

type claimResult struct {
	Treasure string `json:"treasure"`
	Account  string `json:"account"`
}

func runClaim(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	accountKey, err := checkKeyFile(c.String("account"), account.AccountKind, ErrRequiredAccountFile)
	if nil != err {
		return err
	}
	treasureKey, err := checkKeyFile(c.String("treasure"), account.TreasureKind, ErrRequiredTreasureKey)
	if nil != err {
		return err
	}

	request, err := treasure.SignClaim(accountKey, treasureKey)
	if nil != err {
		return err
	}

	if c.Bool("sign-only") {
		return printJson(m.w, request)
	}

	store, err := checkEvents(m)
	if nil != err {
		return err
	}

	claim, err := store.AdmitClaim(request)
	if nil != err {
		return err
	}
	return printJson(m.w, makeClaimResult(claim))
}

func makeClaimResult(claim *treasure.Claim) claimResult {
	return claimResult{
		Treasure: claim.Key(),
		Account:  claim.Account.String(),
	}
}
