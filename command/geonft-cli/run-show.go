// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/geonft/account"
	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/treasure"
)

type showResult struct {
	Plant *plantResult `json:"plant,omitempty"`
	Claim *claimResult `json:"claim,omitempty"`
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key := c.String("treasure")
	if "" == key {
		return ErrRequiredTreasure
	}
	key, err := account.Canonical(account.TreasureKind, key)
	if nil != err {
		return err
	}

	store, err := checkEvents(m)
	if nil != err {
		return err
	}

	result := showResult{}

	plantRequest, err := store.Plant(key)
	if nil != err {
		return err
	}
	plant, err := plantRequest.Decode()
	if nil != err {
		return err
	}
	p := makePlantResult(plant)
	result.Plant = &p

	claimRequest, err := store.Claim(key)
	if nil != err && !fault.IsErrNotFound(err) {
		return err
	}
	if nil == err {
		var claim *treasure.Claim
		claim, err = claimRequest.Decode()
		if nil != err {
			return err
		}
		cr := makeClaimResult(claim)
		result.Claim = &cr
	}

	return printJson(m.w, result)
}
