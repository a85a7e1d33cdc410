// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/geonft/account"
	"github.com/bitmark-inc/geonft/events"
	"github.com/bitmark-inc/geonft/treasure"
)

type plantResult struct {
	Treasure string `json:"treasure"`
	Account  string `json:"account"`
	Digest   string `json:"image_digest"`
}

func runPlant(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	accountKey, err := checkKeyFile(c.String("account"), account.AccountKind, ErrRequiredAccountFile)
	if nil != err {
		return err
	}
	treasureKey, err := checkKeyFile(c.String("treasure"), account.TreasureKind, ErrRequiredTreasureKey)
	if nil != err {
		return err
	}

	imageFile := c.String("image")
	if "" == imageFile {
		return ErrRequiredImageFile
	}
	image, err := ioutil.ReadFile(imageFile)
	if nil != err {
		return err
	}

	request, err := treasure.SignPlant(accountKey, treasureKey, image)
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

	plant, err := store.AdmitPlant(request)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "recorded plant in: %s\n", store.KindDirectory(events.Plant))
	}

	return printJson(m.w, makePlantResult(plant))
}

func makePlantResult(plant *treasure.Plant) plantResult {
	return plantResult{
		Treasure: plant.Key(),
		Account:  plant.Account.String(),
		Digest:   fmt.Sprintf("%x", plant.Digest),
	}
}
