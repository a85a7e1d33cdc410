// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/geonft/treasure"
)

// record a request signed elsewhere
func runAdmit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	kind, err := checkRequestKind(c.String("kind"))
	if nil != err {
		return err
	}

	store, err := checkEvents(m)
	if nil != err {
		return err
	}

	switch kind {
	case plantKind:
		var request treasure.PlantRequest
		if err := checkRequestFile(c.String("request"), &request); nil != err {
			return err
		}
		plant, err := store.AdmitPlant(&request)
		if nil != err {
			return err
		}
		return printJson(m.w, makePlantResult(plant))

	default:
		var request treasure.ClaimRequest
		if err := checkRequestFile(c.String("request"), &request); nil != err {
			return err
		}
		claim, err := store.AdmitClaim(&request)
		if nil != err {
			return err
		}
		return printJson(m.w, makeClaimResult(claim))
	}
}

// check the signatures of a request, a claim also needs the event
// store to find its plant
func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	kind, err := checkRequestKind(c.String("kind"))
	if nil != err {
		return err
	}

	switch kind {
	case plantKind:
		var request treasure.PlantRequest
		if err := checkRequestFile(c.String("request"), &request); nil != err {
			return err
		}
		plant, err := request.Verify()
		if nil != err {
			return err
		}
		return printJson(m.w, makePlantResult(plant))

	default:
		store, err := checkEvents(m)
		if nil != err {
			return err
		}
		var request treasure.ClaimRequest
		if err := checkRequestFile(c.String("request"), &request); nil != err {
			return err
		}
		claim, err := request.Verify(store.HasPlant)
		if nil != err {
			return err
		}
		return printJson(m.w, makeClaimResult(claim))
	}
}
