// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	kind, err := keypair.KindFromName(c.String("kind"))
	if nil != err {
		return err
	}

	rawKeyPair, _, err := keypair.MakeRawKeyPair(kind)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "public key: %s\n", rawKeyPair.PublicKey)
	}

	output := c.String("output")
	if "" == output {
		return printJson(m.w, rawKeyPair)
	}

	if keypair.Exists(output) {
		return fault.KeyFileAlreadyExists
	}
	err = rawKeyPair.Save(output)
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]string{
		"kind":       rawKeyPair.Kind,
		"public_key": rawKeyPair.PublicKey,
		"file":       output,
	})
}
