// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	events  string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "geonft-cli"
	app.Usage = "sign and record treasure plants and claims"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "events, e",
			Value:  "",
			Usage:  " event store `DIRECTORY`",
			EnvVar: "GEONFT_EVENTS",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an account or treasure key pair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "account",
					Usage: " key `KIND` [account|treasure]",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write key to `FILE` instead of stdout",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "plant",
			Usage:     "sign and record a treasure plant",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*planting account key `FILE`",
				},
				cli.StringFlag{
					Name:  "treasure, t",
					Value: "",
					Usage: "*treasure key `FILE`",
				},
				cli.StringFlag{
					Name:  "image, i",
					Value: "",
					Usage: "*treasure image `FILE`",
				},
				cli.BoolFlag{
					Name:  "sign-only, s",
					Usage: " print the signed request instead of recording it",
				},
			},
			Action: runPlant,
		},
		{
			Name:      "claim",
			Usage:     "sign and record a treasure claim",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*claiming account key `FILE`",
				},
				cli.StringFlag{
					Name:  "treasure, t",
					Value: "",
					Usage: "*treasure key `FILE`",
				},
				cli.BoolFlag{
					Name:  "sign-only, s",
					Usage: " print the signed request instead of recording it",
				},
			},
			Action: runClaim,
		},
		{
			Name:      "admit",
			Usage:     "verify and record a signed request",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "",
					Usage: "*request `KIND` [plant|claim]",
				},
				cli.StringFlag{
					Name:  "request, r",
					Value: "",
					Usage: "*JSON request `FILE`",
				},
			},
			Action: runAdmit,
		},
		{
			Name:      "verify",
			Usage:     "verify a signed request without recording it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "",
					Usage: "*request `KIND` [plant|claim]",
				},
				cli.StringFlag{
					Name:  "request, r",
					Value: "",
					Usage: "*JSON request `FILE`",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "show",
			Usage:     "display the recorded plant and claim of a treasure",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "treasure, t",
					Value: "",
					Usage: "*treasure public `KEY`",
				},
			},
			Action: runShow,
		},
		{
			Name:   "version",
			Usage:  "display geonft-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		app.Metadata = map[string]interface{}{
			"config": &metadata{
				events:  c.GlobalString("events"),
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
