// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/geonft/events"
	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/ledger/solana"
	"github.com/bitmark-inc/geonft/status"
	"github.com/bitmark-inc/geonft/synchronise"
	"github.com/bitmark-inc/geonft/util"
	"github.com/bitmark-inc/geonft/zmqutil"
)

const (
	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"
	payerKeyFilename          = "payer.json"
)

// setup command handler
//
// commands that run to create key files these commands cannot access
// any internal database or states or the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-publish-keys", "publish":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "gen-payer-key", "payer":
		payerFilename := getFilenameWithDirectory(arguments, payerKeyFilename)
		if util.EnsureFileExists(payerFilename) {
			fmt.Printf("generate payer key: %q error: %s\n", payerFilename, fault.KeyFileAlreadyExists)
			exitwithstatus.Exit(1)
		}
		publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
		if nil != err {
			fmt.Printf("generate payer key: %q error: %s\n", payerFilename, err)
			exitwithstatus.Exit(1)
		}
		err = solana.SavePayerKey(payerFilename, privateKey)
		if nil != err {
			fmt.Printf("generate payer key: %q error: %s\n", payerFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated payer key: %q\n", payerFilename)
		fmt.Printf("payer account: %s\n", solana.EncodePublicKey(publicKey))

	case "start", "run":
		return false // continue processing

	case "status", "s", "plan", "p":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-publish-keys [DIR]     (publish) - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                         and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-payer-key [DIR]        (payer)  - create ledger payer key in: %q\n", "DIR/"+payerKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  status [KEY...]            (s)      - display the sync status of every or selected treasures\n")
		fmt.Printf("\n")

		fmt.Printf("  plan                       (p)      - display the steps the next round would run\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJson("", options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the status database and event store are open so these commands can
// inspect them
func processDataCommand(log *logger.L, arguments []string, eventStore *events.Store, statusStore status.Store) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "status", "s":
		statuses, err := statusStore.All()
		if nil != err {
			exitwithstatus.Message("status read error: %s", err)
		}
		keys := arguments
		if 0 == len(keys) {
			eventList, err := eventStore.TimeSorted()
			if nil != err {
				exitwithstatus.Message("event list error: %s", err)
			}
			for _, e := range eventList {
				if events.Plant == e.Kind {
					keys = append(keys, e.Key)
				}
			}
		}
		printJson("", treasureStatuses(statusStore, statuses, keys))

	case "plan", "p":
		statuses, err := statusStore.All()
		if nil != err {
			exitwithstatus.Message("status read error: %s", err)
		}
		eventList, err := eventStore.TimeSorted()
		if nil != err {
			exitwithstatus.Message("event list error: %s", err)
		}
		plan := synchronise.MakePlan(statuses, eventList)
		log.Infof("plan: %d steps  %d orphans", len(plan.Steps), len(plan.Orphans))
		printJson("", planSteps(plan))

	default:
		exitwithstatus.Message("error: no such command: %q", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// one treasure for the status command
type treasureStatus struct {
	Key        string            `json:"key"`
	Status     string            `json:"status"`
	References map[string]string `json:"references,omitempty"`
}

func treasureStatuses(statusStore status.Store, statuses status.Map, keys []string) []treasureStatus {
	result := make([]treasureStatus, 0, len(keys))
	for _, key := range keys {
		stage := statuses.Get(key)
		item := treasureStatus{
			Key:    key,
			Status: stage.String(),
		}
		for s := status.BlobSynced; s <= stage && s.IsValid(); s += 1 {
			reference, err := statusStore.Reference(key, s)
			if nil != err {
				exitwithstatus.Message("reference read error: %s", err)
			}
			if nil == item.References {
				item.References = make(map[string]string)
			}
			item.References[s.String()] = reference
		}
		result = append(result, item)
	}
	return result
}

// steps and orphans for the plan command
type planReport struct {
	Steps   []stepReport `json:"steps"`
	Orphans []string     `json:"orphans,omitempty"`
}

type stepReport struct {
	Key  string `json:"key"`
	Step string `json:"step"`
}

func planSteps(plan *synchronise.Plan) planReport {
	r := planReport{
		Steps:   make([]stepReport, 0, len(plan.Steps)),
		Orphans: plan.Orphans,
	}
	for _, step := range plan.Steps {
		r.Steps = append(r.Steps, stepReport{Key: step.Key, Step: step.Kind.String()})
	}
	return r
}

// get the filename with directory
func getFilenameWithDirectory(arguments []string, name string) string {
	directory := "."
	if len(arguments) >= 1 {
		directory = arguments[0]
	}
	return filepath.Join(directory, name)
}
