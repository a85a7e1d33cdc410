// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/geonft/background"
	"github.com/bitmark-inc/geonft/content"
	"github.com/bitmark-inc/geonft/events"
	"github.com/bitmark-inc/geonft/ledger"
	"github.com/bitmark-inc/geonft/publish"
	"github.com/bitmark-inc/geonft/status"
	"github.com/bitmark-inc/geonft/storage"
	"github.com/bitmark-inc/geonft/synchronise"
	"github.com/bitmark-inc/geonft/watcher"
	"github.com/bitmark-inc/geonft/zmqutil"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("events: %q", theConfiguration.Events)
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "Ledger", theConfiguration.Ledger)
	log.Debugf("%s = %#v", "Content", theConfiguration.Content)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	eventStore, err := events.New(theConfiguration.Events)
	if nil != err {
		log.Criticalf("events initialise error: %s", err)
		exitwithstatus.Message("events initialise error: %s", err)
	}
	statusStore := status.New()

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, eventStore, statusStore) {
		return
	}

	theLedger, err := ledger.New(&theConfiguration.Ledger)
	if nil != err {
		log.Criticalf("ledger initialise error: %s", err)
		exitwithstatus.Message("ledger initialise error: %s", err)
	}
	log.Infof("ledger: %s", theConfiguration.Ledger.Kind)

	contentStore, err := content.New(&theConfiguration.Content)
	if nil != err {
		log.Criticalf("content initialise error: %s", err)
		exitwithstatus.Message("content initialise error: %s", err)
	}
	log.Infof("content: %s", theConfiguration.Content.Kind)

	processes := background.Processes{}

	// optional status broadcasts
	var notifier synchronise.Notifier
	if 0 != len(theConfiguration.Publishing.Broadcast) {

		// initialise encryption
		err = zmqutil.StartAuthentication()
		if nil != err {
			log.Criticalf("zmq.AuthStart: error: %s", err)
			exitwithstatus.Message("zmq.AuthStart: error: %s", err)
		}

		broadcaster, err := publish.New(&theConfiguration.Publishing)
		if nil != err {
			log.Criticalf("publish initialise error: %s", err)
			exitwithstatus.Message("publish initialise error: %s", err)
		}
		processes = append(processes, broadcaster)
		notifier = broadcaster
	}

	// optional early rounds on new events
	var wake <-chan struct{}
	if theConfiguration.Synchronise.Watch {
		w, err := watcher.New(eventStore.KindDirectory(events.Plant), eventStore.KindDirectory(events.Claim))
		if nil != err {
			log.Criticalf("watcher initialise error: %s", err)
			exitwithstatus.Message("watcher initialise error: %s", err)
		}
		processes = append(processes, w)
		wake = w.Wake()
	}

	log.Info("start background…")
	bg := background.Start(processes, nil)
	defer bg.Stop()

	executor := synchronise.NewExecutor(
		theLedger,
		contentStore,
		statusStore,
		eventStore,
		notifier,
		time.Duration(theConfiguration.Synchronise.ConnectTimeout)*time.Millisecond,
	)
	driver := synchronise.NewDriver(
		eventStore,
		statusStore,
		executor,
		time.Duration(theConfiguration.Synchronise.Delay)*time.Millisecond,
		wake,
	)

	shutdown := make(chan struct{})
	result := make(chan error, 1)
	go func() {
		result <- driver.Run(shutdown)
	}()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if 0 == len(options["quiet"]) {
			fmt.Printf("\nreceived signal: %v\n", sig)
			fmt.Printf("\nshutting down…\n")
		}

	case err := <-result:
		log.Criticalf("synchronise error: %s", err)
		exitwithstatus.Message("synchronise error: %s", err)
	}

	log.Info("shutting down…")
	close(shutdown)
	if err := <-result; nil != err {
		log.Errorf("synchronise stopped with error: %s", err)
	}
}
