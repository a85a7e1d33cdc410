// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/geonft/configuration"
	"github.com/bitmark-inc/geonft/content"
	"github.com/bitmark-inc/geonft/content/directory"
	"github.com/bitmark-inc/geonft/content/ipfs"
	"github.com/bitmark-inc/geonft/ledger"
	"github.com/bitmark-inc/geonft/ledger/journal"
	"github.com/bitmark-inc/geonft/ledger/solana"
	"github.com/bitmark-inc/geonft/publish"
	"github.com/bitmark-inc/geonft/synchronise"
	"github.com/bitmark-inc/geonft/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultEventsDirectory  = "events"
	defaultBlobsDirectory   = "blobs"
	defaultJournalFile      = "ledger.journal"
	defaultPayerKeyFile     = "payer.json"
	defaultPublicKeyFile    = "publish.public"
	defaultPrivateKeyFile   = "publish.private"
	defaultLevelDBDirectory = "data"
	defaultStatusDatabase   = "status.leveldb"

	defaultSolanaURL   = "http://127.0.0.1:8899"
	defaultCommitment  = "confirmed"
	defaultIPFSURL     = "http://127.0.0.1:5001"
	defaultRequestRate = 10.0

	defaultLogDirectory = "log"
	defaultLogFile      = "geonftd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the status store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// SynchroniseType - round timing, times in milliseconds
//
// watch starts a round as soon as a new event appears
type SynchroniseType struct {
	Delay          int  `gluamapper:"delay" json:"delay"`
	ConnectTimeout int  `gluamapper:"connect_timeout" json:"connect_timeout"`
	Watch          bool `gluamapper:"watch" json:"watch"`
}

// Configuration - everything the daemon reads from its Lua file
type Configuration struct {
	DataDirectory string                `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string                `gluamapper:"pidfile" json:"pidfile"`
	Events        string                `gluamapper:"events" json:"events"`
	Database      DatabaseType          `gluamapper:"database" json:"database"`
	Synchronise   SynchroniseType       `gluamapper:"synchronise" json:"synchronise"`
	Ledger        ledger.Configuration  `gluamapper:"ledger" json:"ledger"`
	Content       content.Configuration `gluamapper:"content" json:"content"`
	Publishing    publish.Configuration `gluamapper:"publishing" json:"publishing"`
	Logging       logger.Configuration  `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Events:        defaultEventsDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultStatusDatabase,
		},

		Synchronise: SynchroniseType{
			Delay:          int(synchronise.DefaultRoundDelay.Milliseconds()),
			ConnectTimeout: int(synchronise.DefaultConnectTimeout.Milliseconds()),
			Watch:          true,
		},

		Ledger: ledger.Configuration{
			Kind: ledger.SolanaKind,
			Solana: solana.Configuration{
				URL:          defaultSolanaURL,
				PayerKeyFile: defaultPayerKeyFile,
				Commitment:   defaultCommitment,
				RequestRate:  defaultRequestRate,
			},
			Journal: journal.Configuration{
				File: defaultJournalFile,
			},
		},

		Content: content.Configuration{
			Kind: content.IPFSKind,
			IPFS: ipfs.Configuration{
				URL:         defaultIPFSURL,
				RequestRate: defaultRequestRate,
			},
			Directory: directory.Configuration{
				Directory: defaultBlobsDirectory,
			},
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublicKeyFile,
			PrivateKey: defaultPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	switch options.Ledger.Kind {
	case ledger.SolanaKind, ledger.JournalKind:
	default:
		return nil, fmt.Errorf("Ledger: %q is not supported", options.Ledger.Kind)
	}

	switch options.Content.Kind {
	case content.IPFSKind, content.DirectoryKind:
	default:
		return nil, fmt.Errorf("Content: %q is not supported", options.Content.Kind)
	}

	if options.Synchronise.Delay <= 0 {
		options.Synchronise.Delay = int(synchronise.DefaultRoundDelay.Milliseconds())
	}
	if options.Synchronise.ConnectTimeout <= 0 {
		options.Synchronise.ConnectTimeout = int(synchronise.DefaultConnectTimeout.Milliseconds())
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Events,
		&options.Database.Directory,
		&options.Ledger.Solana.PayerKeyFile,
		&options.Ledger.Journal.File,
		&options.Content.Directory.Directory,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
