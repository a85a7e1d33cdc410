// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - publish treasure records to a ledger
package ledger

import (
	"context"
	"strings"

	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/ledger/journal"
	"github.com/bitmark-inc/geonft/ledger/solana"
	"github.com/bitmark-inc/geonft/treasurerecord"
)

// Ledger - destination for plant and claim records
//
// each submit returns the ledger's transaction id
type Ledger interface {
	Connect(ctx context.Context) error
	SubmitPlant(ctx context.Context, plant *treasurerecord.PlantTreasure) (string, error)
	SubmitClaim(ctx context.Context, claim *treasurerecord.ClaimTreasure) (string, error)
}

// Submitter - a ledger back end accepting packed records
type Submitter interface {
	Connect(ctx context.Context) error
	Submit(ctx context.Context, packed treasurerecord.Packed) (string, error)
}

// back end names
const (
	SolanaKind  = "solana"
	JournalKind = "journal"
)

// Configuration - select and configure a back end
type Configuration struct {
	Kind    string                `gluamapper:"kind" json:"kind"`
	Solana  solana.Configuration  `gluamapper:"solana" json:"solana"`
	Journal journal.Configuration `gluamapper:"journal" json:"journal"`
}

// New - create the configured ledger
func New(configuration *Configuration) (Ledger, error) {
	switch strings.ToLower(configuration.Kind) {
	case SolanaKind:
		client, err := solana.New(&configuration.Solana)
		if nil != err {
			return nil, err
		}
		return Wrap(client), nil

	case JournalKind:
		return Wrap(journal.New(&configuration.Journal)), nil

	default:
		return nil, fault.InvalidLedgerKind
	}
}

type packer struct {
	submitter Submitter
}

// Wrap - a Ledger that packs records for a back end
func Wrap(submitter Submitter) Ledger {
	return &packer{
		submitter: submitter,
	}
}

func (p *packer) Connect(ctx context.Context) error {
	return p.submitter.Connect(ctx)
}

func (p *packer) SubmitPlant(ctx context.Context, plant *treasurerecord.PlantTreasure) (string, error) {
	packed, err := plant.Pack()
	if nil != err {
		return "", err
	}
	return p.submitter.Submit(ctx, packed)
}

func (p *packer) SubmitClaim(ctx context.Context, claim *treasurerecord.ClaimTreasure) (string, error) {
	packed, err := claim.Pack()
	if nil != err {
		return "", err
	}
	return p.submitter.Submit(ctx, packed)
}
