// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package synchronise - move admitted treasure events to the ledger
//
// each round:
//
//   1. snapshot the status store and list the events in time order
//   2. MakePlan turns the two into an ordered list of steps
//   3. the Executor connects both back ends, then runs every step whose
//      precondition still holds, recording each stage reached
//
// the status of a treasure only moves forward:
//
//   Unsynced -> BlobSynced -> PlantSynced -> ClaimSynced
//
// a failed step is retried by a later round because its stage was not
// recorded
package synchronise

//go:generate mockgen -destination=mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger github.com/bitmark-inc/geonft/ledger Ledger
//go:generate mockgen -destination=mocks/content.go -package=mocks -mock_names=Store=MockContentStore github.com/bitmark-inc/geonft/content Store
//go:generate mockgen -destination=mocks/status.go -package=mocks -mock_names=Store=MockStatusStore github.com/bitmark-inc/geonft/status Store
