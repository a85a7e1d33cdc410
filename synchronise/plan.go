// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise

import (
	"github.com/bitmark-inc/geonft/events"
	"github.com/bitmark-inc/geonft/status"
)

// StepKind - the external action of a step
type StepKind int

// possible step kinds
const (
	UploadBlobToIpfs    StepKind = iota
	UploadPlantToSolana StepKind = iota
	UploadClaimToSolana StepKind = iota
)

func (kind StepKind) String() string {
	switch kind {
	case UploadBlobToIpfs:
		return "UploadBlobToIpfs"
	case UploadPlantToSolana:
		return "UploadPlantToSolana"
	case UploadClaimToSolana:
		return "UploadClaimToSolana"
	default:
		return "Unknown"
	}
}

// stage that must be current before a step and the stage it produces
func (kind StepKind) stages() (required status.SyncStatus, result status.SyncStatus, ok bool) {
	switch kind {
	case UploadBlobToIpfs:
		return status.Unsynced, status.BlobSynced, true
	case UploadPlantToSolana:
		return status.BlobSynced, status.PlantSynced, true
	case UploadClaimToSolana:
		return status.PlantSynced, status.ClaimSynced, true
	default:
		return status.Unsynced, status.Unsynced, false
	}
}

// Step - one action for one treasure
type Step struct {
	Key  string
	Kind StepKind
}

// Plan - ordered steps computed from one status snapshot
//
// a plan is advisory: the executor re-checks each step before running it
type Plan struct {
	Statuses status.Map
	Steps    []Step
	Orphans  []string // claims that have no plant event
}

// MakePlan - compute the steps needed to bring every event up to date
//
// events must be in time order as returned by events.Store.TimeSorted;
// the result depends only on the arguments
func MakePlan(statuses status.Map, eventList []events.Event) *Plan {

	plan := &Plan{
		Statuses: statuses.Clone(),
		Steps:    make([]Step, 0, 2*len(eventList)),
	}

	planted := make(map[string]struct{})
	for _, e := range eventList {
		if events.Plant == e.Kind {
			planted[e.Key] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	deferred := make(map[string]struct{})

	for _, e := range eventList {
		switch e.Kind {

		case events.Plant:
			if _, ok := seen[e.Key]; ok {
				continue
			}
			seen[e.Key] = struct{}{}

			switch statuses.Get(e.Key) {
			case status.Unsynced:
				plan.add(e.Key, UploadBlobToIpfs)
				plan.add(e.Key, UploadPlantToSolana)
			case status.BlobSynced:
				plan.add(e.Key, UploadPlantToSolana)
			}

			// a claim stamped earlier than its plant
			if _, ok := deferred[e.Key]; ok {
				delete(deferred, e.Key)
				plan.claim(statuses, e.Key)
			}

		case events.Claim:
			if _, ok := planted[e.Key]; !ok {
				plan.Orphans = append(plan.Orphans, e.Key)
				continue
			}
			if _, ok := seen[e.Key]; !ok {
				deferred[e.Key] = struct{}{}
				continue
			}
			plan.claim(statuses, e.Key)
		}
	}

	return plan
}

func (plan *Plan) claim(statuses status.Map, key string) {
	if status.ClaimSynced != statuses.Get(key) {
		plan.add(key, UploadClaimToSolana)
	}
}

func (plan *Plan) add(key string, kind StepKind) {
	plan.Steps = append(plan.Steps, Step{Key: key, Kind: kind})
}
