// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/geonft/events"
	"github.com/bitmark-inc/geonft/status"
	"github.com/bitmark-inc/geonft/synchronise"
)

func plantEvent(key string, offset int) events.Event {
	return events.Event{Kind: events.Plant, Key: key, Time: baseTime.Add(time.Duration(offset) * time.Second)}
}

func claimEvent(key string, offset int) events.Event {
	return events.Event{Kind: events.Claim, Key: key, Time: baseTime.Add(time.Duration(offset) * time.Second)}
}

func steps(list ...interface{}) []synchronise.Step {
	s := make([]synchronise.Step, 0, len(list)/2)
	for i := 0; i < len(list); i += 2 {
		s = append(s, synchronise.Step{Key: list[i].(string), Kind: list[i+1].(synchronise.StepKind)})
	}
	return s
}

func TestMakePlan(t *testing.T) {
	const (
		blob  = synchronise.UploadBlobToIpfs
		plant = synchronise.UploadPlantToSolana
		claim = synchronise.UploadClaimToSolana
	)

	tests := []struct {
		name     string
		statuses status.Map
		events   []events.Event
		steps    []synchronise.Step
		orphans  []string
	}{
		{
			name:   "nothing",
			events: []events.Event{},
			steps:  steps(),
		},
		{
			name:   "new plant",
			events: []events.Event{plantEvent("k1", 0)},
			steps:  steps("k1", blob, "k1", plant),
		},
		{
			name:     "plant with blob uploaded",
			statuses: status.Map{"k1": status.BlobSynced},
			events:   []events.Event{plantEvent("k1", 0)},
			steps:    steps("k1", plant),
		},
		{
			name:     "plant already on ledger",
			statuses: status.Map{"k1": status.PlantSynced},
			events:   []events.Event{plantEvent("k1", 0)},
			steps:    steps(),
		},
		{
			name:   "plant then claim",
			events: []events.Event{plantEvent("k1", 0), claimEvent("k1", 5)},
			steps:  steps("k1", blob, "k1", plant, "k1", claim),
		},
		{
			name:     "claim of a synced plant",
			statuses: status.Map{"k1": status.PlantSynced},
			events:   []events.Event{plantEvent("k1", 0), claimEvent("k1", 5)},
			steps:    steps("k1", claim),
		},
		{
			name:     "everything synced",
			statuses: status.Map{"k1": status.ClaimSynced},
			events:   []events.Event{plantEvent("k1", 0), claimEvent("k1", 5)},
			steps:    steps(),
		},
		{
			name:   "claim stamped before its plant",
			events: []events.Event{claimEvent("k1", 0), plantEvent("k2", 1), plantEvent("k1", 2)},
			steps:  steps("k2", blob, "k2", plant, "k1", blob, "k1", plant, "k1", claim),
		},
		{
			name:     "claim without plant",
			statuses: status.Map{"k2": status.BlobSynced},
			events:   []events.Event{claimEvent("k1", 0), plantEvent("k2", 1)},
			steps:    steps("k2", plant),
			orphans:  []string{"k1"},
		},
		{
			name: "interleaved keys",
			statuses: status.Map{
				"k1": status.BlobSynced,
				"k3": status.PlantSynced,
			},
			events: []events.Event{
				plantEvent("k1", 0),
				plantEvent("k2", 1),
				claimEvent("k3", 2),
				claimEvent("k1", 3),
				plantEvent("k3", -10),
			},
			steps: steps("k1", plant, "k2", blob, "k2", plant, "k1", claim, "k3", claim),
		},
	}

	for _, test := range tests {
		plan := synchronise.MakePlan(test.statuses, test.events)
		assert.Equal(t, test.steps, plan.Steps, "wrong steps: %s", test.name)
		assert.Equal(t, test.orphans, plan.Orphans, "wrong orphans: %s", test.name)
		assert.Equal(t, len(test.statuses), len(plan.Statuses), "wrong snapshot: %s", test.name)
	}
}

func TestMakePlanIsDeterministic(t *testing.T) {
	statuses := status.Map{
		"k1": status.BlobSynced,
		"k2": status.PlantSynced,
		"k4": status.ClaimSynced,
	}
	eventList := []events.Event{
		plantEvent("k1", 0),
		plantEvent("k2", 0),
		plantEvent("k3", 0),
		claimEvent("k2", 1),
		claimEvent("k3", 1),
		plantEvent("k4", 2),
		claimEvent("k4", 3),
		claimEvent("k5", 4),
	}

	first := synchronise.MakePlan(statuses, eventList)
	for i := 0; i < 10; i += 1 {
		again := synchronise.MakePlan(statuses, eventList)
		assert.Equal(t, first, again, "plan differs on run: %d", i)
	}
}

func TestMakePlanSnapshotIsACopy(t *testing.T) {
	statuses := status.Map{"k1": status.BlobSynced}
	plan := synchronise.MakePlan(statuses, []events.Event{plantEvent("k1", 0)})

	statuses["k1"] = status.ClaimSynced
	assert.Equal(t, status.BlobSynced, plan.Statuses.Get("k1"), "plan snapshot follows caller's map")
}

func TestStepKindString(t *testing.T) {
	assert.Equal(t, "UploadBlobToIpfs", synchronise.UploadBlobToIpfs.String())
	assert.Equal(t, "UploadPlantToSolana", synchronise.UploadPlantToSolana.String())
	assert.Equal(t, "UploadClaimToSolana", synchronise.UploadClaimToSolana.String())
	assert.Equal(t, "Unknown", synchronise.StepKind(99).String())
}
