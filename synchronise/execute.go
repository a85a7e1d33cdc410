// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise

import (
	"context"
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/geonft/content"
	"github.com/bitmark-inc/geonft/events"
	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/ledger"
	"github.com/bitmark-inc/geonft/status"
	"github.com/bitmark-inc/geonft/treasure"
)

// DefaultConnectTimeout - limit on connecting each back end at round start
const DefaultConnectTimeout = 1000 * time.Millisecond

// Events - read access to the admitted requests
type Events interface {
	TimeSorted() ([]events.Event, error)
	Plant(key string) (*treasure.PlantRequest, error)
	Claim(key string) (*treasure.ClaimRequest, error)
}

// Notifier - told about every recorded stage
type Notifier interface {
	Notify(key string, stage status.SyncStatus, reference string)
}

// Report - what happened to the steps of one round
type Report struct {
	Executed int
	Skipped  int
	Failed   int
}

type outcome int

const (
	executed outcome = iota
	stale    outcome = iota
	failed   outcome = iota
)

// Executor - runs the steps of a plan against the back ends
type Executor struct {
	log            *logger.L
	ledger         ledger.Ledger
	content        content.Store
	statusStore    status.Store
	events         Events
	notifier       Notifier
	connectTimeout time.Duration
}

// NewExecutor - create an executor
//
// notifier may be nil; connectTimeout <= 0 selects the default
func NewExecutor(l ledger.Ledger, c content.Store, statusStore status.Store, eventSource Events, notifier Notifier, connectTimeout time.Duration) *Executor {
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	return &Executor{
		log:            logger.New("executor"),
		ledger:         l,
		content:        c,
		statusStore:    statusStore,
		events:         eventSource,
		notifier:       notifier,
		connectTimeout: connectTimeout,
	}
}

// Execute - run every step of the plan in order
//
// a connection failure or a failed status write stops the round and is
// returned; a failed action only counts as failed in the report
func (ex *Executor) Execute(ctx context.Context, plan *Plan) (*Report, error) {

	report := &Report{}

	if 0 == len(plan.Steps) {
		return report, nil
	}

	err := ex.connect(ctx)
	if nil != err {
		ex.log.Errorf("connect error: %s", err)
		return report, err
	}

	live, err := ex.liveStatus(plan.Statuses)
	if nil != err {
		ex.log.Criticalf("status read error: %s", err)
		return report, err
	}

	for _, step := range plan.Steps {
		result, err := ex.step(ctx, live, step)
		switch result {
		case executed:
			report.Executed += 1
		case stale:
			report.Skipped += 1
		default:
			report.Failed += 1
		}
		if nil != err {
			return report, err
		}
	}

	return report, nil
}

func (ex *Executor) connect(ctx context.Context) error {
	connectContext, cancel := context.WithTimeout(ctx, ex.connectTimeout)
	defer cancel()

	err := ex.ledger.Connect(connectContext)
	if nil != err {
		if !fault.IsErrService(err) {
			err = fmt.Errorf("%w: %s", fault.LedgerServiceUnreached, err)
		}
		return err
	}

	err = ex.content.Connect(connectContext)
	if nil != err {
		if !fault.IsErrService(err) {
			err = fmt.Errorf("%w: %s", fault.ContentServiceUnreached, err)
		}
		return err
	}
	return nil
}

// the plan's snapshot, moved up to anything already stored since
func (ex *Executor) liveStatus(snapshot status.Map) (status.Map, error) {
	live := snapshot.Clone()

	stored, err := ex.statusStore.All()
	if nil != err {
		if !fault.IsErrPersistence(err) {
			err = fmt.Errorf("%w: %s", fault.StatusReadFailed, err)
		}
		return nil, err
	}
	for key, stage := range stored {
		if stage > live.Get(key) {
			live[key] = stage
		}
	}
	return live, nil
}

func (ex *Executor) step(ctx context.Context, live status.Map, step Step) (outcome, error) {

	required, result, ok := step.Kind.stages()
	if !ok {
		ex.log.Errorf("key: %s  step: %d  error: %s", step.Key, step.Kind, fault.UnknownStepKind)
		return failed, nil
	}

	current := live.Get(step.Key)
	if required != current {
		ex.log.Warnf("key: %s  step: %s  status: %s  error: %s", step.Key, step.Kind, current, fault.StepIsStale)
		return stale, nil
	}

	reference, err := ex.perform(ctx, step)
	if nil != err {
		ex.log.Errorf("key: %s  step: %s  error: %s", step.Key, step.Kind, err)
		return failed, nil
	}

	err = ex.statusStore.Record(step.Key, result, reference)
	if nil != err {
		ex.log.Criticalf("key: %s  step: %s  record: %s  error: %s", step.Key, step.Kind, result, err)
		return failed, fmt.Errorf("key: %s  step: %s  error: %w", step.Key, step.Kind, err)
	}
	live[step.Key] = result

	ex.log.Infof("key: %s  step: %s  status: %s  reference: %s", step.Key, step.Kind, result, reference)

	if nil != ex.notifier {
		ex.notifier.Notify(step.Key, result, reference)
	}
	return executed, nil
}

// run the external action, returning the reference to record
func (ex *Executor) perform(ctx context.Context, step Step) (string, error) {
	switch step.Kind {

	case UploadBlobToIpfs:
		request, err := ex.events.Plant(step.Key)
		if nil != err {
			return "", err
		}
		return ex.content.Upload(ctx, request.Image)

	case UploadPlantToSolana:
		request, err := ex.events.Plant(step.Key)
		if nil != err {
			return "", err
		}
		plant, err := request.Decode()
		if nil != err {
			return "", err
		}
		return ex.ledger.SubmitPlant(ctx, plant.Record())

	case UploadClaimToSolana:
		request, err := ex.events.Claim(step.Key)
		if nil != err {
			return "", err
		}
		claim, err := request.Decode()
		if nil != err {
			return "", err
		}
		return ex.ledger.SubmitClaim(ctx, claim.Record())

	default:
		return "", fault.UnknownStepKind
	}
}
