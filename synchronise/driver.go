// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package synchronise

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/geonft/status"
)

// DefaultRoundDelay - pause between rounds
const DefaultRoundDelay = 1000 * time.Millisecond

// Driver - repeats plan and execute until shutdown
type Driver struct {
	log         *logger.L
	events      Events
	statusStore status.Store
	executor    *Executor
	delay       time.Duration
	wake        <-chan struct{}
}

// NewDriver - create a driver
//
// a receive on wake ends the pause early, wake may be nil;
// delay <= 0 selects the default
func NewDriver(eventSource Events, statusStore status.Store, executor *Executor, delay time.Duration, wake <-chan struct{}) *Driver {
	if delay <= 0 {
		delay = DefaultRoundDelay
	}
	return &Driver{
		log:         logger.New("driver"),
		events:      eventSource,
		statusStore: statusStore,
		executor:    executor,
		delay:       delay,
		wake:        wake,
	}
}

// Plan - compute the plan for the current state of both stores
func (d *Driver) Plan() (*Plan, error) {
	statuses, err := d.statusStore.All()
	if nil != err {
		return nil, err
	}
	eventList, err := d.events.TimeSorted()
	if nil != err {
		return nil, err
	}

	plan := MakePlan(statuses, eventList)
	for _, key := range plan.Orphans {
		d.log.Warnf("claim without plant: %s", key)
	}
	return plan, nil
}

// Round - plan and execute once
func (d *Driver) Round(ctx context.Context) (*Report, error) {
	plan, err := d.Plan()
	if nil != err {
		d.log.Errorf("plan error: %s", err)
		return nil, err
	}

	report, err := d.executor.Execute(ctx, plan)
	if 0 != report.Executed || 0 != report.Skipped || 0 != report.Failed {
		d.log.Infof("round: executed: %d  skipped: %d  failed: %d", report.Executed, report.Skipped, report.Failed)
	}
	return report, err
}

// Run - rounds until shutdown is closed or a round fails
func (d *Driver) Run(shutdown <-chan struct{}) error {

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-done:
		}
	}()

	d.log.Info("starting…")

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

loop:
	for {
		_, err := d.Round(ctx)
		if nil != err {
			select {
			case <-shutdown:
				break loop
			default:
			}
			d.log.Criticalf("round error: %s", err)
			return err
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(d.delay)

		select {
		case <-shutdown:
			break loop
		case <-d.wake:
			d.log.Debug("woken")
		case <-timer.C:
		}
	}

	d.log.Info("stopped")
	return nil
}
