// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/geonft/fault"
)

// New - a limiter allowing perSecond requests with bursts of burst
//
// zero or negative perSecond means no limit
func New(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// Limit - wait for a single request
func Limit(ctx context.Context, limiter *rate.Limiter) error {
	return LimitN(ctx, limiter, 1)
}

// LimitN - wait for count requests
//
// a count larger than the burst can never be satisfied
func LimitN(ctx context.Context, limiter *rate.Limiter, count int) error {
	if count <= 0 {
		return fault.InvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.RateLimiting
	}

	delay := r.Delay()
	if 0 == delay {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
