// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"sort"
	"time"
)

// Kind - type of event
type Kind int

// event kinds in tie-break order
const (
	Plant Kind = iota
	Claim Kind = iota
)

// String - name of kind, also the subdirectory holding its records
func (k Kind) String() string {
	switch k {
	case Plant:
		return "plant"
	case Claim:
		return "claim"
	default:
		return "unknown"
	}
}

// Event - a recorded plant or claim
type Event struct {
	Kind Kind
	Key  string // canonical treasure key
	Time time.Time
}

// sort into time order, then plant before claim, then by key
func sortEvents(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		a := events[i]
		b := events[j]
		if !a.Time.Equal(b.Time) {
			return a.Time.Before(b.Time)
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Key < b.Key
	})
}
