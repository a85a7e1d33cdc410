// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package status

import (
	"github.com/bitmark-inc/geonft/fault"
)

// SyncStatus - how far a treasure has progressed towards the ledger
type SyncStatus byte

// stages in strictly increasing order
const (
	Unsynced    SyncStatus = iota // nothing published, absent from the store
	BlobSynced  SyncStatus = iota // image uploaded to the content store
	PlantSynced SyncStatus = iota // plant recorded on the ledger
	ClaimSynced SyncStatus = iota // claim recorded on the ledger
	statusLimit SyncStatus = iota
)

var names = [statusLimit]string{
	Unsynced:    "Unsynced",
	BlobSynced:  "BlobSynced",
	PlantSynced: "PlantSynced",
	ClaimSynced: "ClaimSynced",
}

// String - name of the stage
func (s SyncStatus) String() string {
	if s >= statusLimit {
		return "Invalid"
	}
	return names[s]
}

// IsValid - stage is within the known range
func (s SyncStatus) IsValid() bool {
	return s < statusLimit
}

// FromByte - convert a stored stage byte
func FromByte(b byte) (SyncStatus, error) {
	s := SyncStatus(b)
	if !s.IsValid() || Unsynced == s {
		return Unsynced, fault.InvalidStatus
	}
	return s, nil
}

// Map - stage for each canonical treasure key
//
// a key absent from the map is Unsynced
type Map map[string]SyncStatus

// Get - stage of a key
func (m Map) Get(key string) SyncStatus {
	if s, ok := m[key]; ok {
		return s
	}
	return Unsynced
}

// Clone - an independent copy
func (m Map) Clone() Map {
	c := make(Map, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
