// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/geonft/fault"
)

// Snapshot - a frozen read-only view of every pool
//
// writes made after the snapshot was taken are not visible through it
type Snapshot struct {
	snapshot *leveldb.Snapshot
}

// NewSnapshot - take a snapshot of the current database state
//
// the caller must Release the snapshot
func NewSnapshot() (*Snapshot, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil, fault.DatabaseIsNotSet
	}
	s, err := poolData.database.GetSnapshot()
	if nil != err {
		return nil, err
	}
	return &Snapshot{snapshot: s}, nil
}

// Get - read a value for a given key as of the snapshot
func (s *Snapshot) Get(p *PoolHandle, key []byte) ([]byte, error) {
	return get(s.snapshot, p.prefixKey(key))
}

// NewFetchCursor - cursor over a pool as of the snapshot
func (s *Snapshot) NewFetchCursor(p *PoolHandle) *FetchCursor {
	return newFetchCursor(p, s.snapshot)
}

// Release - free the snapshot
func (s *Snapshot) Release() {
	s.snapshot.Release()
}
