// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package status

import (
	"fmt"
	"sync"

	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/storage"
)

// Store - durable record of the stage reached by each treasure
type Store interface {
	All() (Map, error)
	Record(key string, stage SyncStatus, reference string) error
	Reference(key string, stage SyncStatus) (string, error)
}

type poolStore struct {
	sync.Mutex
}

// New - status store over the storage pools
//
// storage.Initialise must have been called
func New() Store {
	return &poolStore{}
}

// All - every stored stage, read from a single snapshot
func (ps *poolStore) All() (Map, error) {
	snapshot, err := storage.NewSnapshot()
	if nil != err {
		return nil, err
	}
	defer snapshot.Release()

	m := make(Map)
	err = snapshot.NewFetchCursor(storage.Pool.Status).Map(func(key []byte, value []byte) error {
		if 1 != len(value) {
			return fmt.Errorf("status of: %s  length: %d  error: %w", key, len(value), fault.InvalidStatus)
		}
		s, err := FromByte(value[0])
		if nil != err {
			return fmt.Errorf("status of: %s  value: %d  error: %w", key, value[0], err)
		}
		m[string(key)] = s
		return nil
	})
	if nil != err {
		return nil, err
	}
	return m, nil
}

// Record - advance a key to stage and keep the reference produced by it
//
// the stage and the reference are written in one batch; the stage must
// be exactly one after the stored stage
func (ps *poolStore) Record(key string, stage SyncStatus, reference string) error {
	if Unsynced == stage || !stage.IsValid() {
		return fault.InvalidStatus
	}

	ps.Lock()
	defer ps.Unlock()

	current, err := ps.get(key)
	if nil != err {
		return fmt.Errorf("%w: %s", fault.StatusWriteFailed, err)
	}
	if stage <= current {
		return fault.StatusRegression
	}
	if stage != current+1 {
		return fault.InvalidStatus
	}

	batch := storage.NewBatch()
	batch.Put(storage.Pool.Status, []byte(key), []byte{byte(stage)})
	switch stage {
	case BlobSynced:
		batch.Put(storage.Pool.ContentID, []byte(key), []byte(reference))
	default:
		batch.Put(storage.Pool.LedgerTx, ledgerKey(key, stage), []byte(reference))
	}

	err = batch.Commit()
	if nil != err {
		return fmt.Errorf("%w: %s", fault.StatusWriteFailed, err)
	}
	return nil
}

// Reference - the reference stored for a stage, empty if none
func (ps *poolStore) Reference(key string, stage SyncStatus) (string, error) {
	var value []byte
	var err error
	switch stage {
	case BlobSynced:
		value, err = storage.Pool.ContentID.Get([]byte(key))
	case PlantSynced, ClaimSynced:
		value, err = storage.Pool.LedgerTx.Get(ledgerKey(key, stage))
	default:
		return "", fault.InvalidStatus
	}
	if nil != err {
		return "", err
	}
	return string(value), nil
}

func (ps *poolStore) get(key string) (SyncStatus, error) {
	value, err := storage.Pool.Status.Get([]byte(key))
	if nil != err {
		return Unsynced, err
	}
	if nil == value {
		return Unsynced, nil
	}
	if 1 != len(value) {
		return Unsynced, fault.InvalidStatus
	}
	return FromByte(value[0])
}

// L ++ key ++ stage
func ledgerKey(key string, stage SyncStatus) []byte {
	return append([]byte(key), byte(stage))
}
