// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/geonft/fault"
)

// Batch - a set of writes applied all together or not at all
type Batch struct {
	batch *leveldb.Batch
}

// NewBatch - start an empty batch
func NewBatch() *Batch {
	return &Batch{
		batch: new(leveldb.Batch),
	}
}

// Put - queue a key/value write to a pool
func (b *Batch) Put(p *PoolHandle, key []byte, value []byte) {
	b.batch.Put(p.prefixKey(key), value)
}

// Delete - queue the removal of a key from a pool
func (b *Batch) Delete(p *PoolHandle, key []byte) {
	b.batch.Delete(p.prefixKey(key))
}

// Len - number of queued operations
func (b *Batch) Len() int {
	return b.batch.Len()
}

// Commit - write every queued operation atomically and reset the batch
func (b *Batch) Commit() error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.DatabaseIsNotSet
	}
	err := poolData.database.Write(b.batch, &ldb_opt.WriteOptions{Sync: true})
	b.batch.Reset()
	return err
}
