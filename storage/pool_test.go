// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/storage"
)

// helper to add to pool
func poolPut(t *testing.T, p *storage.PoolHandle, key string, data string) {
	err := p.Put([]byte(key), []byte(data))
	if nil != err {
		t.Fatalf("put: %q  error: %s", key, err)
	}
}

// helper to remove from pool
func poolDelete(t *testing.T, p *storage.PoolHandle, key string) {
	err := p.Delete([]byte(key))
	if nil != err {
		t.Fatalf("delete: %q  error: %s", key, err)
	}
}

func fillPool(t *testing.T, p *storage.PoolHandle) {
	poolPut(t, p, "key-one", "data-one")
	poolPut(t, p, "key-two", "data-two")
	poolPut(t, p, "key-remove-me", "to be deleted")
	poolDelete(t, p, "key-remove-me")
	poolPut(t, p, "key-three", "data-three")
	poolPut(t, p, "key-one", "data-one")     // duplicate
	poolPut(t, p, "key-three", "data-three") // duplicate
	poolPut(t, p, "key-four", "data-four")
	poolPut(t, p, "key-delete-this", "to be deleted")
	poolPut(t, p, "key-five", "data-five")
	poolPut(t, p, "key-six", "data-six")
	poolDelete(t, p, "key-delete-this")
	poolPut(t, p, "key-seven", "data-seven")
	poolPut(t, p, "key-one", "data-one(NEW)") // duplicate
}

// main pool test
func TestPool(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	fillPool(t, p)

	data, err := p.NewFetchCursor().Fetch(20)
	assert.Nil(t, err, "wrong Fetch")
	assert.Equal(t, expectedElements, data, "wrong pool contents")

	value, err := p.Get([]byte("key-two"))
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, []byte("data-two"), value, "wrong value")

	value, err = p.Get([]byte("/nonexistent"))
	assert.Nil(t, err, "absent key is an error")
	assert.Nil(t, value, "absent key has a value")

	found, err := p.Has([]byte("key-six"))
	assert.Nil(t, err, "wrong Has")
	assert.True(t, found, "key not found")

	// other pools must not see the data
	data, err = storage.Pool.Status.NewFetchCursor().Fetch(20)
	assert.Nil(t, err, "wrong Fetch")
	assert.Equal(t, 0, len(data), "pools are not separate")

	// check that restarting database keeps data
	storage.Finalise()
	err = storage.Initialise(databaseFileName(), storage.ReadWrite)
	assert.Nil(t, err, "wrong re-Initialise")

	data, err = p.NewFetchCursor().Fetch(20)
	assert.Nil(t, err, "wrong Fetch")
	assert.Equal(t, expectedElements, data, "data lost on restart")
}

func TestFetchInPieces(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	fillPool(t, p)

	cursor := p.NewFetchCursor()
	all := []storage.Element{}
	for {
		data, err := cursor.Fetch(3)
		assert.Nil(t, err, "wrong Fetch")
		if 0 == len(data) {
			break
		}
		all = append(all, data...)
	}
	assert.Equal(t, expectedElements, all, "wrong pieces")

	_, err := cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count accepted")
}

func TestSeek(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	fillPool(t, p)

	data, err := p.NewFetchCursor().Seek([]byte("key-seven")).Fetch(2)
	assert.Nil(t, err, "wrong Fetch")
	assert.Equal(t, expectedElements[3:5], data, "wrong seek position")
}

func TestMap(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	fillPool(t, p)

	keys := []string{}
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	assert.Nil(t, err, "wrong Map")
	assert.Equal(t, len(expectedElements), len(keys), "wrong count")

	stop := fault.InvalidCount
	n := 0
	err = p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		return stop
	})
	assert.Equal(t, stop, err, "map error lost")
	assert.Equal(t, 1, n, "map did not stop")
}

func TestBatch(t *testing.T) {
	setup(t)
	defer teardown(t)

	poolPut(t, storage.Pool.TestData, "old", "value")

	batch := storage.NewBatch()
	batch.Put(storage.Pool.Status, []byte("one"), []byte{1})
	batch.Put(storage.Pool.ContentID, []byte("one"), []byte("cid"))
	batch.Delete(storage.Pool.TestData, []byte("old"))
	assert.Equal(t, 3, batch.Len(), "wrong batch length")

	// nothing visible before commit
	value, _ := storage.Pool.Status.Get([]byte("one"))
	assert.Nil(t, value, "batch visible before commit")

	err := batch.Commit()
	assert.Nil(t, err, "wrong Commit")
	assert.Equal(t, 0, batch.Len(), "batch not reset")

	value, _ = storage.Pool.Status.Get([]byte("one"))
	assert.Equal(t, []byte{1}, value, "wrong status value")
	value, _ = storage.Pool.ContentID.Get([]byte("one"))
	assert.Equal(t, []byte("cid"), value, "wrong content value")
	found, _ := storage.Pool.TestData.Has([]byte("old"))
	assert.False(t, found, "delete not applied")
}

func TestSnapshot(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	poolPut(t, p, "before", "1")

	snapshot, err := storage.NewSnapshot()
	assert.Nil(t, err, "wrong NewSnapshot")
	defer snapshot.Release()

	poolPut(t, p, "after", "2")
	poolPut(t, p, "before", "changed")

	value, err := snapshot.Get(p, []byte("before"))
	assert.Nil(t, err, "wrong snapshot Get")
	assert.Equal(t, []byte("1"), value, "snapshot sees later write")

	data, err := snapshot.NewFetchCursor(p).Fetch(10)
	assert.Nil(t, err, "wrong snapshot Fetch")
	assert.Equal(t, []storage.Element{{Key: []byte("before"), Value: []byte("1")}}, data, "wrong snapshot contents")
}

func TestNotInitialised(t *testing.T) {
	setup(t)
	p := storage.Pool.TestData
	teardown(t)

	err := p.Put([]byte("key"), []byte("value"))
	assert.Equal(t, fault.DatabaseIsNotSet, err, "put on closed database")

	_, err = p.Get([]byte("key"))
	assert.Equal(t, fault.DatabaseIsNotSet, err, "get on closed database")

	_, err = p.NewFetchCursor().Fetch(1)
	assert.Equal(t, fault.DatabaseIsNotSet, err, "fetch on closed database")

	_, err = storage.NewSnapshot()
	assert.Equal(t, fault.DatabaseIsNotSet, err, "snapshot on closed database")
}

func TestDoubleInitialise(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName(), storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise accepted")
}
