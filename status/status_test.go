// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package status_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/status"
	"github.com/bitmark-inc/geonft/storage"
)

var databaseDirectory string

func setup(t *testing.T) {
	var err error
	databaseDirectory, err = ioutil.TempDir("", "status-test-")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	err = storage.Initialise(filepath.Join(databaseDirectory, "status.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	os.RemoveAll(databaseDirectory)
}

func TestOrdering(t *testing.T) {
	assert.True(t, status.Unsynced < status.BlobSynced, "wrong order")
	assert.True(t, status.BlobSynced < status.PlantSynced, "wrong order")
	assert.True(t, status.PlantSynced < status.ClaimSynced, "wrong order")
	assert.Equal(t, "PlantSynced", status.PlantSynced.String(), "wrong name")
	assert.Equal(t, "Invalid", status.SyncStatus(17).String(), "wrong invalid name")
}

func TestMap(t *testing.T) {
	m := status.Map{"a": status.BlobSynced}
	assert.Equal(t, status.BlobSynced, m.Get("a"), "wrong stage")
	assert.Equal(t, status.Unsynced, m.Get("b"), "absent key is not Unsynced")

	c := m.Clone()
	c["a"] = status.ClaimSynced
	assert.Equal(t, status.BlobSynced, m.Get("a"), "clone shares storage")
}

func TestRecordAdvances(t *testing.T) {
	setup(t)
	defer teardown(t)

	store := status.New()

	all, err := store.All()
	assert.Nil(t, err, "wrong All")
	assert.Equal(t, 0, len(all), "store not empty")

	assert.Nil(t, store.Record("t1", status.BlobSynced, "cid-1"), "wrong blob record")
	assert.Nil(t, store.Record("t1", status.PlantSynced, "tx-plant"), "wrong plant record")
	assert.Nil(t, store.Record("t2", status.BlobSynced, "cid-2"), "wrong blob record")
	assert.Nil(t, store.Record("t1", status.ClaimSynced, "tx-claim"), "wrong claim record")

	all, err = store.All()
	assert.Nil(t, err, "wrong All")
	assert.Equal(t, status.Map{"t1": status.ClaimSynced, "t2": status.BlobSynced}, all, "wrong statuses")

	reference, err := store.Reference("t1", status.BlobSynced)
	assert.Nil(t, err, "wrong Reference")
	assert.Equal(t, "cid-1", reference, "wrong content reference")

	reference, _ = store.Reference("t1", status.PlantSynced)
	assert.Equal(t, "tx-plant", reference, "wrong plant reference")

	reference, _ = store.Reference("t1", status.ClaimSynced)
	assert.Equal(t, "tx-claim", reference, "wrong claim reference")

	reference, _ = store.Reference("t2", status.PlantSynced)
	assert.Equal(t, "", reference, "reference before stage")

	_, err = store.Reference("t1", status.Unsynced)
	assert.Equal(t, fault.InvalidStatus, err, "Unsynced has a reference")
}

func TestRecordNeverRegresses(t *testing.T) {
	setup(t)
	defer teardown(t)

	store := status.New()
	assert.Nil(t, store.Record("t1", status.BlobSynced, "cid"), "wrong blob record")
	assert.Nil(t, store.Record("t1", status.PlantSynced, "tx"), "wrong plant record")

	err := store.Record("t1", status.PlantSynced, "tx-again")
	assert.Equal(t, fault.StatusRegression, err, "repeat accepted")
	assert.True(t, fault.IsErrPersistence(err), "wrong error class")

	err = store.Record("t1", status.BlobSynced, "cid-again")
	assert.Equal(t, fault.StatusRegression, err, "regression accepted")

	reference, _ := store.Reference("t1", status.PlantSynced)
	assert.Equal(t, "tx", reference, "rejected write changed reference")
}

func TestRecordOneStageAtATime(t *testing.T) {
	setup(t)
	defer teardown(t)

	store := status.New()
	err := store.Record("t1", status.PlantSynced, "tx")
	assert.Equal(t, fault.InvalidStatus, err, "stage skip accepted")

	err = store.Record("t1", status.Unsynced, "")
	assert.Equal(t, fault.InvalidStatus, err, "Unsynced accepted")

	all, _ := store.All()
	assert.Equal(t, status.Unsynced, all.Get("t1"), "rejected write stored")
}

func TestRecordSurvivesRestart(t *testing.T) {
	setup(t)
	defer teardown(t)

	assert.Nil(t, status.New().Record("t1", status.BlobSynced, "cid"), "wrong blob record")

	storage.Finalise()
	err := storage.Initialise(filepath.Join(databaseDirectory, "status.leveldb"), storage.ReadWrite)
	assert.Nil(t, err, "wrong re-Initialise")

	all, err := status.New().All()
	assert.Nil(t, err, "wrong All")
	assert.Equal(t, status.BlobSynced, all.Get("t1"), "status lost on restart")
}

func TestCorruptStatus(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Pool.Status.Put([]byte("bad"), []byte{0x09})
	assert.Nil(t, err, "wrong Put")

	_, err = status.New().All()
	assert.True(t, fault.IsErrInvalid(err), "corrupt status accepted")
}
