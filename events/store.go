// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/geonft/account"
	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/treasure"
)

// prefix of names being written
const temporaryPrefix = "."

// Store - the event directory
type Store struct {
	directory string
}

// New - open an event directory, creating the kind subdirectories
func New(directory string) (*Store, error) {
	for _, kind := range []Kind{Plant, Claim} {
		err := os.MkdirAll(filepath.Join(directory, kind.String()), 0700)
		if nil != err {
			return nil, fmt.Errorf("%w: %s", fault.EventWriteFailed, err)
		}
	}
	return &Store{
		directory: directory,
	}, nil
}

// Directory - the root directory of the store
func (store *Store) Directory() string {
	return store.directory
}

// KindDirectory - directory holding the records of one kind
func (store *Store) KindDirectory(kind Kind) string {
	return filepath.Join(store.directory, kind.String())
}

// TimeSorted - every event in processing order
func (store *Store) TimeSorted() ([]Event, error) {
	events := make([]Event, 0, 64)
	for _, kind := range []Kind{Plant, Claim} {
		infos, err := ioutil.ReadDir(store.KindDirectory(kind))
		if nil != err {
			return nil, fmt.Errorf("%w: %s", fault.EventReadFailed, err)
		}
		for _, info := range infos {
			name := info.Name()
			if !info.Mode().IsRegular() || strings.HasPrefix(name, temporaryPrefix) {
				continue
			}
			events = append(events, Event{
				Kind: kind,
				Key:  name,
				Time: info.ModTime(),
			})
		}
	}
	sortEvents(events)
	return events, nil
}

// Plant - read the plant request of a treasure
func (store *Store) Plant(key string) (*treasure.PlantRequest, error) {
	request := &treasure.PlantRequest{}
	err := store.read(Plant, key, request)
	if nil != err {
		return nil, err
	}
	return request, nil
}

// Claim - read the claim request of a treasure
func (store *Store) Claim(key string) (*treasure.ClaimRequest, error) {
	request := &treasure.ClaimRequest{}
	err := store.read(Claim, key, request)
	if nil != err {
		return nil, err
	}
	return request, nil
}

// HasPlant - check if a treasure has been planted
func (store *Store) HasPlant(key string) (bool, error) {
	return store.has(Plant, key)
}

// HasClaim - check if a treasure has been claimed
func (store *Store) HasClaim(key string) (bool, error) {
	return store.has(Claim, key)
}

func (store *Store) fileName(kind Kind, key string) (string, error) {
	canonical, err := account.Canonical(account.TreasureKind, key)
	if nil != err {
		return "", err
	}
	return filepath.Join(store.KindDirectory(kind), canonical), nil
}

func (store *Store) has(kind Kind, key string) (bool, error) {
	fileName, err := store.fileName(kind, key)
	if nil != err {
		return false, err
	}
	_, err = os.Stat(fileName)
	if nil == err {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %s", fault.EventReadFailed, err)
}

func (store *Store) read(kind Kind, key string, request interface{}) error {
	fileName, err := store.fileName(kind, key)
	if nil != err {
		return err
	}
	data, err := ioutil.ReadFile(fileName)
	if os.IsNotExist(err) {
		if Plant == kind {
			return fault.PlantNotFound
		}
		return fault.ClaimNotFound
	}
	if nil != err {
		return fmt.Errorf("%w: %s", fault.EventReadFailed, err)
	}
	err = json.Unmarshal(data, request)
	if nil != err {
		return fmt.Errorf("%w: %s: %s", fault.EventReadFailed, fileName, err)
	}
	return nil
}

// write a new record, never replacing an existing one
func (store *Store) write(kind Kind, key string, request interface{}) error {
	fileName, err := store.fileName(kind, key)
	if nil != err {
		return err
	}

	data, err := json.Marshal(request)
	if nil != err {
		return fmt.Errorf("%w: %s", fault.EventWriteFailed, err)
	}

	f, err := ioutil.TempFile(store.KindDirectory(kind), temporaryPrefix+kind.String()+"-")
	if nil != err {
		return fmt.Errorf("%w: %s", fault.EventWriteFailed, err)
	}
	temporaryName := f.Name()
	defer os.Remove(temporaryName)

	_, err = f.Write(data)
	if nil == err {
		err = f.Sync()
	}
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		return fmt.Errorf("%w: %s", fault.EventWriteFailed, err)
	}

	err = os.Link(temporaryName, fileName)
	if os.IsExist(err) {
		if Plant == kind {
			return fault.PlantAlreadyRecorded
		}
		return fault.ClaimAlreadyRecorded
	}
	if nil != err {
		return fmt.Errorf("%w: %s", fault.EventWriteFailed, err)
	}
	return nil
}
