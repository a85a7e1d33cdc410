// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package directory - content store in a local directory
//
// each blob is stored in a file named by its CIDv1 (raw codec, sha2-256)
package directory

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/bitmark-inc/geonft/fault"
)

// Configuration - directory settings
type Configuration struct {
	Directory string `gluamapper:"directory" json:"directory"`
}

// Store - blobs in a directory
type Store struct {
	log       *logger.L
	directory string
}

// New - store writing into the configured directory
func New(configuration *Configuration) *Store {
	return &Store{
		log:       logger.New("blobs"),
		directory: configuration.Directory,
	}
}

// Identifier - the content identifier of a blob
func Identifier(blob []byte) (cid.Cid, error) {
	hash, err := multihash.Sum(blob, multihash.SHA2_256, -1)
	if nil != err {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, hash), nil
}

// Connect - make sure the directory exists
func (s *Store) Connect(ctx context.Context) error {
	err := os.MkdirAll(s.directory, 0700)
	if nil != err {
		return fmt.Errorf("%w: %s", fault.ContentServiceUnreached, err)
	}
	return nil
}

// Upload - store a blob under its identifier
//
// storing the same blob again is harmless
func (s *Store) Upload(ctx context.Context, blob []byte) (string, error) {
	id, err := Identifier(blob)
	if nil != err {
		return "", fmt.Errorf("%w: %s", fault.ContentServiceFailed, err)
	}
	name := id.String()
	fileName := filepath.Join(s.directory, name)

	if _, err := os.Stat(fileName); nil == err {
		s.log.Debugf("already stored: %s", name)
		return name, nil
	}

	f, err := ioutil.TempFile(s.directory, ".blob-")
	if nil != err {
		return "", fmt.Errorf("%w: %s", fault.ContentServiceFailed, err)
	}
	defer os.Remove(f.Name())

	_, err = f.Write(blob)
	if nil == err {
		err = f.Sync()
	}
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	if nil == err {
		err = os.Rename(f.Name(), fileName)
	}
	if nil != err {
		return "", fmt.Errorf("%w: %s", fault.ContentServiceFailed, err)
	}

	s.log.Infof("stored: %s  bytes: %d", name, len(blob))
	return name, nil
}

// Read - fetch a stored blob
func (s *Store) Read(identifier string) ([]byte, error) {
	id, err := cid.Decode(identifier)
	if nil != err {
		return nil, fault.InvalidContentIdentifier
	}
	return ioutil.ReadFile(filepath.Join(s.directory, id.String()))
}
