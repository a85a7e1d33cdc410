// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package content - content addressed storage for treasure images
package content

import (
	"context"
	"strings"

	"github.com/bitmark-inc/geonft/content/directory"
	"github.com/bitmark-inc/geonft/content/ipfs"
	"github.com/bitmark-inc/geonft/fault"
)

// Store - a content addressed blob store
//
// Upload returns the content identifier of the stored blob
type Store interface {
	Connect(ctx context.Context) error
	Upload(ctx context.Context, blob []byte) (string, error)
}

// back end names
const (
	IPFSKind      = "ipfs"
	DirectoryKind = "directory"
)

// Configuration - select and configure a back end
type Configuration struct {
	Kind      string                  `gluamapper:"kind" json:"kind"`
	IPFS      ipfs.Configuration      `gluamapper:"ipfs" json:"ipfs"`
	Directory directory.Configuration `gluamapper:"directory" json:"directory"`
}

// New - create the configured store
func New(configuration *Configuration) (Store, error) {
	switch strings.ToLower(configuration.Kind) {
	case IPFSKind:
		return ipfs.New(&configuration.IPFS), nil
	case DirectoryKind:
		return directory.New(&configuration.Directory), nil
	default:
		return nil, fault.InvalidContentKind
	}
}
