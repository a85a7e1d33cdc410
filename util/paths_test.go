// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/geonft/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/events", util.EnsureAbsolute("/data", "events"), "relative path not joined")
	assert.Equal(t, "/data/events", util.EnsureAbsolute("/data", "./x/../events"), "relative path not cleaned")
	assert.Equal(t, "/var/events", util.EnsureAbsolute("/data", "/var//events"), "absolute path changed")
}

func TestEnsureFileExists(t *testing.T) {
	directory, err := ioutil.TempDir("", "util-paths-")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(directory)

	name := filepath.Join(directory, "payer.json")
	assert.False(t, util.EnsureFileExists(name), "missing file reported")

	err = ioutil.WriteFile(name, []byte("[]"), 0600)
	assert.Nil(t, err, "wrong WriteFile")
	assert.True(t, util.EnsureFileExists(name), "file not found")
}
