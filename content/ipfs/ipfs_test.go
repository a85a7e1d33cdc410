// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ipfs_test

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/geonft/content/directory"
	"github.com/bitmark-inc/geonft/content/ipfs"
	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/fixtures"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// a fake node keeping what was added
type node struct {
	added    [][]byte
	pinned   bool
	badHash  bool
	failures bool
}

func (n *node) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if n.failures {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	switch r.URL.Path {
	case "/api/v0/version":
		_ = json.NewEncoder(w).Encode(map[string]string{"Version": "0.4.22", "Commit": ""})

	case "/api/v0/add":
		n.pinned = "true" == r.URL.Query().Get("pin")
		file, _, err := r.FormFile("file")
		if nil != err {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		blob, _ := ioutil.ReadAll(file)
		n.added = append(n.added, blob)

		hash := "not a cid"
		if !n.badHash {
			id, _ := directory.Identifier(blob)
			hash = id.String()
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"Name": "treasure", "Hash": hash, "Size": "1"})

	default:
		http.NotFound(w, r)
	}
}

func TestUpload(t *testing.T) {
	n := &node{}
	server := httptest.NewServer(n)
	defer server.Close()

	client := ipfs.New(&ipfs.Configuration{URL: server.URL + "/"})
	ctx := context.Background()

	assert.Nil(t, client.Connect(ctx), "wrong Connect")

	blob := []byte("a treasure picture")
	identifier, err := client.Upload(ctx, blob)
	assert.Nil(t, err, "wrong Upload")

	expected, _ := directory.Identifier(blob)
	assert.Equal(t, expected.String(), identifier, "wrong identifier")
	assert.Equal(t, [][]byte{blob}, n.added, "wrong uploaded data")
	assert.True(t, n.pinned, "upload not pinned")
}

func TestUploadBadHash(t *testing.T) {
	server := httptest.NewServer(&node{badHash: true})
	defer server.Close()

	client := ipfs.New(&ipfs.Configuration{URL: server.URL})
	_, err := client.Upload(context.Background(), []byte("blob"))
	assert.True(t, fault.IsErrDecode(err), "invalid CID accepted")
}

func TestNodeFailures(t *testing.T) {
	server := httptest.NewServer(&node{failures: true})
	defer server.Close()

	client := ipfs.New(&ipfs.Configuration{URL: server.URL})
	ctx := context.Background()

	err := client.Connect(ctx)
	assert.True(t, fault.IsErrService(err), "failed node connected")

	_, err = client.Upload(ctx, []byte("blob"))
	assert.True(t, fault.IsErrService(err), "failed upload not a service error")
}
