// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish_test

import (
	"os"
	"testing"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/geonft/background"
	"github.com/bitmark-inc/geonft/fixtures"
	"github.com/bitmark-inc/geonft/publish"
	"github.com/bitmark-inc/geonft/status"
)

const endpoint = "inproc://publish-test"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestBroadcast(t *testing.T) {
	brdc, err := publish.New(&publish.Configuration{
		Broadcast: []string{endpoint},
	})
	if nil != err {
		t.Fatalf("publish.New error: %s", err)
	}

	processes := background.Start(background.Processes{brdc}, nil)
	defer processes.Stop()

	subscriber, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		t.Fatalf("subscriber error: %s", err)
	}
	defer subscriber.Close()

	_ = subscriber.SetSubscribe("status")
	_ = subscriber.SetRcvtimeo(200 * time.Millisecond)
	err = subscriber.Connect(endpoint)
	assert.Nil(t, err, "wrong Connect")

	// a subscription takes a moment to reach the publisher
	var frames []string
	for i := 0; i < 20 && 0 == len(frames); i += 1 {
		brdc.Notify("treasure1abc", status.PlantSynced, "tx-id")
		frames, _ = subscriber.RecvMessage(0)
	}

	assert.Equal(t, []string{"status", "treasure1abc", "PlantSynced", "tx-id"}, frames, "wrong frames")
}

func TestNilBroadcaster(t *testing.T) {
	var brdc *publish.Broadcaster
	brdc.Notify("key", status.BlobSynced, "cid")
}
