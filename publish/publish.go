// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast status advances on a ZeroMQ PUB socket
//
// each advance is sent as the frames:
//
//   "status" key stage reference
package publish

import (
	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/geonft/status"
	"github.com/bitmark-inc/geonft/zmqutil"
)

// the topic of every message
const statusTopic = "status"

// queued messages before new ones are dropped
const queueSize = 1000

// Configuration - a block of configuration data
// this is read from the Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// Broadcaster - the PUB socket and its queue
type Broadcaster struct {
	log    *logger.L
	socket *zmq.Socket
	queue  chan []string
}

// New - bind the broadcast endpoints
//
// the keys are optional, when both are set the socket uses CURVE
func New(configuration *Configuration) (*Broadcaster, error) {
	log := logger.New("publish")

	var privateKey, publicKey []byte
	var err error
	if "" != configuration.PrivateKey && "" != configuration.PublicKey {
		privateKey, err = zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return nil, err
		}
		publicKey, err = zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return nil, err
		}
		log.Tracef("public key: %x", publicKey)
	}

	socket, err := zmqutil.NewBind(log, zmq.PUB, statusTopic, privateKey, publicKey, configuration.Broadcast)
	if nil != err {
		return nil, err
	}

	return &Broadcaster{
		log:    log,
		socket: socket,
		queue:  make(chan []string, queueSize),
	}, nil
}

// Notify - queue a status advance for broadcast
//
// never blocks, a nil broadcaster discards everything
func (brdc *Broadcaster) Notify(key string, stage status.SyncStatus, reference string) {
	if nil == brdc {
		return
	}
	select {
	case brdc.queue <- []string{statusTopic, key, stage.String(), reference}:
	default:
		brdc.log.Warnf("queue full, dropped: %s  %s", key, stage)
	}
}

// Run - background process sending queued messages
func (brdc *Broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case frames := <-brdc.queue:
			_, err := brdc.socket.SendMessage(frames)
			if nil != err {
				log.Errorf("send error: %s", err)
				continue loop
			}
			log.Debugf("sent: %q", frames)
		}
	}

	brdc.socket.Close()
	log.Info("stopped")
}
