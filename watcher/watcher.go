// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package watcher - wake the synchroniser when new events arrive
package watcher

import (
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// names starting with this are records still being written
const temporaryPrefix = "."

// Watcher - fsnotify watch of a set of directories
type Watcher struct {
	log     *logger.L
	watcher *fsnotify.Watcher
	wake    chan struct{}
}

// New - watch each directory for new records
func New(directories ...string) (*Watcher, error) {
	log := logger.New("watcher")

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	for _, directory := range directories {
		err = watcher.Add(directory)
		if nil != err {
			log.Errorf("watch: %q  error: %s", directory, err)
			watcher.Close()
			return nil, err
		}
		log.Infof("watching: %q", directory)
	}

	return &Watcher{
		log:     log,
		watcher: watcher,
		wake:    make(chan struct{}, 1),
	}, nil
}

// Wake - receives after one or more records appeared
//
// a nil watcher never wakes
func (w *Watcher) Wake() <-chan struct{} {
	if nil == w {
		return nil
	}
	return w.wake
}

// Run - background process forwarding file events
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if !isNewRecord(event) {
				continue loop
			}
			log.Debugf("record event: %s", event)
			w.signal()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watch error: %s", err)
		}
	}

	w.watcher.Close()
	log.Info("stopped")
}

// coalesce bursts into a single pending wake up
func (w *Watcher) signal() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// records are linked into place, so only creation matters
func isNewRecord(event fsnotify.Event) bool {
	if strings.HasPrefix(filepath.Base(event.Name), temporaryPrefix) {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Rename) != 0
}
