// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/passcheck/fault"
)

const (
	watcherLoggerPrefix = "watcher"
)

// watches a single file by watching its directory, so that a file
// replaced by an editor is still seen
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
	stopped  chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, fault.ErrSourceUnavailable
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
		stopped:  make(chan struct{}),
	}, nil
}

// Start - begin delivering events in the background
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.run()
	return nil
}

// Stop - close the watcher, the background loop then exits
func (w *fileWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *fileWatcher) run() {
	defer close(w.stopped)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Warnf("file: %s removed", w.filePath)
				w.sendEvent(w.remove, "remove")
			} else if watcherEventFileChange(event) {
				w.sendEvent(w.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

// events arriving while one is pending are merged into it
func (w *fileWatcher) sendEvent(ch chan struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel: %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}

// wait for file changes running the action for each one, until a
// value arrives on shutdown or the watcher stops
func watchLoop(log *logger.L, w *fileWatcher, shutdown <-chan os.Signal, action func()) error {
	for {
		select {
		case <-w.change:
			log.Info("file changed")
			action()
		case <-w.remove:
			log.Warn("file removed, waiting for it to be recreated")
		case <-w.stopped:
			return fault.ErrWatcherStopped
		case sig := <-shutdown:
			log.Infof("received signal: %v", sig)
			return nil
		}
	}
}
