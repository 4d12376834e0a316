// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package log

import (
	"sync"

	ll "github.com/BOXFoundation/opvm/log/logrus"
	log "github.com/BOXFoundation/opvm/log/types"
)

var (
	mu        sync.Mutex
	loggerMap = map[string]log.Logger{}
)

// Setup loggers globally. An error opening the configured output leaves the
// previous output in place.
func Setup(cfg *log.Config) error {
	return log.Setup(ll.LoggerName, cfg)
}

// NewLogger creates a new logger.
func NewLogger(tag string) log.Logger {
	newLogger := log.NewLogger(ll.LoggerName, tag)
	if newLogger != nil {
		mu.Lock()
		loggerMap[tag] = newLogger
		mu.Unlock()
	}
	return newLogger
}

// SetLogLevel sets all loggers log level
func SetLogLevel(newLevel string) (ok bool) {
	mu.Lock()
	defer mu.Unlock()

	ok = true
	for _, logger := range loggerMap {
		originLevel := logger.LogLevel()
		logger.SetLogLevel(newLevel)
		currentLevel := logger.LogLevel()
		if currentLevel != newLevel {
			logger.Infof("Error setting log level from %s to %s", originLevel, newLevel)
			ok = false
		}
	}
	return
}

// Close flushes and closes the log output file, if any.
func Close() error {
	return log.Close(ll.LoggerName)
}
