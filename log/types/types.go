// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"

	mate "github.com/heralight/logrus_mate"
)

// Logger defines the log functions
type Logger interface {
	SetLogLevel(level string)
	LogLevel() string
	Debugf(f string, v ...interface{})
	Debug(v ...interface{})
	Infof(f string, v ...interface{})
	Info(v ...interface{})
	Warnf(f string, v ...interface{})
	Warn(v ...interface{})
	Errorf(f string, v ...interface{})
	Error(v ...interface{})
	Fatalf(f string, v ...interface{})
	Fatal(v ...interface{})
	Panicf(f string, v ...interface{})
	Panic(v ...interface{})
}

// Output targets
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// Config is the configuration of the loggers. Level, formatter and hooks
// follow logrus_mate. Output is stdout (default), stderr, or the name of a
// file owned exclusively by the logger.
type Config struct {
	mate.LoggerConfig `mapstructure:",squash"`
	Output            string `mapstructure:"output"`
}

type setupFunc func(*Config) error
type newLoggerFunc func(string) Logger
type closeFunc func() error

// LoggerEntry is a logger impl entry
type LoggerEntry struct {
	Setup     setupFunc
	NewLogger newLoggerFunc
	Close     closeFunc
}

var loggers = map[string]*LoggerEntry{}

// Register registers a logger
func Register(name string, entry *LoggerEntry) {
	loggers[name] = entry
}

// Setup loggers globally
func Setup(name string, cfg *Config) error {
	if entry, ok := loggers[name]; ok {
		return entry.Setup(cfg)
	}
	return fmt.Errorf("invalid logger: %s", name)
}

// NewLogger creates a new logger.
func NewLogger(name, tag string) Logger {
	if entry, ok := loggers[name]; ok {
		return entry.NewLogger(tag)
	}

	fmt.Printf("Invalid logger: %s\n", name)
	return nil
}

// Close releases the output of the named logger impl.
func Close(name string) error {
	if entry, ok := loggers[name]; ok && entry.Close != nil {
		return entry.Close()
	}
	return nil
}
