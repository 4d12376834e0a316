// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logruslog

import (
	"io"
	"os"
	"sync"

	log "github.com/BOXFoundation/opvm/log/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// fileWriter owns the log file. Every write and the final close hold mu.
type fileWriter struct {
	mu     sync.Mutex
	file   *os.File
	closed bool
}

func (w *fileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return 0, os.ErrClosed
	}
	return w.file.Write(p)
}

func (w *fileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.file.Sync(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

var (
	outputMu sync.Mutex
	// current log file, nil when writing to a standard stream
	current *fileWriter
)

// openOutput resolves the output target. A file is created, or truncated if
// it exists.
func openOutput(target string) (io.Writer, error) {
	switch target {
	case "", log.OutputStdout:
		return os.Stdout, nil
	case log.OutputStderr:
		return os.Stderr, nil
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log output %s", target)
	}
	return &fileWriter{file: f}, nil
}

func switchOutput(logger *logrus.Logger, out io.Writer) {
	outputMu.Lock()
	defer outputMu.Unlock()

	logger.SetOutput(out)
	if current != nil && current != out {
		current.Close()
	}
	current, _ = out.(*fileWriter)
}

func closeOutput() error {
	outputMu.Lock()
	defer outputMu.Unlock()

	if current == nil {
		return nil
	}
	defaultLogrusLogger.SetOutput(os.Stdout)
	err := current.Close()
	current = nil
	return err
}
