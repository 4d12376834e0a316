// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package log

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	log "github.com/BOXFoundation/opvm/log/types"
	"github.com/facebookgo/ensure"
)

func TestLogrusInit(t *testing.T) {
	var logger = NewLogger("test")
	if logger == nil {
		t.Fatal("Get a nil logger.")
	}
}

func TestLogrusSetup(t *testing.T) {
	var logger = NewLogger("test")

	var levels = []string{
		"debug",
		"info",
		"warning",
		"error",
		"fatal",
	}

	for _, level := range levels {
		var cfg log.Config
		cfg.Level = level
		ensure.Nil(t, Setup(&cfg))
		if logger.LogLevel() != cfg.Level {
			t.Errorf("Invalid log level %s. It should be %s.", logger.LogLevel(), level)
		}
	}

	var oldLevel = logger.LogLevel()

	var cfg log.Config
	cfg.Level = "unknown"
	ensure.Nil(t, Setup(&cfg))
	if logger.LogLevel() != oldLevel {
		t.Errorf("Invalid log level %s. It should be %s.", logger.LogLevel(), oldLevel)
	}
}

func TestLogrusFileOutput(t *testing.T) {
	dir, err := ioutil.TempDir("", "opvm-log")
	ensure.Nil(t, err)
	defer os.RemoveAll(dir)

	filename := filepath.Join(dir, "opvm.log")
	ensure.Nil(t, ioutil.WriteFile(filename, []byte("stale content\n"), 0644))

	var cfg log.Config
	cfg.Level = "info"
	cfg.Output = filename
	ensure.Nil(t, Setup(&cfg))

	const writers, lines = 8, 50
	logger := NewLogger("file")
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < lines; j++ {
				logger.Infof("writer %d line %d", i, j)
			}
		}(i)
	}
	wg.Wait()
	logger.Debug("filtered out")
	ensure.Nil(t, Close())

	data, err := ioutil.ReadFile(filename)
	ensure.Nil(t, err)
	content := strings.TrimSpace(string(data))
	ensure.False(t, strings.Contains(content, "stale content"))
	ensure.False(t, strings.Contains(content, "filtered out"))

	entries := strings.Split(content, "\n")
	ensure.DeepEqual(t, len(entries), writers*lines)
	for _, entry := range entries {
		ensure.StringContains(t, entry, "tag=file")
		ensure.StringContains(t, entry, "source=")
	}
}

func TestLogrusBadOutput(t *testing.T) {
	var cfg log.Config
	cfg.Level = "info"
	cfg.Output = filepath.Join(os.TempDir(), "opvm-missing-dir", "sub", "opvm.log")
	ensure.NotNil(t, Setup(&cfg))

	cfg.Output = log.OutputStderr
	ensure.Nil(t, Setup(&cfg))
	ensure.Nil(t, Close())
}
