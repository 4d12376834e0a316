// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/facebookgo/ensure"
)

func TestPrepare(t *testing.T) {
	dir, err := ioutil.TempDir("", "opvm-config")
	ensure.Nil(t, err)
	defer os.RemoveAll(dir)

	cfg := &Config{Workspace: filepath.Join(dir, "ws")}
	cfg.Log.Output = "opvm.log"
	ensure.Nil(t, cfg.Prepare())

	ensure.DeepEqual(t, cfg.VM.Encoding, "hex")
	ensure.DeepEqual(t, cfg.Log.Output, filepath.Join(dir, "ws", "logs", "opvm.log"))
	fi, err := os.Stat(filepath.Join(dir, "ws", "logs"))
	ensure.Nil(t, err)
	ensure.True(t, fi.IsDir())
}

func TestPrepareStdout(t *testing.T) {
	dir, err := ioutil.TempDir("", "opvm-config")
	ensure.Nil(t, err)
	defer os.RemoveAll(dir)

	cfg := &Config{Workspace: dir}
	cfg.Log.Output = "stdout"
	cfg.VM.Encoding = "BASE58"
	ensure.Nil(t, cfg.Prepare())
	ensure.DeepEqual(t, cfg.Log.Output, "stdout")
	ensure.DeepEqual(t, cfg.VM.Encoding, "base58")
}

func TestPrepareErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "opvm-config")
	ensure.Nil(t, err)
	defer os.RemoveAll(dir)

	cfg := &Config{Workspace: dir}
	cfg.Log.Output = "logs/opvm.log"
	ensure.NotNil(t, cfg.Prepare())

	cfg = &Config{Workspace: dir}
	cfg.VM.Encoding = "base64"
	ensure.NotNil(t, cfg.Prepare())
}
