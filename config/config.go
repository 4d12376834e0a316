// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	logtypes "github.com/BOXFoundation/opvm/log/types"
	"github.com/BOXFoundation/opvm/metrics"
	"github.com/BOXFoundation/opvm/util"
	"github.com/pkg/errors"
)

////////////////////////////////////////////////////////////////
// build time variants

// Version number of the build
var Version string

// GitCommit id of source code
var GitCommit string

// GitBranch name of source code
var GitBranch string

// GoVersion is the toolchain the binary is built with
var GoVersion = runtime.Version()

////////////////////////////////////////////////////////////////

// VMConfig configures how instructions are fed to the engine.
type VMConfig struct {
	// Encoding of instruction text, hex or base58.
	Encoding string `mapstructure:"encoding"`
	// Trace logs every executed instruction at info level.
	Trace bool `mapstructure:"trace"`
}

// Config is the configuration of the opvm tools, which is read from config
// file or parsed from command line.
type Config struct {
	Workspace string          `mapstructure:"workspace"`
	Log       logtypes.Config `mapstructure:"log"`
	Metrics   metrics.Config  `mapstructure:"metrics"`
	VM        VMConfig        `mapstructure:"vm"`
}

var format = `workspace: %s
log: %s (%s)
metrics: %v
vm: %+v`

func (c Config) String() string {
	return fmt.Sprintf(format, c.Workspace, c.Log.Level, c.Log.Output, c.Metrics.Enable, c.VM)
}

// GetLog return log config.
func (c Config) GetLog() logtypes.Config {
	return c.Log
}

// Prepare function makes sure all configurations are correct.
func (c *Config) Prepare() error {
	ws, err := filepath.Abs(c.Workspace)
	if err != nil {
		return errors.Wrap(err, "workspace")
	}
	c.Workspace = ws // change to abs path
	if err := os.MkdirAll(c.Workspace, 0700); err != nil {
		return errors.Wrap(err, "workspace")
	}

	// encoding
	c.VM.Encoding = strings.ToLower(c.VM.Encoding)
	if c.VM.Encoding == "" {
		c.VM.Encoding = util.EncodingHex
	}
	if !util.ValidEncoding(c.VM.Encoding) {
		return fmt.Errorf("incorrect encoding %s", c.VM.Encoding)
	}

	// log output file goes under the workspace unless it is absolute
	switch out := c.Log.Output; {
	case out == "" || out == logtypes.OutputStdout || out == logtypes.OutputStderr:
	case filepath.IsAbs(out):
		if err := os.MkdirAll(filepath.Dir(out), 0700); err != nil {
			return errors.Wrap(err, "log output")
		}
	case strings.Contains(out, "/"):
		return fmt.Errorf("incorrect log filename %s", out)
	default:
		logfile := filepath.Join(c.Workspace, "logs", out)
		if err := os.MkdirAll(filepath.Dir(logfile), 0700); err != nil {
			return errors.Wrap(err, "log output")
		}
		c.Log.Output = logfile
	}
	return nil
}
