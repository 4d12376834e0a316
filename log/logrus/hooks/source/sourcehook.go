// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// frames of these packages are never reported as the log source
var ignoredPackages = []string{
	"github.com/sirupsen/logrus",
	"github.com/BOXFoundation/opvm/log/logrus",
}

type logrusSourceHook struct {
	Field     string
	levels    []logrus.Level
	Formatter func(file, function string, line int) string
}

func (hook *logrusSourceHook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *logrusSourceHook) Fire(entry *logrus.Entry) error {
	if frame, ok := findCaller(); ok {
		entry.Data[hook.Field] = hook.Formatter(shortFile(frame.File), frame.Function, frame.Line)
	}
	return nil
}

// NewHook creates logrus source hook which will print source filename and line number
func NewHook(levels ...logrus.Level) logrus.Hook {
	hook := logrusSourceHook{
		Field:  "source",
		levels: levels,
		Formatter: func(file, function string, line int) string {
			return fmt.Sprintf("%s:%d", file, line)
		},
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// findCaller returns the first frame outside of the logging packages.
func findCaller() (runtime.Frame, bool) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !ignored(frame.Function) {
			return frame, true
		}
		if !more {
			return runtime.Frame{}, false
		}
	}
}

func ignored(function string) bool {
	for _, pkg := range ignoredPackages {
		if strings.HasPrefix(function, pkg) {
			return true
		}
	}
	return false
}

// shortFile keeps the parent directory and the file name.
func shortFile(file string) string {
	dir, name := path.Split(file)
	return path.Join(path.Base(dir), name)
}
