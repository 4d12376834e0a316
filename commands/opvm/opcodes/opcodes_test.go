// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opcodes

import (
	"bytes"
	"strings"
	"testing"

	"github.com/facebookgo/ensure"
)

func TestPrintTable(t *testing.T) {
	var out bytes.Buffer
	printTable(&out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	ensure.DeepEqual(t, len(lines), 4)
	ensure.DeepEqual(t, strings.Fields(lines[0]), []string{"ID", "NAME", "WIDTH", "LENGTH"})
	ensure.DeepEqual(t, strings.Fields(lines[1]), []string{"0x0000", "OP_ADD8", "1", "4"})
	ensure.DeepEqual(t, strings.Fields(lines[2]), []string{"0x0001", "OP_ADD16", "2", "6"})
	ensure.DeepEqual(t, strings.Fields(lines[3]), []string{"0x0002", "OP_ADD32", "4", "10"})
}
