// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"testing"

	"github.com/BOXFoundation/opvm/thread"
	"github.com/BOXFoundation/opvm/vm"
	"github.com/facebookgo/ensure"
	"github.com/pkg/errors"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, []byte{0x00, 0x00, 0x15, 0x03, 0xaa}, thread.New())
	ensure.Nil(t, err)
	ensure.DeepEqual(t, out.String(), `consumed: 4
pushed: 1
ignored: 1 trailing byte(s)
### stack ###
0    0x18
#############
`)
}

func TestRunError(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, []byte{0x00, 0x00, 0xff, 0x02}, thread.New())
	ensure.True(t, errors.Is(err, vm.ErrArithmeticOverflow))
	ensure.DeepEqual(t, out.Len(), 0)
}
