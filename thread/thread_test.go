// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package thread

import (
	"sync"
	"testing"

	"github.com/BOXFoundation/opvm/vm"
	"github.com/facebookgo/ensure"
	"github.com/pkg/errors"
)

func TestThreadExec(t *testing.T) {
	th := New(WithTrace(true))
	ensure.DeepEqual(t, len(th.ID()), 36)

	delta, err := th.Exec([]byte{0x00, 0x00, 0x15, 0x03, 0xff})
	ensure.Nil(t, err)
	ensure.DeepEqual(t, delta, vm.Delta{InstBytesConsumed: 4, DataBytesPushed: 1})

	delta, err = th.Exec([]byte{0x00, 0x01, 0x03, 0x4d, 0x04, 0x58})
	ensure.Nil(t, err)
	ensure.DeepEqual(t, delta, vm.Delta{InstBytesConsumed: 6, DataBytesPushed: 2})

	ensure.DeepEqual(t, th.Executed(), uint64(2))
	ensure.DeepEqual(t, th.Stack().Bytes(), []byte{0x18, 0x07, 0xa5})
}

func TestThreadExecError(t *testing.T) {
	th := New()
	_, err := th.Exec([]byte{0x00, 0x00, 0x01, 0x01})
	ensure.Nil(t, err)

	_, err = th.Exec([]byte{0x00, 0x00, 0xff, 0x02})
	ensure.True(t, errors.Is(err, vm.ErrArithmeticOverflow))
	ensure.StringContains(t, err.Error(), th.ID())

	var overflow *vm.ArithmeticOverflowError
	ensure.True(t, errors.As(err, &overflow))
	ensure.DeepEqual(t, overflow.Addend1, uint32(0xff))
	ensure.DeepEqual(t, overflow.Addend2, uint32(0x02))

	_, err = th.Exec([]byte{0xff, 0xff})
	ensure.True(t, errors.Is(err, vm.ErrUnknownOpCode))

	_, err = th.Exec([]byte{0x00})
	ensure.True(t, errors.Is(err, vm.ErrInstructionTooShort))

	ensure.DeepEqual(t, th.Executed(), uint64(1))
	ensure.DeepEqual(t, th.Stack().Bytes(), []byte{0x02})
}

func TestThreadWithStack(t *testing.T) {
	stack := vm.NewStack()
	stack.Push16(0x0102)
	th := New(WithStack(stack))
	_, err := th.Exec([]byte{0x00, 0x00, 0x01, 0x01})
	ensure.Nil(t, err)
	ensure.DeepEqual(t, stack.Bytes(), []byte{0x01, 0x02, 0x02})
}

func TestThreadsConcurrent(t *testing.T) {
	const n = 16
	var wg sync.WaitGroup
	threads := make([]*Thread, n)
	for i := range threads {
		threads[i] = New()
		wg.Add(1)
		go func(th *Thread, v byte) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				th.Exec([]byte{0x00, 0x00, v, 0x01})
			}
		}(threads[i], byte(i))
	}
	wg.Wait()

	for i, th := range threads {
		ensure.DeepEqual(t, th.Stack().Len(), 100)
		top, err := th.Stack().Pop8()
		ensure.Nil(t, err)
		ensure.DeepEqual(t, top, uint8(i+1))
	}
}
