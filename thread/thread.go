// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package thread implements an execution context for the vm: one operand
// stack that accumulates state across executed instructions.
package thread

import (
	"time"

	"github.com/BOXFoundation/opvm/log"
	"github.com/BOXFoundation/opvm/metrics"
	"github.com/BOXFoundation/opvm/vm"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

var logger = log.NewLogger("thread") // logger

// metrics
var (
	metricsExecOk        = metrics.NewCounter("vm.exec.ok")
	metricsExecTime      = metrics.NewTimer("vm.exec.time")
	metricsBytesConsumed = metrics.NewMeter("vm.bytes.consumed")
	metricsStackBytes    = metrics.NewGauge("vm.stack.bytes")
	metricsErrUnderflow  = metrics.NewCounter("vm.exec.err.stack_underflow")
	metricsErrTooShort   = metrics.NewCounter("vm.exec.err.too_short")
	metricsErrUnknownOp  = metrics.NewCounter("vm.exec.err.unknown_opcode")
	metricsErrOverflow   = metrics.NewCounter("vm.exec.err.overflow")
	metricsErrOther      = metrics.NewCounter("vm.exec.err.other")
)

// Thread owns an operand stack. It is not safe for concurrent use; run one
// Thread per goroutine.
type Thread struct {
	id       string
	stack    *vm.Stack
	trace    bool
	executed uint64
}

// Option configures a Thread.
type Option func(*Thread)

// WithTrace logs every executed instruction at info level instead of debug.
func WithTrace(trace bool) Option {
	return func(t *Thread) {
		t.trace = trace
	}
}

// WithStack starts the thread on an existing stack.
func WithStack(stack *vm.Stack) Option {
	return func(t *Thread) {
		t.stack = stack
	}
}

// New creates a thread with an empty stack.
func New(opts ...Option) *Thread {
	t := &Thread{
		id:    uuid.NewV4().String(),
		stack: vm.NewStack(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ID returns the thread id.
func (t *Thread) ID() string {
	return t.id
}

// Stack returns the operand stack of the thread.
func (t *Thread) Stack() *vm.Stack {
	return t.stack
}

// Executed returns the number of successfully executed instructions.
func (t *Thread) Executed() uint64 {
	return t.executed
}

// Exec executes the instruction at the head of code. Bytes after the
// instruction are ignored. On error the stack is unchanged.
func (t *Thread) Exec(code []byte) (vm.Delta, error) {
	start := time.Now()
	delta, err := vm.Execute(code, t.stack)
	metricsExecTime.UpdateSince(start)
	if err != nil {
		countError(err)
		logger.Debugf("thread %s: %v", t.id, err)
		return delta, errors.Wrapf(err, "thread %s", t.id)
	}

	t.executed++
	metricsExecOk.Inc(1)
	metricsBytesConsumed.Mark(int64(delta.InstBytesConsumed))
	metricsStackBytes.Update(int64(t.stack.Len()))

	if t.trace {
		logger.Infof("thread %s: %s consumed %d pushed %d stack %s", t.id,
			vm.Disasm(code[:delta.InstBytesConsumed]), delta.InstBytesConsumed, delta.DataBytesPushed, t.stack)
	} else {
		logger.Debugf("thread %s: consumed %d pushed %d", t.id, delta.InstBytesConsumed, delta.DataBytesPushed)
	}
	return delta, nil
}

func countError(err error) {
	switch {
	case errors.Is(err, vm.ErrStackUnderflow):
		metricsErrUnderflow.Inc(1)
	case errors.Is(err, vm.ErrInstructionTooShort):
		metricsErrTooShort.Inc(1)
	case errors.Is(err, vm.ErrUnknownOpCode):
		metricsErrUnknownOp.Inc(1)
	case errors.Is(err, vm.ErrArithmeticOverflow):
		metricsErrOverflow.Inc(1)
	default:
		metricsErrOther.Inc(1)
	}
}
