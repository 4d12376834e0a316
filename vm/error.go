// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

import (
	"errors"
	"fmt"
)

// error kinds
var (
	// stack.go
	ErrStackUnderflow = errors.New("Stack underflow")

	// execute.go
	ErrInstructionTooShort = errors.New("Instruction too short")
	ErrUnknownOpCode       = errors.New("Unknown opcode")
	ErrArithmeticOverflow  = errors.New("Arithmetic overflow")
)

// StackUnderflowError is returned when popping more bytes than the stack holds.
type StackUnderflowError struct {
	Attempted int
	Remaining int
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("Attempting to pop %d byte(s) off of stack when only %d byte(s) are remaining",
		e.Attempted, e.Remaining)
}

// Unwrap returns ErrStackUnderflow.
func (e *StackUnderflowError) Unwrap() error { return ErrStackUnderflow }

// InstructionTooShortError is returned when the instruction stream ends before
// the opcode field, or before all operands of the resolved opcode.
// OpCodeKnown is false when the opcode field itself could not be read.
type InstructionTooShortError struct {
	RawOpCode   OpCode
	OpCodeKnown bool
	Min         int
	Actual      int
}

func (e *InstructionTooShortError) Error() string {
	if !e.OpCodeKnown {
		return fmt.Sprintf("Expected minimum bytes: %d. Actual: %d", e.Min, e.Actual)
	}
	return fmt.Sprintf("Opcode %#04x expected minimum bytes: %d. Actual: %d",
		uint16(e.RawOpCode), e.Min, e.Actual)
}

// Unwrap returns ErrInstructionTooShort.
func (e *InstructionTooShortError) Unwrap() error { return ErrInstructionTooShort }

// UnknownOpCodeError is returned for identifiers missing from the opcode table.
type UnknownOpCodeError struct {
	RawOpCode OpCode
}

func (e *UnknownOpCodeError) Error() string {
	return fmt.Sprintf("Unknown opcode %#04x", uint16(e.RawOpCode))
}

// Unwrap returns ErrUnknownOpCode.
func (e *UnknownOpCodeError) Unwrap() error { return ErrUnknownOpCode }

// ArithmeticOverflowError is returned when a result does not fit in the
// operand width of the opcode. Addends are widened to uint32.
type ArithmeticOverflowError struct {
	OpCode  OpCode
	Addend1 uint32
	Addend2 uint32
}

func (e *ArithmeticOverflowError) Error() string {
	return fmt.Sprintf("%s overflow: %d + %d", e.OpCode, e.Addend1, e.Addend2)
}

// Unwrap returns ErrArithmeticOverflow.
func (e *ArithmeticOverflowError) Unwrap() error { return ErrArithmeticOverflow }
