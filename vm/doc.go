// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package vm implements a minimal byte code engine.

An instruction is a big-endian 16-bit opcode followed by a fixed number of
operand bytes. Execute decodes exactly one instruction, looks the opcode up in
a static table, performs the operation at the opcode's width and pushes the
result on an operand Stack. Operands are read from the instruction stream, not
popped from the stack. Every failure is returned as a typed error and leaves
the stack untouched.

	stack := vm.NewStack()
	delta, err := vm.Execute([]byte{0x00, 0x00, 0x15, 0x03}, stack)
	// delta == Delta{InstBytesConsumed: 4, DataBytesPushed: 1}
	// stack.Pop8() == 0x18
*/
package vm
