// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

import "encoding/binary"

// Delta reports the effect of one executed instruction.
type Delta struct {
	// InstBytesConsumed is the number of instruction bytes consumed.
	InstBytesConsumed int
	// DataBytesPushed is the number of bytes pushed on the stack.
	DataBytesPushed int
}

// Instruction is a decoded instruction.
type Instruction struct {
	Info     *OpInfo
	Operands [2]uint32
}

// Len returns the encoded size of the instruction.
func (inst *Instruction) Len() int {
	return inst.Info.MinLength
}

// Decode decodes the instruction at the head of code. Bytes past the
// instruction are not inspected.
func Decode(code []byte) (*Instruction, error) {
	if err := requireInstruction(code, 0, false, OpCodeLength); err != nil {
		return nil, err
	}
	raw := OpCode(binary.BigEndian.Uint16(code))
	info, ok := LookupOpCode(raw)
	if !ok {
		return nil, &UnknownOpCodeError{RawOpCode: raw}
	}
	if err := requireInstruction(code, raw, true, info.MinLength); err != nil {
		return nil, err
	}

	inst := &Instruction{Info: info}
	pc := OpCodeLength
	for i := range inst.Operands {
		inst.Operands[i] = readUint(code[pc:pc+info.Width])
		pc += info.Width
	}
	return inst, nil
}

// Execute executes the single instruction at the head of code against stack.
// Trailing bytes belonging to later instructions are ignored; the caller
// re-invokes Execute on code[delta.InstBytesConsumed:]. On error the stack is
// left unchanged.
func Execute(code []byte, stack *Stack) (Delta, error) {
	inst, err := Decode(code)
	if err != nil {
		return Delta{}, err
	}
	info := inst.Info
	result, err := info.exec(info, inst.Operands[0], inst.Operands[1])
	if err != nil {
		return Delta{}, err
	}

	before := stack.Len()
	stack.push(result, info.Width)
	return Delta{
		InstBytesConsumed: info.MinLength,
		DataBytesPushed:   stack.Len() - before,
	}, nil
}

// readUint reads a big-endian unsigned value of 1, 2 or 4 bytes.
func readUint(b []byte) uint32 {
	var v uint32
	for _, c := range b {
		v = v<<8 | uint32(c)
	}
	return v
}
