// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

import (
	"fmt"
	"sort"
)

// OpCode is the 16-bit identifier at the head of every instruction.
type OpCode uint16

// OpCodeLength is the size in bytes of the opcode field.
const OpCodeLength = 2

// add family, one opcode per operand width
const (
	OPADD8  OpCode = 0x0000 // 0
	OPADD16 OpCode = 0x0001 // 1
	OPADD32 OpCode = 0x0002 // 2
)

// operation computes the result of a binary instruction at the width of op.
type operation func(op *OpInfo, a, b uint32) (uint32, error)

// OpInfo describes an entry of the opcode table.
type OpInfo struct {
	Code OpCode
	Name string
	// Width is the size in bytes of each operand and of the result.
	Width int
	// MinLength is the opcode field plus all operand bytes.
	MinLength int

	exec operation
}

func (op *OpInfo) max() uint64 {
	return 1<<(8*uint(op.Width)) - 1
}

// opTable is populated once in init and never modified afterwards, so it can
// be read from any number of goroutines.
var opTable = map[OpCode]*OpInfo{}

func init() {
	for _, info := range []struct {
		code  OpCode
		name  string
		width int
		exec  operation
	}{
		{OPADD8, "OP_ADD8", 1, opAdd},
		{OPADD16, "OP_ADD16", 2, opAdd},
		{OPADD32, "OP_ADD32", 4, opAdd},
	} {
		opTable[info.code] = &OpInfo{
			Code:      info.code,
			Name:      info.name,
			Width:     info.width,
			MinLength: OpCodeLength + 2*info.width,
			exec:      info.exec,
		}
	}
}

// unsigned addition, overflow is an error
func opAdd(op *OpInfo, a, b uint32) (uint32, error) {
	sum := uint64(a) + uint64(b)
	if sum > op.max() {
		return 0, &ArithmeticOverflowError{OpCode: op.Code, Addend1: a, Addend2: b}
	}
	return uint32(sum), nil
}

// LookupOpCode returns the table entry of code.
func LookupOpCode(code OpCode) (*OpInfo, bool) {
	info, ok := opTable[code]
	return info, ok
}

// OpCodes returns all table entries ordered by identifier.
func OpCodes() []OpInfo {
	infos := make([]OpInfo, 0, len(opTable))
	for _, info := range opTable {
		infos = append(infos, *info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Code < infos[j].Code })
	return infos
}

func (code OpCode) String() string {
	if info, ok := opTable[code]; ok {
		return info.Name
	}
	return fmt.Sprintf("OP_UNKNOWN(%#04x)", uint16(code))
}
