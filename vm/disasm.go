// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

import (
	"fmt"
	"strings"
)

// parse decodes the whole stream and returns the instructions. The returned
// result will contain the instructions up to the failure point, with the last
// element being the error.
func parse(code []byte) []interface{} {
	var elements []interface{}

	for pc := 0; pc < len(code); {
		inst, err := Decode(code[pc:])
		if err != nil {
			elements = append(elements, err)
			return elements
		}
		elements = append(elements, inst)
		pc += inst.Len()
	}

	return elements
}

func (inst *Instruction) String() string {
	w := inst.Info.Width * 2
	return fmt.Sprintf("%s 0x%0*x 0x%0*x", inst.Info.Name, w, inst.Operands[0], w, inst.Operands[1])
}

// Disasm disassembles code in human readable format without executing it. If
// the stream fails to decode, the returned string will contain the listing up
// to the failure point, appended by the string '[Error: error info]'
func Disasm(code []byte) string {
	var str []string

	for _, e := range parse(code) {
		switch v := e.(type) {
		case *Instruction:
			str = append(str, v.String())
		case error:
			str = append(str, "[Error: "+v.Error()+"]")
		}
	}

	return strings.Join(str, "; ")
}
