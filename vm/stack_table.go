// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

// require fails with a StackUnderflowError unless n bytes can be popped.
func (st *Stack) require(n int) error {
	if st.Len() < n {
		return &StackUnderflowError{Attempted: n, Remaining: st.Len()}
	}
	return nil
}

// requireInstruction fails with an InstructionTooShortError unless code holds
// at least min bytes.
func requireInstruction(code []byte, raw OpCode, known bool, min int) error {
	if len(code) < min {
		return &InstructionTooShortError{
			RawOpCode:   raw,
			OpCodeKnown: known,
			Min:         min,
			Actual:      len(code),
		}
	}
	return nil
}
