// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

import (
	"encoding/hex"
	"fmt"
	"io"
)

// Stack is the operand stack of an execution context. It is a plain byte
// sequence: multi-byte values are pushed one byte at a time, most significant
// byte first, so the least significant byte ends on top. A stack must not be
// shared between goroutines.
type Stack struct {
	data []byte
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{data: make([]byte, 0, 64)}
}

// Len returns the number of bytes on the stack.
func (st *Stack) Len() int {
	return len(st.data)
}

// Bytes returns a copy of the stack contents, bottom first.
func (st *Stack) Bytes() []byte {
	b := make([]byte, len(st.data))
	copy(b, st.data)
	return b
}

// Push8 pushes one byte.
func (st *Stack) Push8(b uint8) {
	st.data = append(st.data, b)
}

// Pop8 pops the top byte.
func (st *Stack) Pop8() (uint8, error) {
	if err := st.require(1); err != nil {
		return 0, err
	}
	return st.pop(), nil
}

// Push16 pushes v as two bytes, high byte first.
func (st *Stack) Push16(v uint16) {
	st.Push8(uint8(v >> 8))
	st.Push8(uint8(v))
}

// Pop16 pops two bytes pushed by Push16. Nothing is popped if fewer than two
// bytes are present.
func (st *Stack) Pop16() (uint16, error) {
	if err := st.require(2); err != nil {
		return 0, err
	}
	lo := st.pop()
	hi := st.pop()
	return uint16(hi)<<8 | uint16(lo), nil
}

// Push32 pushes v as four bytes, most significant byte first.
func (st *Stack) Push32(v uint32) {
	for shift := 24; shift >= 0; shift -= 8 {
		st.Push8(uint8(v >> uint(shift)))
	}
}

// Pop32 pops four bytes pushed by Push32. Nothing is popped if fewer than
// four bytes are present.
func (st *Stack) Pop32() (uint32, error) {
	if err := st.require(4); err != nil {
		return 0, err
	}
	var v uint32
	for shift := 0; shift < 32; shift += 8 {
		v |= uint32(st.pop()) << uint(shift)
	}
	return v, nil
}

// push pushes the low width bytes of v, most significant byte first.
func (st *Stack) push(v uint32, width int) {
	switch width {
	case 1:
		st.Push8(uint8(v))
	case 2:
		st.Push16(uint16(v))
	case 4:
		st.Push32(v)
	}
}

func (st *Stack) pop() (b uint8) {
	b = st.data[len(st.data)-1]
	st.data = st.data[:len(st.data)-1]
	return
}

// Print dumps the content of the stack, top first.
func (st *Stack) Print(w io.Writer) {
	fmt.Fprintln(w, "### stack ###")
	if len(st.data) > 0 {
		for i := len(st.data) - 1; i >= 0; i-- {
			fmt.Fprintf(w, "%-3d  0x%02x\n", i, st.data[i])
		}
	} else {
		fmt.Fprintln(w, "-- empty --")
	}
	fmt.Fprintln(w, "#############")
}

func (st *Stack) String() string {
	return hex.EncodeToString(st.data)
}
