// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import (
	"testing"

	"github.com/facebookgo/ensure"
	"github.com/pkg/errors"
)

func TestDecodeInstruction(t *testing.T) {
	want := []byte{0x00, 0x00, 0x15, 0x03}

	for _, text := range []string{"00001503", "0x00001503", " 0000 1503 ", "00_00_15_03"} {
		code, err := DecodeInstruction(text, EncodingHex)
		ensure.Nil(t, err)
		ensure.DeepEqual(t, code, want)
	}

	code, err := DecodeInstruction(Base58([]byte{0x01, 0x15, 0x03}), EncodingBase58)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, code, []byte{0x01, 0x15, 0x03})
}

func TestDecodeInstructionErrors(t *testing.T) {
	_, err := DecodeInstruction("  ", EncodingHex)
	ensure.DeepEqual(t, err, ErrEmptyInput)

	_, err = DecodeInstruction("0x", EncodingHex)
	ensure.DeepEqual(t, err, ErrEmptyInput)

	_, err = DecodeInstruction("abc", EncodingHex)
	ensure.NotNil(t, err)

	_, err = DecodeInstruction("0OIl", EncodingBase58)
	ensure.DeepEqual(t, errors.Cause(err), ErrInvalidBase58)

	_, err = DecodeInstruction("00", "base64")
	ensure.DeepEqual(t, errors.Cause(err), ErrUnknownEncoding)
}
