// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"
	"strings"

	base58 "github.com/jbenet/go-base58"
	"github.com/pkg/errors"
)

// Supported instruction text encodings
const (
	EncodingHex    = "hex"
	EncodingBase58 = "base58"
)

// ValidEncoding reports whether enc is a supported encoding name.
func ValidEncoding(enc string) bool {
	return enc == EncodingHex || enc == EncodingBase58
}

// Hex encodes []byte to Hex.
func Hex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes string from Hex. An optional 0x prefix is accepted, and
// blanks and underscores between digits are ignored.
func FromHex(data string) ([]byte, error) {
	data = strings.TrimPrefix(strings.TrimPrefix(data, "0x"), "0X")
	data = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '_':
			return -1
		}
		return r
	}, data)
	return hex.DecodeString(data)
}

// Base58 return base58 encodes string
func Base58(data []byte) string {
	return base58.Encode(data)
}

// FromBase58 decodes a base58 string.
func FromBase58(data string) ([]byte, error) {
	b := base58.Decode(data)
	if len(b) == 0 {
		return nil, ErrInvalidBase58
	}
	return b, nil
}

// DecodeInstruction decodes instruction bytes written in the given encoding.
func DecodeInstruction(text, encoding string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	var (
		code []byte
		err  error
	)
	switch encoding {
	case EncodingHex, "":
		code, err = FromHex(text)
	case EncodingBase58:
		code, err = FromBase58(text)
	default:
		return nil, errors.Wrap(ErrUnknownEncoding, encoding)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s input %q", encoding, text)
	}
	if len(code) == 0 {
		return nil, ErrEmptyInput
	}
	return code, nil
}
