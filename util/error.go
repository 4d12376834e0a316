// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import "errors"

// error
var (
	ErrEmptyInput      = errors.New("empty input")
	ErrInvalidBase58   = errors.New("invalid base58 string")
	ErrUnknownEncoding = errors.New("unknown encoding")
)
