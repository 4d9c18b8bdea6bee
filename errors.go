// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/zflate

package zflate

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrUnsupportedCompressionMethod = errors.New("unsupported compression method")
	ErrUnsupportedValue             = errors.New("unsupported value")
	ErrOutOfData                    = errors.New("not enough data in compressed stream")
	ErrValueMismatch                = errors.New("stored block size mismatch")
	ErrInvalidCodeLengths           = errors.New("invalid huffman code lengths")
	ErrValueOutOfBounds             = errors.New("value out of bounds")
	ErrMissingEndOfBlockCode        = errors.New("end-of-block code missing in literal code lengths")
	ErrInvalidSymbol                = errors.New("invalid symbol")
	ErrCorruptedCode                = errors.New("corrupted huffman code")
	ErrInsufficientSpace            = errors.New("output buffer too small")
	ErrChecksumMismatch             = errors.New("adler-32 checksum mismatch")
	ErrNegativeOutLen               = errors.New("output length must be non-negative")
)
