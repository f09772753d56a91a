// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !binseq_nobase64

package binseq

import (
	"encoding/base64"
	"fmt"
)

// StyleBase64 renders the standard RFC 4648 base64 encoding of the
// sequence, padded with '=' unless Compact is set. It has no radix,
// no per-byte tokens, and takes no color. Excluded by the
// binseq_nobase64 build tag.
const StyleBase64 Style = 3

func init() {
	registerRenderer(StyleBase64, renderBase64)
}

func renderBase64(b Binary, options RenderOptions) string {
	if options.Compact {
		return base64.RawStdEncoding.EncodeToString(b.data)
	}
	return base64.StdEncoding.EncodeToString(b.data)
}

// Base64 returns the padded standard base64 encoding of the
// sequence.
func (b Binary) Base64() string {
	return base64.StdEncoding.EncodeToString(b.data)
}

// Base64Raw returns the standard base64 encoding without padding
// characters, the compact form.
func (b Binary) Base64Raw() string {
	return base64.RawStdEncoding.EncodeToString(b.data)
}

// ParseBase64 decodes a standard base64 string, padded or unpadded,
// into an owned Binary.
func ParseBase64(s string) (Binary, error) {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		unpadded, rawErr := base64.RawStdEncoding.DecodeString(s)
		if rawErr != nil {
			return Binary{}, fmt.Errorf("binseq: parsing base64: %w", err)
		}
		decoded = unpadded
	}
	return Binary{data: decoded, owned: true}, nil
}
