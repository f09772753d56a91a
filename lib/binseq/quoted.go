// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !binseq_noquoted

package binseq

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/binseq/lib/radix"
)

// StyleQuoted renders an underscore-separated digit string in double
// quotes with a radix prefix: `0x"48_65"`. The compact form drops
// both the underscores and the digit padding, concatenating minimal
// digits: `0x"4865"`, and `0x"5"` for the single byte 0x05. Excluded
// by the binseq_noquoted build tag.
const StyleQuoted Style = 1

func init() {
	registerRenderer(StyleQuoted, renderQuoted)
}

func renderQuoted(b Binary, options RenderOptions) string {
	p := newPainter(options.Color)

	var out strings.Builder
	out.WriteString(p.prefix(options.Radix.Prefix()))
	out.WriteString(p.delimiter(`"`))
	for i, value := range b.data {
		if i > 0 && !options.Compact {
			out.WriteString(p.separator("_"))
		}
		out.WriteString(p.value(value, options.Radix.FormatByte(value, options.Compact)))
	}
	out.WriteString(p.delimiter(`"`))
	return out.String()
}

// ParseQuoted parses a quoted rendering back into an owned Binary.
// Input containing underscores is split on them, and each piece may
// use any digit count the radix accepts. Input without underscores
// is consumed in fixed chunks of the radix width, so a compact
// rendering round-trips only when every byte needed the full width;
// a trailing short chunk fails with ErrInvalidRepresentation.
// Unlike ParseArray, whitespace inside the quotes is not ignored.
func ParseQuoted(s string) (Binary, error) {
	r, rest, err := radix.CutPrefix(s)
	if err != nil {
		return Binary{}, err
	}
	inner, ok := cutEnclosing(rest, '"', '"')
	if !ok {
		return Binary{}, fmt.Errorf("%w: got %q", ErrInvalidQuotes, s)
	}
	if inner == "" {
		return Binary{data: []byte{}, owned: true}, nil
	}

	if strings.ContainsRune(inner, '_') {
		elements := strings.Split(inner, "_")
		data := make([]byte, 0, len(elements))
		for i, element := range elements {
			value, err := r.ParseByte(element)
			if err != nil {
				return Binary{}, fmt.Errorf("binseq: quoted element %d: %w", i, err)
			}
			data = append(data, value)
		}
		return Binary{data: data, owned: true}, nil
	}

	width := r.Width()
	data := make([]byte, 0, len(inner)/width)
	for offset := 0; offset < len(inner); offset += width {
		if len(inner)-offset < width {
			return Binary{}, fmt.Errorf("%w: %d digits do not divide into %d-digit %s bytes",
				ErrInvalidRepresentation, len(inner), width, r)
		}
		value, err := r.ParseByte(inner[offset : offset+width])
		if err != nil {
			return Binary{}, fmt.Errorf("binseq: quoted byte at digit %d: %w", offset, err)
		}
		data = append(data, value)
	}
	return Binary{data: data, owned: true}, nil
}
