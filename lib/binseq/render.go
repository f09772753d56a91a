// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binseq

import (
	"fmt"

	"github.com/bureau-foundation/binseq/lib/radix"
)

// Style selects a rendering layout. The style constants live in the
// files that implement them, so a build that excludes a style (via
// the binseq_noquoted, binseq_nodump, or binseq_nobase64 tags) has no
// constant for it and references fail at compile time. StyleArray is
// always available and is the zero value.
type Style int

// styleCount spans every style this package can compile in. Excluded
// styles leave nil slots in the renderer table.
const styleCount = 4

// RenderOptions configures Render. The zero value renders a padded,
// uncolored, upper-hex array.
type RenderOptions struct {
	// Style selects the layout: array, quoted, dump, or base64.
	Style Style
	// Radix selects the digit base for array, quoted, and dump
	// output. Base64 has no digits and ignores it.
	Radix radix.Radix
	// Compact drops digit padding and separator spacing. The quoted
	// style concatenates minimal-width digits; base64 drops padding
	// characters. Dump output is column-aligned and ignores it.
	Compact bool
	// Color decorates output with ANSI styling by byte class. Builds
	// tagged binseq_nocolor ignore it. Base64 output has no per-byte
	// tokens and takes no color.
	Color bool
}

var renderers [styleCount]func(Binary, RenderOptions) string

// registerRenderer installs the render function for a style. Each
// style file calls this from init; double registration is a bug in
// the build tag partitioning.
func registerRenderer(style Style, render func(Binary, RenderOptions) string) {
	if renderers[style] != nil {
		panic(fmt.Sprintf("binseq: renderer for style %d registered twice", int(style)))
	}
	renderers[style] = render
}

// Render returns the sequence formatted per options. Rendering never
// fails for any byte content; a Style value forged outside the
// declared constants panics, as does a style excluded from this
// build by tags.
func (b Binary) Render(options RenderOptions) string {
	style := int(options.Style)
	if style < 0 || style >= styleCount || renderers[style] == nil {
		panic(fmt.Sprintf("binseq: style %d is not compiled into this build", style))
	}
	return renderers[style](b, options)
}
