// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !binseq_nocolor

package binseq

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme is the palette for colored rendering, one color per byte
// class. The chrome around the values (delimiters, separators,
// offsets) is always faint and carries no theme color; radix
// prefixes are never styled.
type Theme struct {
	Control   lipgloss.Color // control bytes, rendered bold
	Printable lipgloss.Color // printable 7-bit bytes, rendered bold
	Extended  lipgloss.Color // printable ISO 8859-1 bytes
	Undefined lipgloss.Color // bytes with no character assignment
}

// DefaultTheme maps the byte classes onto the standard ANSI palette.
var DefaultTheme = Theme{
	Control:   lipgloss.Color("9"), // bright red
	Printable: lipgloss.Color("2"), // green
	Extended:  lipgloss.Color("2"), // green
	Undefined: lipgloss.Color("3"), // yellow
}

// colorRenderer emits ANSI sequences regardless of the ambient
// terminal: rendered strings are values handed back to the caller,
// not writes to a detected tty. NewRenderer records the profile
// option but re-detects on first use unless SetColorProfile has
// marked the profile explicit, so both calls are required.
var colorRenderer = newColorRenderer()

func newColorRenderer() *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI))
	renderer.SetColorProfile(termenv.ANSI)
	return renderer
}

// painter applies the palette to rendered fragments. The zero value
// paints nothing; newPainter(true) composes styles from
// DefaultTheme.
type painter struct {
	enabled   bool
	control   lipgloss.Style
	printable lipgloss.Style
	extended  lipgloss.Style
	undefined lipgloss.Style
	chrome    lipgloss.Style
}

func newPainter(enabled bool) painter {
	if !enabled {
		return painter{}
	}
	return painter{
		enabled:   true,
		control:   colorRenderer.NewStyle().Foreground(DefaultTheme.Control).Bold(true),
		printable: colorRenderer.NewStyle().Foreground(DefaultTheme.Printable).Bold(true),
		extended:  colorRenderer.NewStyle().Foreground(DefaultTheme.Extended),
		undefined: colorRenderer.NewStyle().Foreground(DefaultTheme.Undefined),
		chrome:    colorRenderer.NewStyle().Faint(true),
	}
}

// value styles a formatted byte by its class.
func (p painter) value(value byte, s string) string {
	if !p.enabled {
		return s
	}
	switch Classify(value) {
	case ClassControl:
		return p.control.Render(s)
	case ClassPrintable:
		return p.printable.Render(s)
	case ClassPrintableExtended:
		return p.extended.Render(s)
	}
	return p.undefined.Render(s)
}

// prefix passes the radix marker through unstyled: it reads as part
// of the literal, not the data.
func (p painter) prefix(s string) string {
	return s
}

func (p painter) delimiter(s string) string {
	return p.chromed(s)
}

func (p painter) separator(s string) string {
	return p.chromed(s)
}

func (p painter) offset(s string) string {
	return p.chromed(s)
}

func (p painter) chromed(s string) string {
	if !p.enabled {
		return s
	}
	return p.chrome.Render(s)
}
