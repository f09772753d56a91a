// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !binseq_nodump

package binseq

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/binseq/lib/radix"
)

// StyleDump renders a multi-line hex-dump layout: an optional column
// header, per-line offsets, fixed-width digit cells, and a trailing
// character gutter. Render uses DefaultDumpOptions with the
// RenderOptions radix and color applied; Dump gives full control.
// Excluded by the binseq_nodump build tag.
const StyleDump Style = 2

func init() {
	registerRenderer(StyleDump, renderDumpStyle)
}

// DumpOptions configures the dump layout. The zero value renders
// single-column upper-hex lines of eight bytes with no header.
// Compact has no meaning here: dump columns require fixed-width
// digits.
type DumpOptions struct {
	// Data selects the radix for the byte digit cells.
	Data radix.Radix
	// Offsets selects the radix for the leading offset column: six
	// digits for hexadecimal, eight for decimal or octal. Binary
	// offsets are rejected.
	Offsets radix.Radix
	// ColumnWidth is the number of bytes per column: 8, 16, or 32.
	// Zero selects 8.
	ColumnWidth int
	// TwoColumns doubles the line to two columns split by Separator.
	TwoColumns bool
	// Header adds a line with the data radix prefix over the offset
	// column and each byte position's index, in the data radix, over
	// its cell.
	Header bool
	// Underline draws a rule of this rune under the header. Zero
	// draws none.
	Underline rune
	// Separator is the rune between the two columns. Zero selects
	// '│'.
	Separator rune
	// ControlPictures upgrades the gutter from the '.' placeholder to
	// Unicode control pictures for 0x00-0x20 and 0x7F, '⍽' for
	// no-break space, and the ISO 8859-1 characters for the printable
	// extended range.
	ControlPictures bool
	// Color decorates cells by byte class and the chrome in faint
	// styling.
	Color bool
}

// DefaultDumpOptions is the standard layout: upper-hex data and
// offsets, two columns of eight bytes split by '│', a header with a
// '─' rule.
func DefaultDumpOptions() DumpOptions {
	return DumpOptions{
		Data:        radix.UpperHex,
		Offsets:     radix.UpperHex,
		ColumnWidth: 8,
		TwoColumns:  true,
		Header:      true,
		Underline:   '─',
		Separator:   '│',
	}
}

// HexDump is DefaultDumpOptions under its conventional name.
func HexDump() DumpOptions {
	return DefaultDumpOptions()
}

// LowerHexDump is the standard layout with lowercase hexadecimal
// data and offsets.
func LowerHexDump() DumpOptions {
	options := DefaultDumpOptions()
	options.Data = radix.LowerHex
	options.Offsets = radix.LowerHex
	return options
}

// ClassicHexDump drops the header rule and splits the columns with
// '-', the look of traditional hex dump tools.
func ClassicHexDump() DumpOptions {
	options := DefaultDumpOptions()
	options.Underline = 0
	options.Separator = '-'
	return options
}

// ControlPictureDump is ClassicHexDump with the control-picture
// gutter enabled.
func ControlPictureDump() DumpOptions {
	options := ClassicHexDump()
	options.ControlPictures = true
	return options
}

// OctalDump is the standard layout with octal data and offsets.
func OctalDump() DumpOptions {
	options := DefaultDumpOptions()
	options.Data = radix.Octal
	options.Offsets = radix.Octal
	return options
}

// DecimalDump is the standard layout with decimal data and offsets.
func DecimalDump() DumpOptions {
	options := DefaultDumpOptions()
	options.Data = radix.Decimal
	options.Offsets = radix.Decimal
	return options
}

// BinaryDump renders binary digit cells while keeping hexadecimal
// offsets: binary offset digits would dwarf the data area.
func BinaryDump() DumpOptions {
	options := DefaultDumpOptions()
	options.Data = radix.Binary
	return options
}

func renderDumpStyle(b Binary, options RenderOptions) string {
	dump := DefaultDumpOptions()
	dump.Data = options.Radix
	if options.Radix != radix.Binary {
		dump.Offsets = options.Radix
	}
	dump.Color = options.Color
	return b.Dump(dump)
}

// dumpOffsetSpacing separates the offset column from the first digit
// cell. The colon is styled with the offset digits; the spaces are
// not.
const dumpOffsetSpacing = ":  "

// Dump renders the sequence in the dump layout. Lines are joined
// with '\n' and carry no trailing newline; an empty sequence renders
// only the header, or nothing when the header is off. Invalid
// options (binary offsets, a column width outside 8/16/32) are
// programmer errors and panic.
func (b Binary) Dump(options DumpOptions) string {
	if options.Offsets == radix.Binary {
		panic("binseq: dump offsets cannot use the binary radix")
	}
	if options.ColumnWidth == 0 {
		options.ColumnWidth = 8
	}
	switch options.ColumnWidth {
	case 8, 16, 32:
	default:
		panic(fmt.Sprintf("binseq: dump column width must be 8, 16, or 32, got %d", options.ColumnWidth))
	}
	if options.Separator == 0 {
		options.Separator = '│'
	}

	layout := dumpLayout{
		options:     options,
		paint:       newPainter(options.Color),
		lineWidth:   options.ColumnWidth,
		digitWidth:  options.Data.Width(),
		offsetWidth: dumpOffsetWidth(options.Offsets),
	}
	if options.TwoColumns {
		layout.lineWidth *= 2
	}

	var lines []string
	if options.Header {
		lines = append(lines, layout.header())
		if options.Underline != 0 {
			lines = append(lines, layout.underlineRow())
		}
	}
	for start := 0; start < len(b.data); start += layout.lineWidth {
		line := b.data[start:min(start+layout.lineWidth, len(b.data))]
		lines = append(lines, layout.line(line, start))
	}
	return strings.Join(lines, "\n")
}

type dumpLayout struct {
	options     DumpOptions
	paint       painter
	lineWidth   int
	digitWidth  int
	offsetWidth int
}

func dumpOffsetWidth(r radix.Radix) int {
	switch r {
	case radix.Decimal, radix.Octal:
		return 8
	default:
		return 6
	}
}

func (l dumpLayout) header() string {
	var out strings.Builder
	prefix := l.options.Data.Prefix()
	out.WriteString(l.paint.prefix(prefix))
	for pad := l.offsetWidth - len(prefix) + len(dumpOffsetSpacing); pad > 0; pad-- {
		out.WriteByte(' ')
	}
	for i := 0; i < l.lineWidth; i++ {
		index := l.options.Data.AppendUint(nil, uint64(i), l.digitWidth)
		out.WriteString(l.paint.offset(string(index)))
		out.WriteByte(' ')
		l.writeSeparator(&out, i)
	}
	return out.String()
}

func (l dumpLayout) underlineRow() string {
	var out strings.Builder
	for pad := l.offsetWidth + len(dumpOffsetSpacing); pad > 0; pad-- {
		out.WriteByte(' ')
	}
	run := strings.Repeat(string(l.options.Underline), (l.digitWidth+1)*l.options.ColumnWidth)
	out.WriteString(l.paint.separator(run))
	if l.options.TwoColumns {
		out.WriteString(l.paint.separator(string(l.options.Separator)))
		out.WriteByte(' ')
		out.WriteString(l.paint.separator(run))
	}
	return out.String()
}

func (l dumpLayout) line(data []byte, offset int) string {
	var out strings.Builder
	digits := l.options.Offsets.AppendUint(nil, uint64(offset), l.offsetWidth)
	out.WriteString(l.paint.offset(string(digits) + ":"))
	out.WriteString("  ")
	for i := 0; i < l.lineWidth; i++ {
		if i < len(data) {
			cell := l.options.Data.AppendByte(nil, data[i], false)
			out.WriteString(l.paint.value(data[i], string(cell)))
			out.WriteByte(' ')
		} else {
			// Pad the missing cell so the gutter stays aligned on a
			// short final line.
			for pad := l.digitWidth + 1; pad > 0; pad-- {
				out.WriteByte(' ')
			}
		}
		l.writeSeparator(&out, i)
	}
	out.WriteByte(' ')
	for _, value := range data {
		out.WriteString(l.paint.value(value, string(gutterRune(value, l.options.ControlPictures))))
	}
	return out.String()
}

func (l dumpLayout) writeSeparator(out *strings.Builder, index int) {
	if l.options.TwoColumns && (index+1)%l.options.ColumnWidth == 0 && (index+1) != l.lineWidth {
		out.WriteString(l.paint.separator(string(l.options.Separator)))
		out.WriteByte(' ')
	}
}

// gutterRune maps a byte to its gutter character. Printable 7-bit
// bytes always show as themselves; everything else shows as '.'
// unless control pictures are enabled, which substitutes the Unicode
// control glyphs and the printable ISO 8859-1 range.
func gutterRune(value byte, controlPictures bool) rune {
	if value >= 0x21 && value <= 0x7E {
		return rune(value)
	}
	if !controlPictures {
		if value == 0x20 {
			return ' '
		}
		return '.'
	}
	switch {
	case value <= 0x20:
		return '␀' + rune(value)
	case value == 0x7F:
		return '␡'
	case value == 0xA0:
		return '⍽'
	case value >= 0xA1 && value != 0xAD:
		return rune(value)
	}
	return '.'
}
