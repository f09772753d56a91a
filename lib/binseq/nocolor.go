// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build binseq_nocolor

package binseq

// painter is inert in binseq_nocolor builds: every method returns
// its input unchanged and RenderOptions.Color is ignored. The build
// tag drops the lipgloss and termenv dependencies from the package.
type painter struct{}

func newPainter(bool) painter {
	return painter{}
}

func (painter) value(_ byte, s string) string {
	return s
}

func (painter) prefix(s string) string {
	return s
}

func (painter) delimiter(s string) string {
	return s
}

func (painter) separator(s string) string {
	return s
}

func (painter) offset(s string) string {
	return s
}
