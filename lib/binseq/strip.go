// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binseq

import "github.com/charmbracelet/x/ansi"

// StripColor removes ANSI escape sequences from s, reducing colored
// output to its plain form. For every style and option set, stripping
// a colored rendering yields exactly the uncolored rendering.
func StripColor(s string) string {
	return ansi.Strip(s)
}
