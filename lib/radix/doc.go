// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package radix formats and parses individual bytes in the five numeral
// systems used by binary renderings: binary, octal, decimal, and
// lowercase or uppercase hexadecimal.
//
// Each Radix carries a prefix ("0b", "0o", "0d", "0x", "0X"), a fixed
// digit width that fits any byte value (8, 3, 3, 2, 2), and the digit
// alphabet for its base. Formatting is available padded (always exactly
// the fixed width, zero-filled) or compact (minimal digits, no leading
// zeros). Parsing accepts what formatting produces.
//
// The zero value is UpperHex, which is the default radix wherever a
// caller does not choose one.
package radix
