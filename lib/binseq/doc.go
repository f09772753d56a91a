// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binseq provides Binary, an immutable byte sequence that
// remembers whether it borrows its storage from the caller or owns a
// private buffer.
//
// A Binary built with View aliases the caller's slice without
// copying; one built with Take assumes ownership of a buffer the
// caller hands off; FromString and the numeric constructors allocate
// owned storage. The borrowed-or-owned tag never participates in
// equality, ordering, or hashing: two Binary values with the same
// bytes are the same value regardless of where the bytes live. Own
// converts a borrowed view into an independent owned copy; Clone
// always copies.
//
// A borrowed Binary must not outlive the slice it aliases, and the
// caller must not mutate that slice while the view is in use. The
// package performs no runtime checks on this contract; it is the
// zero-overhead counterpart of the zero-copy construction. All
// operations on a constructed Binary are read-only, so distinct
// values are safe for concurrent use, and a single value is safe to
// share between goroutines as long as nobody violates the aliasing
// contract.
//
// Rendering is driven by RenderOptions: a style (array, quoted, dump,
// or base64), a radix (binary, octal, decimal, or hexadecimal in
// either letter case), a compact flag that drops padding, and a color
// flag that decorates output with ANSI styling by byte class. The
// quoted, dump, base64, and color features compile out under the
// build tags binseq_noquoted, binseq_nodump, binseq_nobase64, and
// binseq_nocolor; an excluded style's Style constant does not exist
// in such a build, so code referring to it fails to compile rather
// than failing at run time.
//
// The package also parses the array, quoted, and base64 forms back
// into byte sequences, and implements the text, binary, CBOR, and
// YAML marshaler interfaces so Binary fields embed directly in
// structs serialized with encoding/json, encoding/gob, lib/codec,
// or yaml.
package binseq
