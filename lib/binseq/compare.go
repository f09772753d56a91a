// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binseq

import (
	"bytes"

	"github.com/zeebo/blake3"
)

// Equal reports whether b and other hold the same bytes. The storage
// tag is ignored: a borrowed view and an owned copy of the same
// content are equal.
func (b Binary) Equal(other Binary) bool {
	return bytes.Equal(b.data, other.data)
}

// Compare orders b against other lexicographically, comparing bytes
// as unsigned values. It returns -1, 0, or +1. When one sequence is
// a prefix of the other, the shorter sequence sorts first, so
// [0x01] < [0x01, 0x00] < [0x02]. The ordering is total and
// consistent with Equal.
func (b Binary) Compare(other Binary) int {
	return bytes.Compare(b.data, other.data)
}

// Digest returns the 32-byte BLAKE3 digest of the content. It is a
// pure function of the bytes, so equal sequences produce equal
// digests regardless of storage tag. The returned array is
// comparable and is the intended map and set key form for Binary,
// which itself holds a slice and cannot key a Go map.
func (b Binary) Digest() [32]byte {
	return blake3.Sum256(b.data)
}
