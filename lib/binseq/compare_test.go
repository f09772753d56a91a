// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binseq_test

import (
	"testing"

	"github.com/bureau-foundation/binseq/lib/binseq"
)

func TestEqualIgnoresStorageTag(t *testing.T) {
	data := []byte("Hello")
	view := binseq.View(data)
	owned := view.Clone()
	if !view.Equal(owned) {
		t.Error("a view and its owned clone are not equal")
	}
	if !owned.Equal(view) {
		t.Error("equality is not symmetric across storage tags")
	}
	if view.Equal(binseq.FromString("Hellp")) {
		t.Error("sequences with different content compare equal")
	}
}

func TestEqualEmpty(t *testing.T) {
	var zero binseq.Binary
	if !zero.Equal(binseq.FromString("")) {
		t.Error("zero value and empty owned sequence are not equal")
	}
	if zero.Equal(binseq.FromByte(0)) {
		t.Error("empty sequence equals a one-byte sequence")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b binseq.Binary
		want int
	}{
		{name: "equal", a: binseq.FromString("abc"), b: binseq.FromString("abc"), want: 0},
		{name: "less", a: binseq.FromString("abc"), b: binseq.FromString("abd"), want: -1},
		{name: "greater", a: binseq.FromString("abd"), b: binseq.FromString("abc"), want: 1},
		{name: "prefix-sorts-first", a: binseq.Take([]byte{0x01}), b: binseq.Take([]byte{0x01, 0x00}), want: -1},
		{name: "unsigned-bytes", a: binseq.Take([]byte{0x01, 0x00}), b: binseq.Take([]byte{0x02}), want: -1},
		{name: "empty-first", a: binseq.Binary{}, b: binseq.FromByte(0), want: -1},
		{name: "both-empty", a: binseq.Binary{}, b: binseq.FromString(""), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("reversed Compare = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestDigest(t *testing.T) {
	content := []byte("Hello, World!")
	view := binseq.View(content)
	owned := view.Clone()
	if view.Digest() != owned.Digest() {
		t.Error("equal content produced different digests across storage tags")
	}
	if view.Digest() == binseq.FromString("Hello, World?").Digest() {
		t.Error("different content produced the same digest")
	}
}

func TestDigestAsMapKey(t *testing.T) {
	seen := map[[32]byte]string{}
	seen[binseq.FromString("a").Digest()] = "a"
	seen[binseq.FromString("b").Digest()] = "b"
	seen[binseq.View([]byte("a")).Digest()] = "a-again"

	if len(seen) != 2 {
		t.Fatalf("map has %d entries, want 2", len(seen))
	}
	if seen[binseq.FromString("a").Digest()] != "a-again" {
		t.Error("digest key did not collapse equal content onto one entry")
	}
}
