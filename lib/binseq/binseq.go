// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binseq

import (
	"fmt"
)

// Binary is an immutable byte sequence with borrowed-or-owned
// storage. The zero value is a valid empty borrowed sequence.
//
// Equality, ordering, digests, and renderings depend only on the
// byte content; the storage tag exists so callers can reason about
// aliasing and copies, and is observable through IsBorrowed and
// IsOwned.
type Binary struct {
	data  []byte
	owned bool
}

// View returns a Binary that borrows data without copying. The view
// aliases the caller's storage, including array storage exposed as
// arr[:], so it must not outlive the slice and the slice must not be
// mutated while the view is in use. Use Own to sever the alias.
func View(data []byte) Binary {
	return Binary{data: data}
}

// Take returns a Binary that owns data. No copy is made: the caller
// hands the buffer off and must not use it afterward, the same
// contract as bytes.NewBuffer.
func Take(data []byte) Binary {
	return Binary{data: data, owned: true}
}

// FromString returns an owned Binary holding the exact UTF-8 bytes
// of s, byte for byte with no normalization. Go strings are
// immutable, so the one unavoidable string-to-slice copy is made
// here and the result owns it; there is no borrowing constructor for
// strings.
func FromString(s string) Binary {
	return Binary{data: []byte(s), owned: true}
}

// Len returns the number of bytes in the sequence.
func (b Binary) Len() int {
	return len(b.data)
}

// IsEmpty reports whether the sequence has no bytes. An empty Binary
// is a valid value, distinct from any non-empty one.
func (b Binary) IsEmpty() bool {
	return len(b.data) == 0
}

// IsBorrowed reports whether the sequence aliases storage it does
// not own.
func (b Binary) IsBorrowed() bool {
	return !b.owned
}

// IsOwned reports whether the sequence owns its storage.
func (b Binary) IsOwned() bool {
	return b.owned
}

// At returns the byte at index. Indexes outside [0, Len) fail with
// an error wrapping ErrIndexOutOfRange.
func (b Binary) At(index int) (byte, error) {
	if index < 0 || index >= len(b.data) {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(b.data))
	}
	return b.data[index], nil
}

// Slice returns the sub-sequence [start, end) as a borrowed view of
// the receiver's storage. An empty range is valid anywhere within
// bounds, including start == end == Len. Invalid ranges fail with an
// error wrapping ErrRangeOutOfBounds.
func (b Binary) Slice(start, end int) (Binary, error) {
	if start < 0 || end > len(b.data) || start > end {
		return Binary{}, fmt.Errorf("%w: range [%d:%d], length %d", ErrRangeOutOfBounds, start, end, len(b.data))
	}
	return Binary{data: b.data[start:end]}, nil
}

// Bytes returns the underlying bytes without copying. The result
// aliases the sequence's storage and must be treated as read-only;
// mutating it breaks the immutability contract for every value
// sharing that storage. Use ByteSlice for a mutable copy.
func (b Binary) Bytes() []byte {
	return b.data
}

// ByteSlice returns a fresh copy of the bytes that the caller may
// mutate freely.
func (b Binary) ByteSlice() []byte {
	copied := make([]byte, len(b.data))
	copy(copied, b.data)
	return copied
}

// Clone returns an owned deep copy of the sequence.
func (b Binary) Clone() Binary {
	return Binary{data: b.ByteSlice(), owned: true}
}

// Own returns a Binary that owns its storage: the receiver itself if
// already owned, otherwise an owned copy. This is the copy-on-write
// materialization point; it is idempotent and the result is safe to
// retain after the borrowed source goes away.
func (b Binary) Own() Binary {
	if b.owned {
		return b
	}
	return b.Clone()
}

// Append returns a new owned Binary holding the receiver's bytes
// followed by extra. The receiver is unchanged; Binary values never
// mutate in place.
func (b Binary) Append(extra ...byte) Binary {
	data := make([]byte, 0, len(b.data)+len(extra))
	data = append(data, b.data...)
	data = append(data, extra...)
	return Binary{data: data, owned: true}
}

// Concat returns a new owned Binary holding the bytes of every part
// in order. Concat with no arguments returns an empty owned Binary.
func Concat(parts ...Binary) Binary {
	total := 0
	for _, part := range parts {
		total += len(part.data)
	}
	data := make([]byte, 0, total)
	for _, part := range parts {
		data = append(data, part.data...)
	}
	return Binary{data: data, owned: true}
}
