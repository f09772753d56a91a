// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binseq

import (
	"encoding/binary"
	"math"
	"net/netip"
	"unicode/utf8"
)

// Numeric constructors encode fixed-width values big-endian (network
// byte order), so the rendering of FromUint32(1) is the same on every
// platform. Signed integers contribute their two's complement bit
// pattern; floats contribute their IEEE 754 bits. Every constructor
// here returns an owned Binary and never fails.

// FromByte returns a one-byte owned Binary.
func FromByte(value byte) Binary {
	return Binary{data: []byte{value}, owned: true}
}

// FromUint16 returns the two big-endian bytes of value.
func FromUint16(value uint16) Binary {
	return Binary{data: binary.BigEndian.AppendUint16(nil, value), owned: true}
}

// FromUint32 returns the four big-endian bytes of value.
func FromUint32(value uint32) Binary {
	return Binary{data: binary.BigEndian.AppendUint32(nil, value), owned: true}
}

// FromUint64 returns the eight big-endian bytes of value.
func FromUint64(value uint64) Binary {
	return Binary{data: binary.BigEndian.AppendUint64(nil, value), owned: true}
}

// FromInt8 returns the one-byte two's complement pattern of value.
func FromInt8(value int8) Binary {
	return FromByte(byte(value))
}

// FromInt16 returns the two big-endian two's complement bytes of
// value.
func FromInt16(value int16) Binary {
	return FromUint16(uint16(value))
}

// FromInt32 returns the four big-endian two's complement bytes of
// value.
func FromInt32(value int32) Binary {
	return FromUint32(uint32(value))
}

// FromInt64 returns the eight big-endian two's complement bytes of
// value.
func FromInt64(value int64) Binary {
	return FromUint64(uint64(value))
}

// FromFloat32 returns the four big-endian bytes of the IEEE 754
// single-precision representation of value.
func FromFloat32(value float32) Binary {
	return FromUint32(math.Float32bits(value))
}

// FromFloat64 returns the eight big-endian bytes of the IEEE 754
// double-precision representation of value.
func FromFloat64(value float64) Binary {
	return FromUint64(math.Float64bits(value))
}

// FromBool returns a one-byte Binary: 1 for true, 0 for false.
func FromBool(value bool) Binary {
	if value {
		return FromByte(1)
	}
	return FromByte(0)
}

// FromRune returns the minimal UTF-8 encoding of value, one to four
// bytes. Invalid runes encode as U+FFFD, following utf8.AppendRune.
func FromRune(value rune) Binary {
	return Binary{data: utf8.AppendRune(nil, value), owned: true}
}

// FromAddr returns the address bytes of addr: four bytes for IPv4,
// sixteen for IPv6, empty for the zero Addr.
func FromAddr(addr netip.Addr) Binary {
	return Binary{data: addr.AsSlice(), owned: true}
}
