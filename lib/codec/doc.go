// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the module's standard CBOR encoding
// configuration.
//
// The module uses two serialization formats with a clear boundary:
//
//   - JSON and YAML for human-facing interfaces: configuration files,
//     CLI output, documents people read and edit. Byte sequences
//     travel as base64 text there.
//   - CBOR for machine-facing storage and wire use: byte sequences
//     travel as raw byte strings with no base64 expansion, and the
//     encoding is deterministic so documents can be compared and
//     digested byte for byte.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every package encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes.
//
// For buffer-oriented operations (files, tokens):
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (sockets, pipes):
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
//
// For CBOR sequences (RFC 8742), where self-delimiting items sit back
// to back in one buffer with no outer framing:
//
//	buf, err = codec.Append(buf, item)
//	rest, err := codec.UnmarshalFirst(buf, &item)
//
// # Struct Tag Rules
//
// The struct tag on a type documents its serialization format:
//
//   - `cbor` tag: this type is ONLY ever serialized as CBOR. It will
//     never be marshaled to JSON or appear in human-edited files.
//   - `json` tag: this type may be serialized as BOTH JSON and CBOR.
//     fxamacker/cbor v2 reads `json` tags as fallback when `cbor`
//     tags are absent, so a single `json` tag controls field naming
//     and omitempty for both formats.
//
// Never use both `cbor` and `json` tags on the same field. The tag
// choice documents the contract — doubling up is noise that obscures
// whether a type participates in JSON serialization.
package codec
