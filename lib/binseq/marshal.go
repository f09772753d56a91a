// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binseq

import (
	"encoding/base64"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/binseq/lib/codec"
)

// MarshalText encodes the content as standard padded base64.
// encoding/json routes through this, so a Binary field serializes as
// a base64 JSON string.
func (b Binary) MarshalText() ([]byte, error) {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(b.data)))
	base64.StdEncoding.Encode(out, b.data)
	return out, nil
}

// UnmarshalText decodes standard base64, padded or unpadded, into an
// owned sequence.
func (b *Binary) UnmarshalText(text []byte) error {
	encoding := base64.StdEncoding
	if len(text)%4 != 0 {
		encoding = base64.RawStdEncoding
	}
	decoded, err := encoding.AppendDecode(nil, text)
	if err != nil {
		return fmt.Errorf("binseq: decoding base64 text: %w", err)
	}
	*b = Binary{data: decoded, owned: true}
	return nil
}

// MarshalBinary returns a copy of the content, satisfying
// encoding.BinaryMarshaler for gob and similar byte-oriented codecs.
func (b Binary) MarshalBinary() ([]byte, error) {
	return b.ByteSlice(), nil
}

// UnmarshalBinary copies data into an owned sequence.
func (b *Binary) UnmarshalBinary(data []byte) error {
	*b = Binary{data: append([]byte(nil), data...), owned: true}
	return nil
}

// MarshalCBOR encodes the content as a CBOR byte string. The cbor
// package prefers this over MarshalText, so CBOR documents carry raw
// bytes while JSON carries base64 text.
func (b Binary) MarshalCBOR() ([]byte, error) {
	data := b.data
	if data == nil {
		// A nil slice would encode as CBOR null rather than the
		// empty byte string.
		data = []byte{}
	}
	return codec.Marshal(data)
}

// UnmarshalCBOR decodes a CBOR byte string into an owned sequence.
func (b *Binary) UnmarshalCBOR(data []byte) error {
	var decoded []byte
	if err := codec.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("binseq: decoding CBOR byte string: %w", err)
	}
	*b = Binary{data: decoded, owned: true}
	return nil
}

// MarshalYAML emits the content as a byte slice, which yaml renders
// as a !!binary node. Without this the TextMarshaler path would win
// and produce an untagged base64 string.
func (b Binary) MarshalYAML() (any, error) {
	return b.ByteSlice(), nil
}

// UnmarshalYAML accepts a !!binary node or a plain string. Plain
// strings contribute their UTF-8 bytes directly, so hand-written
// YAML can carry readable values while round-tripped documents stay
// exact.
func (b *Binary) UnmarshalYAML(value *yaml.Node) error {
	var decoded []byte
	if err := value.Decode(&decoded); err != nil {
		return fmt.Errorf("binseq: decoding YAML node: %w", err)
	}
	*b = Binary{data: decoded, owned: true}
	return nil
}
