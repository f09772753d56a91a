// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binseq_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/binseq/lib/binseq"
	"github.com/bureau-foundation/binseq/lib/codec"
)

func TestJSONRoundTrip(t *testing.T) {
	type message struct {
		Name    string        `json:"name"`
		Payload binseq.Binary `json:"payload"`
	}
	value := message{Name: "greeting", Payload: binseq.FromString("Hello")}

	encoded, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"name":"greeting","payload":"SGVsbG8="}`; string(encoded) != want {
		t.Errorf("Marshal = %s, want %s", encoded, want)
	}

	var got message
	if err := json.Unmarshal(encoded, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Payload.Equal(value.Payload) {
		t.Errorf("decoded payload = %v, want %v", got.Payload, value.Payload)
	}
	if !got.Payload.IsOwned() {
		t.Error("decoded payload is not owned")
	}
}

func TestJSONEmpty(t *testing.T) {
	encoded, err := json.Marshal(binseq.Binary{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(encoded) != `""` {
		t.Errorf("Marshal(empty) = %s, want \"\"", encoded)
	}
	var got binseq.Binary
	if err := json.Unmarshal(encoded, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.IsEmpty() {
		t.Errorf("decoded empty sequence has %d bytes", got.Len())
	}
}

func TestTextUnpadded(t *testing.T) {
	var got binseq.Binary
	if err := got.UnmarshalText([]byte("SGVsbG8")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if string(got.Bytes()) != "Hello" {
		t.Errorf("decoded = %q, want %q", got.Bytes(), "Hello")
	}
}

func TestTextInvalid(t *testing.T) {
	var got binseq.Binary
	if err := got.UnmarshalText([]byte("not base64!!")); err == nil {
		t.Error("UnmarshalText accepted invalid base64")
	}
}

func TestBinaryMarshalerDetaches(t *testing.T) {
	value := binseq.FromString("abc")
	encoded, err := value.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	encoded[0] = 'X'
	if got, _ := value.At(0); got != 'a' {
		t.Error("mutating MarshalBinary output leaked into the sequence")
	}

	var got binseq.Binary
	source := []byte("xyz")
	if err := got.UnmarshalBinary(source); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	source[0] = 'Q'
	if string(got.Bytes()) != "xyz" {
		t.Errorf("decoded = %q after source mutation, want %q", got.Bytes(), "xyz")
	}
}

func TestCBORByteString(t *testing.T) {
	encoded, err := codec.Marshal(binseq.FromString("Hello"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// Major type 2 (byte string), length 5, then the raw bytes. JSON
	// carries base64 text; CBOR carries the bytes themselves.
	want := []byte{0x45, 0x48, 0x65, 0x6C, 0x6C, 0x6F}
	if !bytes.Equal(encoded, want) {
		t.Errorf("Marshal = % X, want % X", encoded, want)
	}

	var got binseq.Binary
	if err := codec.Unmarshal(encoded, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if string(got.Bytes()) != "Hello" {
		t.Errorf("decoded = %q, want %q", got.Bytes(), "Hello")
	}
	if !got.IsOwned() {
		t.Error("decoded sequence is not owned")
	}
}

func TestCBOREmptyByteString(t *testing.T) {
	encoded, err := codec.Marshal(binseq.Binary{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(encoded, []byte{0x40}) {
		t.Errorf("Marshal(empty) = % X, want 40 (empty byte string, not null)", encoded)
	}
}

func TestCBORDeterministic(t *testing.T) {
	first := map[string]binseq.Binary{
		"alpha": binseq.FromString("one"),
		"beta":  binseq.FromString("two"),
	}
	second := map[string]binseq.Binary{
		"beta":  binseq.View([]byte("two")),
		"alpha": binseq.View([]byte("one")),
	}

	encodedFirst, err := codec.Marshal(first)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	encodedSecond, err := codec.Marshal(second)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(encodedFirst, encodedSecond) {
		t.Errorf("equal maps encoded differently:\n% X\n% X", encodedFirst, encodedSecond)
	}
}

func TestCBORStructRoundTrip(t *testing.T) {
	type record struct {
		Name    string        `cbor:"name"`
		Payload binseq.Binary `cbor:"payload"`
	}
	value := record{Name: "upload", Payload: binseq.Take(ramp())}

	encoded, err := codec.Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got record
	if err := codec.Unmarshal(encoded, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Name != value.Name {
		t.Errorf("name = %q, want %q", got.Name, value.Name)
	}
	if !got.Payload.Equal(value.Payload) {
		t.Errorf("payload = %v, want %v", got.Payload, value.Payload)
	}
}

func TestYAMLBinaryNode(t *testing.T) {
	encoded, err := yaml.Marshal(binseq.FromString("Hello"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := "!!binary SGVsbG8=\n"; string(encoded) != want {
		t.Errorf("Marshal = %q, want %q", encoded, want)
	}

	var got binseq.Binary
	if err := yaml.Unmarshal(encoded, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if string(got.Bytes()) != "Hello" {
		t.Errorf("decoded = %q, want %q", got.Bytes(), "Hello")
	}
	if !got.IsOwned() {
		t.Error("decoded sequence is not owned")
	}
}

func TestYAMLPlainString(t *testing.T) {
	var got binseq.Binary
	if err := yaml.Unmarshal([]byte("hello world"), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if string(got.Bytes()) != "hello world" {
		t.Errorf("decoded = %q, want the string's UTF-8 bytes", got.Bytes())
	}
}

func TestYAMLStructRoundTrip(t *testing.T) {
	type record struct {
		Name    string        `yaml:"name"`
		Payload binseq.Binary `yaml:"payload"`
	}
	value := record{Name: "upload", Payload: binseq.FromString("Hello")}

	encoded, err := yaml.Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got record
	if err := yaml.Unmarshal(encoded, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Payload.Equal(value.Payload) {
		t.Errorf("payload = %v, want %v", got.Payload, value.Payload)
	}
}
