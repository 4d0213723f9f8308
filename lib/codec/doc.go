// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// payloads that carry resource identifiers.
//
// Resource identifiers serialize as their canonical string in every
// text-capable format. JSON and YAML pick this up automatically from
// encoding.TextMarshaler; CBOR needs the encoder and decoder modes
// configured to honor the same interfaces, which is what this package
// centralizes. A rid.ResourceIdentifier struct field encoded through
// this package is a CBOR text string holding the canonical form, and
// decoding re-validates it through the parse path — an invalid
// identifier on the wire is a decode error, never a silently accepted
// value.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. Same logical data always produces identical bytes, so
// encoded payloads are safe to hash and compare.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
package codec
