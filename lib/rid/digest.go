// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rid

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest32 is a 32-byte BLAKE3 digest of a resource identifier's
// canonical string.
type Digest32 [32]byte

// identityKey is the 32-byte key for BLAKE3 keyed hashing of resource
// identifiers. Domain separation ensures the same bytes hashed in a
// different context produce a different digest. The value is the
// ASCII encoding of the domain name, zero-padded to 32 bytes: keyed
// mode treats the key as an opaque 32-byte value, and readable ASCII
// keeps it inspectable in hex dumps. Changing it invalidates every
// existing digest.
var identityKey = [32]byte{
	'r', 'i', 'd', '.', 'i', 'd', 'e', 'n', 't', 'i', 't', 'y', 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Digest computes the keyed BLAKE3 digest of the canonical string.
// Unlike Sum64, the digest is stable across processes and machines,
// so it is suitable as a durable key (content-addressed storage,
// sharding, deduplication). Panics if called on a zero-value
// ResourceIdentifier.
func (r ResourceIdentifier) Digest() Digest32 {
	r.mustNotBeZero("Digest")

	// NewKeyed requires exactly 32 bytes, which identityKey
	// guarantees; the error is only returned for wrong key length.
	hasher, err := blake3.NewKeyed(identityKey[:])
	if err != nil {
		panic("rid: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.WriteString(r.rid)
	var digest Digest32
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// FormatDigest returns the hex-encoded string representation of a
// resource identifier digest.
func FormatDigest(digest Digest32) string {
	return hex.EncodeToString(digest[:])
}

// ParseDigest parses a hex-encoded resource identifier digest.
// Returns an error if the string is not a valid 64-character hex
// encoding of 32 bytes.
func ParseDigest(hexString string) (Digest32, error) {
	var digest Digest32
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing identifier digest: %w", err)
	}
	if len(decoded) != 32 {
		return digest, fmt.Errorf("identifier digest is %d bytes, want 32", len(decoded))
	}
	copy(digest[:], decoded)
	return digest, nil
}
