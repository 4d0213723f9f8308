// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package rid implements resource identifiers: compact, structured
// names of the form
//
//	ri.<service>.<instance>.<type>.<locator>
//
// that uniquely and portably identify a resource across systems. The
// four components are:
//
//   - service: the service (or application) that namespaces the rest
//     of the identifier. Grammar [a-z][a-z0-9-]*.
//   - instance: an optionally empty service cluster, to disambiguate
//     resources from different deployments of the same service.
//     Grammar ([a-z0-9][a-z0-9-]*)?.
//   - type: a service-specific resource type grouping locators.
//     Grammar [a-z][a-z0-9-]*.
//   - locator: the string that locates the specific resource. Grammar
//     [a-zA-Z0-9_.-]+ — the only component that may itself contain
//     '.', so the locator is everything after the third separator.
//
// ResourceIdentifier is an immutable value type. It stores the
// canonical string once together with the three component boundary
// offsets, so component accessors and comparisons never allocate or
// re-validate. Identifiers are constructed either by validating a full
// candidate string (Parse) or by validating individual components and
// concatenating them (New, Builder); both paths run the same
// single-pass scanner and converge on the same representation.
//
// Validation is a hand-specialized character-class scan, not a regular
// expression: identifiers are constructed and compared at high
// frequency in consuming systems, and the scan touches each byte once
// with no allocation and no backtracking.
//
// The canonical serialization form is the full identifier string.
// JSON, YAML, and CBOR marshaling use it via encoding.TextMarshaler.
package rid
