// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rid

import (
	"fmt"
	"hash/maphash"
	"strings"
)

// hashSeed seeds the cached identifier hash. Process-local: hashes
// are stable for the lifetime of the process, not across processes.
// Use Digest for a cross-process stable identity key.
var hashSeed = maphash.MakeSeed()

// ResourceIdentifier is a validated resource identifier
// (e.g., "ri.compass.main.folder.abc123").
//
// The canonical string is stored once together with the three
// component boundary offsets, so component accessors return substring
// views and comparisons run over the stored string — no allocation,
// no re-validation.
//
// ResourceIdentifier is an immutable value type. The zero value is
// not valid; use IsZero to check.
type ResourceIdentifier struct {
	rid string

	// Separator offsets into rid: the '.' after the service,
	// instance, and type components. Strictly increasing, each less
	// than len(rid).
	serviceEnd  int
	instanceEnd int
	typeEnd     int

	// sum is the maphash of rid, computed once at construction.
	// Equal identifiers always have equal sums, so Equal checks sums
	// first to short-circuit mismatches: identifiers are often the
	// same length with a long common prefix, which makes full string
	// comparison the expensive path.
	sum uint64
}

func newResourceIdentifier(canonical string, serviceEnd, instanceEnd, typeEnd int) ResourceIdentifier {
	return ResourceIdentifier{
		rid:         canonical,
		serviceEnd:  serviceEnd,
		instanceEnd: instanceEnd,
		typeEnd:     typeEnd,
		sum:         maphash.String(hashSeed, canonical),
	}
}

// Parse validates and wraps a raw resource identifier string. The
// string is stored verbatim as the canonical form. Returns a
// *ParseError if the string does not conform to the resource
// identifier grammar.
func Parse(raw string) (ResourceIdentifier, error) {
	serviceEnd, instanceEnd, typeEnd, ok := scanRID(raw)
	if !ok {
		return ResourceIdentifier{}, &ParseError{RID: raw}
	}
	return newResourceIdentifier(raw, serviceEnd, instanceEnd, typeEnd), nil
}

// MustParse is like Parse but panics on error. Use in tests and
// static initialization where the input is known-valid.
func MustParse(raw string) ResourceIdentifier {
	r, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("rid.MustParse(%q): %v", raw, err))
	}
	return r
}

// New constructs a resource identifier from its components. Each
// component is validated independently, in order service, instance,
// type, locator; the first failure is reported as a *FieldError
// naming the offending component.
//
// Additional locator parts are joined to locator with '.' before
// validation, so callers can assemble a multi-part locator without
// manual concatenation:
//
//	New("compass", "", "folder", "abc", "def")  → ri.compass..folder.abc.def
func New(service, instance, typ, locator string, locatorParts ...string) (ResourceIdentifier, error) {
	if !IsValidService(service) {
		return ResourceIdentifier{}, &FieldError{Field: FieldService, Value: service}
	}
	if !IsValidInstance(instance) {
		return ResourceIdentifier{}, &FieldError{Field: FieldInstance, Value: instance}
	}
	if !IsValidType(typ) {
		return ResourceIdentifier{}, &FieldError{Field: FieldType, Value: typ}
	}
	if len(locatorParts) > 0 {
		joined := make([]string, 0, 1+len(locatorParts))
		joined = append(joined, locator)
		joined = append(joined, locatorParts...)
		locator = strings.Join(joined, string(separator))
	}
	if !IsValidLocator(locator) {
		return ResourceIdentifier{}, &FieldError{Field: FieldLocator, Value: locator}
	}

	var b strings.Builder
	b.Grow(ridPrefixLength + len(service) + 1 + len(instance) + 1 + len(typ) + 1 + len(locator))
	b.WriteString(ridPrefix)
	b.WriteString(service)
	b.WriteByte(separator)
	b.WriteString(instance)
	b.WriteByte(separator)
	b.WriteString(typ)
	b.WriteByte(separator)
	b.WriteString(locator)

	// Components are individually validated and separator insertion
	// is mechanical, so the offsets follow from the lengths — no
	// re-scan of the assembled string.
	serviceEnd := ridPrefixLength + len(service)
	instanceEnd := serviceEnd + 1 + len(instance)
	typeEnd := instanceEnd + 1 + len(typ)
	return newResourceIdentifier(b.String(), serviceEnd, instanceEnd, typeEnd), nil
}

// String returns the canonical resource identifier string. This is
// the only rendered form: no alternative encodings, case folding, or
// trimming exist anywhere in the package.
func (r ResourceIdentifier) String() string { return r.rid }

// IsZero reports whether the identifier is the zero value
// (uninitialized).
func (r ResourceIdentifier) IsZero() bool { return r.rid == "" }

// Service returns the service component. Panics if called on a
// zero-value ResourceIdentifier.
func (r ResourceIdentifier) Service() string {
	r.mustNotBeZero("Service")
	return r.rid[ridPrefixLength:r.serviceEnd]
}

// Instance returns the instance component, which may be the empty
// string. Panics if called on a zero-value ResourceIdentifier.
func (r ResourceIdentifier) Instance() string {
	r.mustNotBeZero("Instance")
	return r.rid[r.serviceEnd+1 : r.instanceEnd]
}

// Type returns the type component. Panics if called on a zero-value
// ResourceIdentifier.
func (r ResourceIdentifier) Type() string {
	r.mustNotBeZero("Type")
	return r.rid[r.instanceEnd+1 : r.typeEnd]
}

// Locator returns the locator component. Panics if called on a
// zero-value ResourceIdentifier.
func (r ResourceIdentifier) Locator() string {
	r.mustNotBeZero("Locator")
	return r.rid[r.typeEnd+1:]
}

func (r ResourceIdentifier) mustNotBeZero(method string) {
	if r.rid == "" {
		panic("ResourceIdentifier." + method + " called on zero value")
	}
}

// HasService reports whether the service component equals service.
// The comparison runs against the stored canonical string; nothing is
// materialized. Always false on the zero value.
func (r ResourceIdentifier) HasService(service string) bool {
	return r.rid != "" && r.rid[ridPrefixLength:r.serviceEnd] == service
}

// HasInstance reports whether the instance component equals instance.
// Always false on the zero value.
func (r ResourceIdentifier) HasInstance(instance string) bool {
	return r.rid != "" && r.rid[r.serviceEnd+1:r.instanceEnd] == instance
}

// HasType reports whether the type component equals typ. Always false
// on the zero value.
func (r ResourceIdentifier) HasType(typ string) bool {
	return r.rid != "" && r.rid[r.instanceEnd+1:r.typeEnd] == typ
}

// HasLocator reports whether the locator component equals locator.
// Always false on the zero value.
func (r ResourceIdentifier) HasLocator(locator string) bool {
	return r.rid != "" && r.rid[r.typeEnd+1:] == locator
}

// Sum64 returns the cached hash of the canonical string. Stable for
// the lifetime of the process; equal identifiers always yield equal
// sums. Not stable across processes — use Digest for durable keys.
func (r ResourceIdentifier) Sum64() uint64 { return r.sum }

// Equal reports whether r and other represent the same resource
// identifier, i.e. their canonical strings are equal. The cached
// hashes are compared first as an O(1) short-circuit; the string
// comparison settles the (rare) case of colliding sums.
func (r ResourceIdentifier) Equal(other ResourceIdentifier) bool {
	return r.sum == other.sum && r.rid == other.rid
}

// MarshalText implements encoding.TextMarshaler for JSON and other
// text-based serialization formats. Marshaling the zero value is an
// error: an unset identifier has no canonical form.
func (r ResourceIdentifier) MarshalText() ([]byte, error) {
	if r.rid == "" {
		return nil, fmt.Errorf("cannot marshal zero-value resource identifier")
	}
	return []byte(r.rid), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and
// other text-based serialization formats. Validates the identifier
// format. An empty input produces the zero value (unset identifier).
func (r *ResourceIdentifier) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*r = ResourceIdentifier{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
