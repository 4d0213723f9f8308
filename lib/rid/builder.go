// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rid

// Builder accumulates resource identifier components and emits an
// identifier when the locator is supplied. It is equivalent to
// calling New with the same inputs, and exists for callers that
// collect components across several steps:
//
//	r, err := rid.NewBuilder().
//		Service("compass").
//		Type("folder").
//		Build("abc123")
//
// Build fails with a *MissingFieldError if the service or type was
// never supplied — there is no silent default. The instance defaults
// to the empty string, which the grammar permits.
//
// Builder is not safe for concurrent use.
type Builder struct {
	service     string
	instance    string
	typ         string
	haveService bool
	haveType    bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Service sets the service component.
func (b *Builder) Service(service string) *Builder {
	b.service = service
	b.haveService = true
	return b
}

// Instance sets the instance component. Calling Instance("") is
// valid and identical to never calling Instance.
func (b *Builder) Instance(instance string) *Builder {
	b.instance = instance
	return b
}

// Type sets the type component.
func (b *Builder) Type(typ string) *Builder {
	b.typ = typ
	b.haveType = true
	return b
}

// Build validates the accumulated components together with the given
// locator (plus optional additional locator parts, joined with '.')
// and emits the identifier. Returns a *MissingFieldError if the
// service or type was never supplied, or a *FieldError if any
// component fails its grammar.
func (b *Builder) Build(locator string, locatorParts ...string) (ResourceIdentifier, error) {
	if !b.haveService {
		return ResourceIdentifier{}, &MissingFieldError{Field: FieldService}
	}
	if !b.haveType {
		return ResourceIdentifier{}, &MissingFieldError{Field: FieldType}
	}
	return New(b.service, b.instance, b.typ, locator, locatorParts...)
}
