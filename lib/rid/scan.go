// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rid

import "strings"

const (
	ridPrefix       = "ri."
	ridPrefixLength = len(ridPrefix)
	separator       = '.'
)

// Scan outcomes. A non-negative return from a component scan is the
// index of the separator that terminated the component.
const (
	// scanInvalid: the component is malformed starting at the given
	// offset, or the offset is past the end of the string.
	scanInvalid = -1
	// scanEnd: the component consumed the remainder of the string.
	scanEnd = -2
)

// Character class bits for the four component grammars. Every class is
// a subset of printable ASCII; bytes >= 0x80 carry no bits, so a
// byte-wise scan rejects all multi-byte UTF-8 sequences without
// decoding them.
const (
	classLower = 1 << iota
	classUpper
	classDigit
	classDash
	classDot
	classUnderscore

	// classInterior: characters allowed after the first character of
	// the service, instance, and type components.
	classInterior = classLower | classDigit | classDash
	// classLocator: characters allowed anywhere in the locator.
	classLocator = classLower | classUpper | classDigit | classDash | classDot | classUnderscore
)

var charClass [256]uint8

func init() {
	for c := 'a'; c <= 'z'; c++ {
		charClass[c] = classLower
	}
	for c := 'A'; c <= 'Z'; c++ {
		charClass[c] = classUpper
	}
	for c := '0'; c <= '9'; c++ {
		charClass[c] = classDigit
	}
	charClass['-'] = classDash
	charClass['.'] = classDot
	charClass['_'] = classUnderscore
}

// scanService walks the service component starting at offset start.
// The first character must be a lowercase letter, every subsequent
// character up to the next separator must be lowercase, digit, or
// dash. Returns the separator index, scanEnd if the component runs to
// the end of the string, or scanInvalid.
func scanService(s string, start int) int {
	if start >= len(s) {
		return scanInvalid
	}
	if charClass[s[start]]&classLower == 0 {
		return scanInvalid
	}
	for i := start + 1; i < len(s); i++ {
		c := s[i]
		if c == separator {
			return i
		}
		if charClass[c]&classInterior == 0 {
			return scanInvalid
		}
	}
	return scanEnd
}

// scanInstance walks the instance component starting at offset start.
// Unlike the service component, the instance may be empty (an
// immediate separator or end of string is valid) and its first
// character may be a digit, but not a dash.
func scanInstance(s string, start int) int {
	if start > len(s) {
		return scanInvalid
	}
	for i := start; i < len(s); i++ {
		c := s[i]
		if c == separator {
			return i
		}
		if i == start {
			if charClass[c]&(classLower|classDigit) == 0 {
				return scanInvalid
			}
		} else if charClass[c]&classInterior == 0 {
			return scanInvalid
		}
	}
	return scanEnd
}

// scanType walks the type component, which has the same grammar as
// the service component.
func scanType(s string, start int) int {
	return scanService(s, start)
}

// scanLocator walks the locator component starting at offset start.
// The locator is the final component: a separator does not terminate
// it, so the only outcomes are scanEnd and scanInvalid. At least one
// character is required.
func scanLocator(s string, start int) int {
	if start >= len(s) {
		return scanInvalid
	}
	for i := start; i < len(s); i++ {
		if charClass[s[i]]&classLocator == 0 {
			return scanInvalid
		}
	}
	return scanEnd
}

// scanRID runs the full validation walk: the literal "ri." prefix,
// then the four component scans in sequence. On success it returns
// the three interior boundary offsets (the separator positions after
// the service, instance, and type components). Validation and parsing
// are the same walk — a successful scan never needs a second pass.
func scanRID(s string) (serviceEnd, instanceEnd, typeEnd int, ok bool) {
	if !strings.HasPrefix(s, ridPrefix) {
		return 0, 0, 0, false
	}
	serviceEnd = scanService(s, ridPrefixLength)
	if serviceEnd < 0 {
		return 0, 0, 0, false
	}
	instanceEnd = scanInstance(s, serviceEnd+1)
	if instanceEnd < 0 {
		return 0, 0, 0, false
	}
	typeEnd = scanType(s, instanceEnd+1)
	if typeEnd < 0 {
		return 0, 0, 0, false
	}
	if scanLocator(s, typeEnd+1) != scanEnd {
		return 0, 0, 0, false
	}
	return serviceEnd, instanceEnd, typeEnd, true
}

// IsValid reports whether candidate is a well-formed resource
// identifier. IsValid(x) is true exactly when Parse(x) succeeds; use
// IsValid when only the yes/no answer is needed.
func IsValid(candidate string) bool {
	_, _, _, ok := scanRID(candidate)
	return ok
}

// IsValidService reports whether service is a well-formed service
// component: a lowercase letter followed by any number of lowercase
// letters, digits, and dashes.
func IsValidService(service string) bool {
	return scanService(service, 0) == scanEnd
}

// IsValidInstance reports whether instance is a well-formed instance
// component: empty, or a lowercase letter or digit followed by any
// number of lowercase letters, digits, and dashes.
func IsValidInstance(instance string) bool {
	return scanInstance(instance, 0) == scanEnd
}

// IsValidType reports whether typ is a well-formed type component.
// The type grammar is identical to the service grammar.
func IsValidType(typ string) bool {
	return scanType(typ, 0) == scanEnd
}

// IsValidLocator reports whether locator is a well-formed locator
// component: one or more ASCII letters, digits, dots, dashes, and
// underscores.
func IsValidLocator(locator string) bool {
	return scanLocator(locator, 0) == scanEnd
}
