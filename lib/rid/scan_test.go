// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rid

import "testing"

// Scanner-level tests exercise the unexported component scans
// directly, including the offset-window behavior that the exported
// predicates never hit (scans starting mid-string). The exported
// surface is covered in rid_test.

func TestScanService(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start int
		want  int
	}{
		{name: "to-end", input: "compass", start: 0, want: scanEnd},
		{name: "to-separator", input: "compass.rest", start: 0, want: 7},
		{name: "mid-string", input: "ri.compass.rest", start: 3, want: 10},
		{name: "interior-digits-dashes", input: "a1-b2.x", start: 0, want: 5},
		{name: "single-letter", input: "a", start: 0, want: scanEnd},
		{name: "leading-digit", input: "1compass", start: 0, want: scanInvalid},
		{name: "leading-dash", input: "-compass", start: 0, want: scanInvalid},
		{name: "leading-separator", input: ".compass", start: 0, want: scanInvalid},
		{name: "leading-upper", input: "Compass", start: 0, want: scanInvalid},
		{name: "interior-underscore", input: "comp_ass", start: 0, want: scanInvalid},
		{name: "interior-upper", input: "comPass", start: 0, want: scanInvalid},
		{name: "start-at-end", input: "compass", start: 7, want: scanInvalid},
		{name: "start-past-end", input: "x", start: 5, want: scanInvalid},
		{name: "empty", input: "", start: 0, want: scanInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scanService(tt.input, tt.start); got != tt.want {
				t.Errorf("scanService(%q, %d) = %d, want %d", tt.input, tt.start, got, tt.want)
			}
		})
	}
}

func TestScanInstance(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start int
		want  int
	}{
		{name: "to-end", input: "main", start: 0, want: scanEnd},
		{name: "to-separator", input: "main.rest", start: 0, want: 4},
		{name: "empty-at-end", input: "", start: 0, want: scanEnd},
		{name: "empty-at-separator", input: ".rest", start: 0, want: 0},
		{name: "leading-digit", input: "1main", start: 0, want: scanEnd},
		{name: "leading-dash", input: "-main", start: 0, want: scanInvalid},
		{name: "leading-upper", input: "Main", start: 0, want: scanInvalid},
		{name: "interior-dash", input: "us-east-1", start: 0, want: scanEnd},
		{name: "mid-string-empty", input: "a..b", start: 2, want: 2},
		{name: "start-at-end", input: "main", start: 4, want: scanEnd},
		{name: "start-past-end", input: "main", start: 5, want: scanInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scanInstance(tt.input, tt.start); got != tt.want {
				t.Errorf("scanInstance(%q, %d) = %d, want %d", tt.input, tt.start, got, tt.want)
			}
		})
	}
}

func TestScanLocator(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start int
		want  int
	}{
		{name: "simple", input: "abc123", start: 0, want: scanEnd},
		{name: "embedded-dots", input: "a.b.c", start: 0, want: scanEnd},
		{name: "mixed-case", input: "hello_WORLD-123", start: 0, want: scanEnd},
		{name: "single-underscore", input: "_", start: 0, want: scanEnd},
		{name: "single-dot", input: ".", start: 0, want: scanEnd},
		{name: "empty", input: "", start: 0, want: scanInvalid},
		{name: "start-at-end", input: "abc", start: 3, want: scanInvalid},
		{name: "space", input: "a b", start: 0, want: scanInvalid},
		{name: "punctuation", input: "name!@#", start: 0, want: scanInvalid},
		{name: "non-ascii", input: "caf\xc3\xa9", start: 0, want: scanInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scanLocator(tt.input, tt.start); got != tt.want {
				t.Errorf("scanLocator(%q, %d) = %d, want %d", tt.input, tt.start, got, tt.want)
			}
		})
	}
}

func TestScanRIDOffsets(t *testing.T) {
	// The composed scan yields the exact separator positions.
	const input = "ri.compass.main.folder.abc.def"
	serviceEnd, instanceEnd, typeEnd, ok := scanRID(input)
	if !ok {
		t.Fatalf("scanRID(%q) not ok", input)
	}
	if serviceEnd != 10 || instanceEnd != 15 || typeEnd != 22 {
		t.Errorf("offsets = (%d, %d, %d), want (10, 15, 22)", serviceEnd, instanceEnd, typeEnd)
	}
	if input[serviceEnd] != '.' || input[instanceEnd] != '.' || input[typeEnd] != '.' {
		t.Error("offsets do not point at separators")
	}
}

func TestScanRIDEmptyInstanceOffsets(t *testing.T) {
	const input = "ri.compass..folder.x"
	serviceEnd, instanceEnd, typeEnd, ok := scanRID(input)
	if !ok {
		t.Fatalf("scanRID(%q) not ok", input)
	}
	if serviceEnd != 10 || instanceEnd != 11 || typeEnd != 18 {
		t.Errorf("offsets = (%d, %d, %d), want (10, 11, 18)", serviceEnd, instanceEnd, typeEnd)
	}
}

func TestScanRIDPrematureEnd(t *testing.T) {
	// A non-terminal component that consumes to end-of-string means
	// missing separators; the composed scan must reject it.
	for _, input := range []string{"ri.compass", "ri.compass.main", "ri.compass.main.folder"} {
		if _, _, _, ok := scanRID(input); ok {
			t.Errorf("scanRID(%q) ok, want rejection", input)
		}
	}
}

func TestCharClassTable(t *testing.T) {
	// Spot-check the table against the grammar character sets.
	for c := byte('a'); c <= 'z'; c++ {
		if charClass[c]&classLower == 0 {
			t.Fatalf("%q missing classLower", c)
		}
	}
	for c := byte('A'); c <= 'Z'; c++ {
		if charClass[c]&classLower != 0 {
			t.Fatalf("%q has classLower", c)
		}
		if charClass[c]&classLocator == 0 {
			t.Fatalf("%q missing classLocator", c)
		}
	}
	for _, c := range []byte{'-', '_', '.'} {
		if charClass[c]&classLocator == 0 {
			t.Fatalf("%q missing classLocator", c)
		}
	}
	if charClass['_']&classInterior != 0 {
		t.Error("underscore must not be an interior service character")
	}
	// Every byte above ASCII carries no class bits.
	for c := 0x80; c <= 0xff; c++ {
		if charClass[c] != 0 {
			t.Fatalf("byte 0x%02x has class bits %#x", c, charClass[c])
		}
	}
}
