// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

// Package textfold normalizes Unicode strings for case- and accent-insensitive
// matching.
//
// # Usage
//
// The student directory search and the credential store's identifier lookup
// both compare folded forms, so "José" matches a search for "jose" and
// "Ab_01" logs in as "ab_01".
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold converts a Unicode string into its canonical comparison form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Lowercases.
// 4. Trims surrounding whitespace.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, err := transform.String(t, s)
	if err != nil {
		// Fall back to the raw input; a lossy match beats a lost one.
		result = s
	}
	return strings.ToLower(strings.TrimSpace(result))
}

// Contains reports whether the folded form of s contains the folded form of substr.
func Contains(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
