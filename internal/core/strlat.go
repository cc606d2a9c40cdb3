package core

import (
	"strconv"
	"strings"
	"unicode"
)

// This file classifies concrete strings into the string-lattice categories
// the FLAGS bitset distinguishes (spec.md §3.2, "string facets"). The
// categories are not mutually exclusive in the bitset, but exactly one of
// them is the "primary" category a concrete string carries, decided by
// classifyStr below in teacher-style table-driven fashion rather than as a
// cascade of special cases.

const maxUInt32 = 1<<32 - 1

// isArrayIndex reports whether s is the canonical decimal form of an
// array index: a uint32 with no leading zero (except "0" itself) and no
// sign.
func isArrayIndex(s string) bool {
	if s == "" {
		return false
	}
	if s == "0" {
		return true
	}
	if s[0] == '0' {
		return false
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return false
	}
	return n <= maxUInt32
}

// isNumeric reports whether strconv.ParseFloat accepts s whole. That
// includes non-canonical spellings such as "007" or "1." and the special
// values "NaN" and "Inf".
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// isIdentifier reports whether s is a valid ECMAScript-style identifier:
// starts with a letter, '_' or '$', continues with letters, digits, '_'
// or '$'.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case unicode.IsLetter(r):
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return true
}

// isIdentifierParts reports whether every rune in s is individually a
// valid identifier-part character, without requiring a valid leading
// character — the lattice's fuzzy "could be glued into an identifier"
// category (spec.md §9).
func isIdentifierParts(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

// isOtherIdentifierParts reports whether s qualifies as isIdentifierParts
// but not as a full isIdentifier (e.g. "123abc").
func isOtherIdentifierParts(s string) bool {
	return isIdentifierParts(s) && !isIdentifier(s)
}

// containsNonNumberCharacters reports whether s has any rune that could
// not appear in a decimal number literal.
func containsNonNumberCharacters(s string) bool {
	for _, r := range s {
		if !(unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E') {
			return true
		}
	}
	return false
}

// sharedPrefix returns the longest common leading substring of a and b.
func sharedPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// classifyStr returns the Flags bits describing which string-lattice
// categories s belongs to. A concrete string gets exactly one category
// bit, plus fStrJSON when it also looks like JSON (e.g. "[1]" is both
// StrOther and StrJSON).
func classifyStr(s string) Flags {
	var f Flags
	switch {
	case isArrayIndex(s):
		f = f.with(fStrUInt)
	case isNumeric(s):
		f = f.with(fStrOtherNum)
	case isIdentifier(s):
		f = f.with(fStrIdentifier)
	case isOtherIdentifierParts(s):
		f = f.with(fStrOtherIdentifierParts)
	default:
		f = f.with(fStrOther)
	}
	if json, ok := looksLikeJSON(s); ok && json {
		f = f.with(fStrJSON)
	}
	return f
}

// looksLikeJSON is a cheap syntactic check (not a full parse, per spec.md
// §6 "does not interpret syntax") used only to decide whether the
// fStrJSON overlay bit applies: it holds for strings that begin and end
// with a matching bracket/brace/quote.
func looksLikeJSON(s string) (isJSON bool, matched bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return false, true
	}
	switch t[0] {
	case '{':
		return strings.HasSuffix(t, "}"), true
	case '[':
		return strings.HasSuffix(t, "]"), true
	case '"':
		return len(t) >= 2 && strings.HasSuffix(t, `"`), true
	}
	return false, true
}
