package core

import (
	"strconv"
	"strings"

	"lattice/internal/pset"
)

// This file implements the equality-driven restriction operators
// (spec.md §4.7): narrowing one operand of a `===`/`!==`/`==`/`!=` test
// given the other operand's abstract Value.

// RestrictToStrictEquals narrows v to the states consistent with
// `v === other` evaluating to true.
func RestrictToStrictEquals(v, other *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToStrictEquals")
	checkNotUnknown(other, "RestrictToStrictEquals")

	if s, ok := other.IsMaybeExactStr(); ok {
		return restrictToExactStr(v, s)
	}
	if n, ok := other.Num(); ok {
		return restrictToExactNum(v, n)
	}
	if bit, ok := singlePrimitiveBit(other.flags); ok {
		return restrictToFlags(v, bit)
	}
	if other.objectLabels.Size() == 1 {
		only := other.objectLabels.ToSlice()[0]
		if v.objectLabels.Contains(only) {
			return canonicalize(&Value{flags: fPresentData, objectLabels: pset.New(only)})
		}
		return none
	}
	// other is itself fuzzy; strict-equals narrows nothing further than
	// the ordinary join-of-facets intersection a caller can already get
	// from restricting against other's own facets one at a time.
	return v
}

// RestrictToStrictNotEquals narrows v to the states consistent with
// `v !== other` evaluating to true.
func RestrictToStrictNotEquals(v, other *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToStrictNotEquals")
	checkNotUnknown(other, "RestrictToStrictNotEquals")

	if s, ok := other.IsMaybeExactStr(); ok {
		return RestrictToNotStrings(v, pset.New(s))
	}
	if n, ok := other.Num(); ok {
		if v.num != nil && *v.num == n {
			return none
		}
		return v
	}
	return v
}

// RestrictToLooseEquals narrows v to the states consistent with
// `v == other` evaluating to true, per spec.md §4.7: `null`/`undefined`
// are mutually loosely equal and equal to nothing else; `0`, `false`,
// `""`, numeric strings and their numeric values are mutually equal.
// Object labels on either side defeat precise coercion reasoning, so the
// operator gives up (returns v unchanged) rather than guess; every other
// combination falls back to strict-equals narrowing.
func RestrictToLooseEquals(v, other *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToLooseEquals")
	checkNotUnknown(other, "RestrictToLooseEquals")

	if isExactlyNullOrUndef(other) {
		return restrictToFlags(v, fNull|fUndef)
	}
	if !v.objectLabels.IsEmpty() || !other.objectLabels.IsEmpty() {
		return v
	}
	if n, ok := coercedNum(other); ok {
		return restrictToLooseNum(v, n)
	}
	return RestrictToStrictEquals(v, other)
}

// RestrictToLooseNotEquals narrows v to the states consistent with
// `v != other` evaluating to true.
func RestrictToLooseNotEquals(v, other *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToLooseNotEquals")
	checkNotUnknown(other, "RestrictToLooseNotEquals")
	return RestrictToStrictNotEquals(v, other)
}

func isExactlyNullOrUndef(v *Value) bool {
	return v.flags.any(fNull|fUndef) &&
		v.flags.masked(maskPrimitive&^(fNull|fUndef)) == 0 &&
		v.num == nil && v.str == nil && v.objectLabels.IsEmpty()
}

// coercedNum reports the number other coerces to for loose-equality
// purposes (spec.md §4.7), and whether other describes anything
// coercible at all: a concrete number, a concrete boolean (true -> 1,
// false -> 0), or a concrete string that parses as a number (the empty
// string coerces to 0). Fuzzy (non-concrete) booleans and strings are not
// coercible to a single number and report ok=false.
func coercedNum(other *Value) (float64, bool) {
	if n, ok := other.Num(); ok {
		return n, true
	}
	if other.flags.has(fBoolTrue) && !other.flags.has(fBoolFalse) {
		return 1, true
	}
	if other.flags.has(fBoolFalse) && !other.flags.has(fBoolTrue) {
		return 0, true
	}
	if s, ok := other.IsMaybeExactStr(); ok {
		if n, ok := parseNumericStr(s); ok {
			return n, true
		}
	}
	return 0, false
}

// parseNumericStr parses s as the number it coerces to under the source
// language's string-to-number conversion: the empty string is 0, and any
// other string is only numeric if strconv accepts it whole.
func parseNumericStr(s string) (float64, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// restrictToLooseNum narrows v to the states whose loose-equality
// coercion equals n: the number n itself, the boolean that coerces to n
// (true for 1, false for 0), and any string facet that coerces to n
// (spec.md §4.7, "0, false, "", numeric strings... are mutually equal").
// The facets narrow independently and the survivors join back together,
// since v may carry more than one of them at once.
func restrictToLooseNum(v *Value, n float64) *Value {
	result := none
	if v.flags.any(maskNum) {
		result = Join(result, restrictToExactNum(v, n), false)
	}
	if n == 1 && v.flags.has(fBoolTrue) {
		result = Join(result, canonicalize(&Value{flags: fBoolTrue | fPresentData}), false)
	}
	if n == 0 && v.flags.has(fBoolFalse) {
		result = Join(result, canonicalize(&Value{flags: fBoolFalse | fPresentData}), false)
	}
	if v.flags.any(maskStr) {
		result = Join(result, restrictStrToLooseNum(v, n), false)
	}
	return result
}

// restrictStrToLooseNum narrows v's string facet to the strings that
// coerce to n under the source language's string-to-number conversion.
func restrictStrToLooseNum(v *Value, n float64) *Value {
	if v.flags.masked(maskStr) == 0 {
		return none
	}
	if v.str != nil {
		s := *v.str
		if v.flags.has(fStrPrefix) {
			return none
		}
		if m, ok := parseNumericStr(s); ok && m == n {
			return MakeStr(s)
		}
		return none
	}
	candidate := strconv.FormatFloat(n, 'g', -1, 64)
	if n == 0 {
		candidate = ""
	}
	if !v.IsMaybeStrValue(candidate) {
		return none
	}
	return MakeStr(candidate)
}

// singlePrimitiveBit reports whether exactly one bit of maskPrimitive is
// set in flags, returning that bit.
func singlePrimitiveBit(flags Flags) (Flags, bool) {
	bits := flags.masked(maskPrimitive)
	if bits == 0 || bits&(bits-1) != 0 {
		return 0, false
	}
	return bits, true
}

func restrictToExactStr(v *Value, s string) *Value {
	if v.flags.masked(maskStr) == 0 {
		return none
	}
	if v.str != nil && v.flags.has(fStrPrefix) {
		if !strings.HasPrefix(s, *v.str) {
			return none
		}
		if !v.includedStrings.IsEmpty() && !v.includedStrings.Contains(s) {
			return none
		}
		return MakeStr(s)
	}
	if v.str != nil {
		if *v.str == s {
			return v
		}
		return none
	}
	if !v.excludedStrings.IsEmpty() && v.excludedStrings.Contains(s) {
		return none
	}
	if !v.includedStrings.IsEmpty() && !v.includedStrings.Contains(s) {
		return none
	}
	if v.flags.masked(classifyStr(s)) == 0 {
		return none
	}
	return MakeStr(s)
}

func restrictToExactNum(v *Value, n float64) *Value {
	if v.flags.masked(maskNum) == 0 || !v.flags.has(classifyNum(n)) {
		return none
	}
	if v.num != nil {
		if *v.num == n {
			return v
		}
		return none
	}
	return MakeNum(n)
}
