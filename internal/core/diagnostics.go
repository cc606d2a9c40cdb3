package core

import (
	"fmt"
	"sort"
	"strings"
)

// This file renders Values and the differences between them into
// human-readable diagnostics (spec.md §4.8), the way the teacher's output
// package turns a structured diff into formatted text: every case
// delegates to a small, named helper rather than one large switch.

// String renders v as a compact, stable textual description. Two
// canonically-equal Values always render identically; rendering is not
// guaranteed stable across code versions.
func (v *Value) String() string {
	if v.IsNone() {
		return "none"
	}
	if v.IsUnknown() {
		return "unknown"
	}
	if v.IsPolymorphic() {
		return fmt.Sprintf("var(%v)", v.propertyVar)
	}

	var parts []string
	parts = append(parts, printPrimitives(v)...)
	parts = append(parts, printNum(v)...)
	parts = append(parts, printStr(v)...)
	parts = append(parts, printObjectLabels(v)...)
	parts = append(parts, printAccessors(v)...)

	if len(parts) == 0 {
		parts = append(parts, "<empty-data>")
	}

	attrs := printAttributes(v.flags)
	if attrs != "" {
		parts = append(parts, attrs)
	}
	return strings.Join(parts, "|")
}

func printPrimitives(v *Value) []string {
	var out []string
	if v.flags.has(fUndef) {
		out = append(out, "undefined")
	}
	if v.flags.has(fNull) {
		out = append(out, "null")
	}
	switch {
	case v.flags.has(fBoolTrue) && v.flags.has(fBoolFalse):
		out = append(out, "bool")
	case v.flags.has(fBoolTrue):
		out = append(out, "true")
	case v.flags.has(fBoolFalse):
		out = append(out, "false")
	}
	return out
}

func printNum(v *Value) []string {
	if v.flags.masked(maskNum) == 0 {
		return nil
	}
	if v.num != nil {
		return []string{fmt.Sprintf("num(%v)", *v.num)}
	}
	var bits []string
	if v.flags.has(fNumNaN) {
		bits = append(bits, "NaN")
	}
	if v.flags.has(fNumInf) {
		bits = append(bits, "Inf")
	}
	if v.flags.has(fNumZero) {
		bits = append(bits, "0")
	}
	if v.flags.has(fNumUIntPos) {
		bits = append(bits, "UInt+")
	}
	if v.flags.has(fNumOther) {
		bits = append(bits, "Other")
	}
	return []string{"num{" + strings.Join(bits, ",") + "}"}
}

func printStr(v *Value) []string {
	if v.flags.masked(maskStr) == 0 {
		return nil
	}
	if v.str != nil {
		return []string{fmt.Sprintf("str(%q)", *v.str)}
	}
	if !v.includedStrings.IsEmpty() {
		return []string{"str{" + joinedSorted(v.includedStrings.ToSlice()) + "}"}
	}
	var bits []string
	if v.flags.has(fStrUInt) {
		bits = append(bits, "UInt")
	}
	if v.flags.has(fStrOtherNum) {
		bits = append(bits, "OtherNum")
	}
	if v.flags.has(fStrPrefix) {
		bits = append(bits, "Prefix")
	}
	if v.flags.has(fStrIdentifier) {
		bits = append(bits, "Identifier")
	}
	if v.flags.has(fStrOtherIdentifierParts) {
		bits = append(bits, "OtherIdentifierParts")
	}
	if v.flags.has(fStrOther) {
		bits = append(bits, "Other")
	}
	label := "str{" + strings.Join(bits, ",") + "}"
	if !v.excludedStrings.IsEmpty() {
		label += fmt.Sprintf(" \\ {%s}", joinedSorted(v.excludedStrings.ToSlice()))
	}
	return []string{label}
}

func printObjectLabels(v *Value) []string {
	if v.objectLabels.IsEmpty() {
		return nil
	}
	labels := v.objectLabels.ToSlice()
	rendered := make([]string, 0, len(labels))
	for _, l := range labels {
		rendered = append(rendered, labelKindName(l.Kind()))
	}
	sort.Strings(rendered)
	return []string{fmt.Sprintf("obj[%d]{%s}", len(labels), strings.Join(rendered, ","))}
}

func printAccessors(v *Value) []string {
	var out []string
	if !v.getters.IsEmpty() {
		out = append(out, fmt.Sprintf("getter[%d]", v.getters.Size()))
	}
	if !v.setters.IsEmpty() {
		out = append(out, fmt.Sprintf("setter[%d]", v.setters.Size()))
	}
	return out
}

func labelKindName(k ObjectLabelKind) string {
	switch k {
	case ObjectLabelObject:
		return "object"
	case ObjectLabelFunction:
		return "function"
	case ObjectLabelArray:
		return "array"
	case ObjectLabelSymbol:
		return "symbol"
	default:
		return "?"
	}
}

// printAttributes renders the DontEnum/ReadOnly/DontDelete attribute bits
// set in flags, or "" if none of them are set.
func printAttributes(flags Flags) string {
	var bits []string
	if flags.has(fDontEnum) {
		bits = append(bits, "DontEnum")
	}
	if flags.has(fReadOnly) {
		bits = append(bits, "ReadOnly")
	}
	if flags.has(fDontDelete) {
		bits = append(bits, "DontDelete")
	}
	if flags.has(fExtendedScope) {
		bits = append(bits, "ExtendedScope")
	}
	if len(bits) == 0 {
		return ""
	}
	return "[" + strings.Join(bits, ",") + "]"
}

func joinedSorted(ss []string) string {
	sort.Strings(ss)
	return strings.Join(ss, ",")
}

// Diff writes a human-readable description of what changed between old
// and v to sb: the flag bits added and removed, and one line each when the
// object-label or accessor sets differ. Concrete numbers and strings and
// the excluded/included string sets are not compared. Intended for
// fixpoint-iteration tracing, the same role the teacher's output package
// plays for schema diffs.
func (v *Value) Diff(old *Value, sb *strings.Builder) {
	if v == old {
		return
	}
	if old.IsNone() {
		fmt.Fprintf(sb, "+ %s\n", v)
		return
	}
	if v.IsNone() {
		fmt.Fprintf(sb, "- %s\n", old)
		return
	}
	added := v.flags &^ old.flags
	removed := old.flags &^ v.flags
	if added != 0 {
		fmt.Fprintf(sb, "+ flags %s\n", Flags(added))
	}
	if removed != 0 {
		fmt.Fprintf(sb, "- flags %s\n", Flags(removed))
	}
	if !v.objectLabels.Equal(old.objectLabels) {
		fmt.Fprintf(sb, "~ objectLabels: %d -> %d\n", old.objectLabels.Size(), v.objectLabels.Size())
	}
	if !v.getters.Equal(old.getters) || !v.setters.Equal(old.setters) {
		fmt.Fprintf(sb, "~ accessors: getters %d->%d setters %d->%d\n",
			old.getters.Size(), v.getters.Size(), old.setters.Size(), v.setters.Size())
	}
}

// String renders a raw Flags value as its set bit names, for use in
// diagnostics that need to describe a mask rather than a Value.
func (f Flags) String() string {
	var bits []string
	named := []struct {
		bit  Flags
		name string
	}{
		{fUndef, "Undef"}, {fNull, "Null"}, {fBoolTrue, "True"}, {fBoolFalse, "False"},
		{fNumNaN, "NaN"}, {fNumInf, "Inf"}, {fNumZero, "Zero"}, {fNumUIntPos, "UIntPos"}, {fNumOther, "NumOther"},
		{fStrUInt, "StrUInt"}, {fStrOtherNum, "StrOtherNum"}, {fStrPrefix, "StrPrefix"},
		{fStrIdentifier, "StrIdentifier"}, {fStrOtherIdentifierParts, "StrOtherIdentifierParts"},
		{fStrOther, "StrOther"}, {fStrJSON, "StrJSON"},
		{fAbsent, "Absent"}, {fPresentData, "PresentData"}, {fPresentAccessor, "PresentAccessor"},
		{fExtendedScope, "ExtendedScope"}, {fUnknown, "Unknown"},
	}
	for _, n := range named {
		if f.has(n.bit) {
			bits = append(bits, n.name)
		}
	}
	if len(bits) == 0 {
		return "none"
	}
	return strings.Join(bits, "+")
}
