package core

import (
	"math"

	"lattice/internal/pset"
)

// This file holds the Value constructors (spec.md §4.3). Every one follows
// the same pipeline: build a candidate struct value, let canonicalize
// intern its sub-collections and check representation invariants in debug
// builds, then hand the result through the shared pool so structurally
// equal Values collapse to one *Value.

// MakeAbsent returns the Value describing a property slot that does not
// exist.
func MakeAbsent() *Value {
	return canonicalize(&Value{flags: fAbsent})
}

// MakeUnknown returns the Value describing "nothing is known" — the top
// of the lattice restricted to the UNKNOWN facet (spec.md §3.1).
func MakeUnknown() *Value {
	return canonicalize(&Value{flags: fUnknown})
}

// MakeUndef returns the Value for the concrete `undefined` primitive.
func MakeUndef() *Value {
	return canonicalize(&Value{flags: fUndef | fPresentData})
}

// MakeNull returns the Value for the concrete `null` primitive.
func MakeNull() *Value {
	return canonicalize(&Value{flags: fNull | fPresentData})
}

// MakeBool returns the Value for a concrete boolean.
func MakeBool(b bool) *Value {
	if b {
		return canonicalize(&Value{flags: fBoolTrue | fPresentData})
	}
	return canonicalize(&Value{flags: fBoolFalse | fPresentData})
}

// MakeBoolAny returns the Value describing an unknown boolean (true or
// false, nothing more specific).
func MakeBoolAny() *Value {
	return canonicalize(&Value{flags: fBoolTrue | fBoolFalse | fPresentData})
}

// classifyNum returns the single number-facet bit n belongs to (NaN, ±Inf,
// zero, positive-uint, other). Shared between MakeNum and the parameterized
// IsMaybeNum query so the two never drift apart (spec.md §3.2, §4.4).
func classifyNum(n float64) Flags {
	switch {
	case math.IsNaN(n):
		return fNumNaN
	case math.IsInf(n, 0):
		return fNumInf
	case n == 0:
		return fNumZero
	case n > 0 && n == math.Trunc(n) && n <= maxUInt32:
		return fNumUIntPos
	default:
		return fNumOther
	}
}

// MakeNum returns the Value for a concrete number, classifying it into
// the appropriate number facet (NaN, ±Inf, zero, positive-uint, other).
func MakeNum(n float64) *Value {
	switch classifyNum(n) {
	case fNumNaN:
		return canonicalize(&Value{flags: fNumNaN | fPresentData})
	case fNumInf:
		return canonicalize(&Value{flags: fNumInf | fPresentData})
	case fNumZero:
		return canonicalize(&Value{flags: fNumZero | fPresentData, num: floatPtr(0)})
	default:
		return canonicalize(&Value{flags: classifyNum(n) | fPresentData, num: floatPtr(n)})
	}
}

// MakeNumAny returns the Value describing an arbitrary number, with no
// concrete value pinned down.
func MakeNumAny() *Value {
	return canonicalize(&Value{flags: maskNum | fPresentData})
}

// MakeStr returns the Value for a concrete string, classifying it into
// the appropriate string facet(s) via classifyStr.
func MakeStr(s string) *Value {
	return canonicalize(&Value{flags: classifyStr(s) | fPresentData, str: &s})
}

// MakeStrAny returns the Value describing an arbitrary string.
func MakeStrAny() *Value {
	return canonicalize(&Value{flags: maskStr | fPresentData})
}

// MakeStrExcluding returns the Value describing any string except those
// in excluded (spec.md §3.2, "excluded strings").
func MakeStrExcluding(excluded pset.Set[string]) *Value {
	if excluded.IsEmpty() {
		return MakeStrAny()
	}
	return canonicalize(&Value{flags: maskStr | fPresentData, excludedStrings: excluded})
}

// MakeStrIncluding returns the Value describing exactly the strings in
// included, within Options.StringSetsBound (enforcement is the caller's
// responsibility; the core stores whatever set it is given).
func MakeStrIncluding(included pset.Set[string]) *Value {
	if included.IsEmpty() {
		panic(newAnalysisError("empty included-string set", "MakeStrIncluding"))
	}
	var flags Flags
	included.Each(func(s string) { flags = flags.with(classifyStr(s)) })
	return canonicalize(&Value{flags: flags | fPresentData, includedStrings: included})
}

// MakeStrPrefix returns the Value describing every string that begins with
// the given (non-empty) prefix — the prefix-string lattice element join
// produces when two distinct concrete strings share a common leading
// substring (spec.md §3.2, §4.5).
func MakeStrPrefix(prefix string) *Value {
	if prefix == "" {
		panic(newAnalysisError("empty string prefix", "MakeStrPrefix"))
	}
	return canonicalize(&Value{flags: fStrPrefix | classifyStr(prefix) | fPresentData, str: &prefix})
}

// MakeObjectLabel returns the Value naming a single object label.
func MakeObjectLabel(label ObjectLabel) *Value {
	if label == nil {
		panic(&NullPointerError{Where: "MakeObjectLabel"})
	}
	return MakeObjectLabels(pset.New(label))
}

// MakeObjectLabels returns the Value naming the given (non-empty) set of
// object labels.
func MakeObjectLabels(labels pset.Set[ObjectLabel]) *Value {
	if labels.IsEmpty() {
		panic(newAnalysisError("empty object-label set", "MakeObjectLabels"))
	}
	return canonicalize(&Value{flags: fPresentData, objectLabels: labels})
}

// MakeGetter returns the accessor Value whose getter side is the object
// label backing it.
func MakeGetter(label ObjectLabel) *Value {
	if label == nil {
		panic(&NullPointerError{Where: "MakeGetter"})
	}
	return canonicalize(&Value{flags: fPresentAccessor, getters: pset.New(label)})
}

// MakeSetter returns the accessor Value whose setter side is the object
// label backing it.
func MakeSetter(label ObjectLabel) *Value {
	if label == nil {
		panic(&NullPointerError{Where: "MakeSetter"})
	}
	return canonicalize(&Value{flags: fPresentAccessor, setters: pset.New(label)})
}

// MakeGetterSetter returns the accessor Value combining both sides.
func MakeGetterSetter(getters, setters pset.Set[ObjectLabel]) *Value {
	return canonicalize(&Value{flags: fPresentAccessor, getters: getters, setters: setters})
}

// MakePropertyVar returns the polymorphic Value that defers to "the value
// of the property named by" prop (spec.md §3.4).
func MakePropertyVar(prop ObjectProperty) *Value {
	if prop == nil {
		panic(&NullPointerError{Where: "MakePropertyVar"})
	}
	if polymorphicDisabled {
		panic(newAnalysisError("polymorphic values disabled by Options", "MakePropertyVar"))
	}
	return canonicalize(&Value{flags: fPresentData, propertyVar: prop})
}

// WithAttributes returns a Value identical to v but with its DontEnum/
// ReadOnly/DontDelete attribute bits replaced by attrs (which must be a
// subset of maskAttr).
func (v *Value) WithAttributes(attrs Flags) *Value {
	cp := *v
	cp.flags = cp.flags.without(maskAttr).with(attrs & maskAttr)
	return canonicalize(&cp)
}

// WithExtendedScope returns a Value identical to v but flagged as
// belonging to an extended (with-statement) scope.
func (v *Value) WithExtendedScope() *Value {
	if v.flags.has(fExtendedScope) {
		return v
	}
	cp := *v
	cp.flags = cp.flags.with(fExtendedScope)
	return canonicalize(&cp)
}

// WithFreeVariablePartitioning returns a Value identical to v but carrying
// the given partitioning metadata.
func (v *Value) WithFreeVariablePartitioning(p FreeVariablePartitioning) *Value {
	cp := *v
	cp.freeVariablePartitioning = p
	return canonicalize(&cp)
}

func floatPtr(f float64) *float64 { return &f }
