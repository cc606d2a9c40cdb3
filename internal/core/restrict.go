package core

import "lattice/internal/pset"

// This file is the restriction-operator family (spec.md §4.6): each
// operator narrows a Value to the subset of its states consistent with
// some runtime test (typeof, truthiness, property presence, ...). Every
// operator is a pure function of its input; none mutate the receiver.

// RestrictToNotAbsent drops the "property does not exist" state.
func RestrictToNotAbsent(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToNotAbsent")
	if !v.flags.has(fAbsent) {
		return v
	}
	cp := *v
	cp.flags = cp.flags.without(fAbsent)
	return canonicalize(&cp)
}

// RestrictToNotNullNotUndef drops the null and undefined states.
func RestrictToNotNullNotUndef(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToNotNullNotUndef")
	if !v.flags.any(fNull | fUndef) {
		return v
	}
	cp := *v
	cp.flags = cp.flags.without(fNull | fUndef)
	return canonicalize(&cp)
}

// RestrictToBool drops every non-boolean state.
func RestrictToBool(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToBool")
	return restrictToFlags(v, fBoolTrue|fBoolFalse)
}

// RestrictToTruthy drops every state that is always falsy: false, 0, NaN,
// "", null, undefined, and the absent state.
func RestrictToTruthy(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToTruthy")
	cp := *v
	cp.flags = cp.flags.without(fBoolFalse | fNumZero | fNumNaN | fNull | fUndef | fAbsent)
	if cp.str != nil && *cp.str == "" {
		return none
	}
	if cp.num != nil && *cp.num == 0 {
		cp.num = nil
	}
	if cp.str == nil && cp.IsMaybeStrValue("") {
		return RestrictToNotStrings(canonicalize(&cp), pset.New(""))
	}
	return canonicalize(&cp)
}

// RestrictToFalsy drops every state that is never falsy.
func RestrictToFalsy(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToFalsy")
	cp := *v
	cp.flags = cp.flags.masked(fBoolFalse|fNumZero|fNumNaN|fNull|fUndef|fAbsent|maskAttr|maskPropertyData|fExtendedScope) | (cp.flags & fModified)
	cp.num = nil
	if v.IsMaybeStrValue("") {
		empty := ""
		cp.str = &empty
		cp.flags = cp.flags.with(classifyStr(""))
	} else {
		cp.str = nil
	}
	cp.objectLabels = pset.Set[ObjectLabel]{}
	cp.getters = pset.Set[ObjectLabel]{}
	cp.setters = pset.Set[ObjectLabel]{}
	cp.excludedStrings = pset.Set[string]{}
	cp.includedStrings = pset.Set[string]{}
	if cp.flags.masked(fBoolFalse|fNumZero|fNumNaN|fNull|fUndef|fAbsent|maskStr) == 0 {
		return none
	}
	return canonicalize(&cp)
}

// RestrictToNum drops every non-number state.
func RestrictToNum(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToNum")
	checkNoGettersSetters(v, "RestrictToNum")
	if v.flags.masked(maskNum) == 0 {
		return none
	}
	cp := *v
	cp.flags = cp.flags.masked(maskNum | maskPropertyData | maskAttr | fExtendedScope | fModified)
	cp.str = nil
	cp.objectLabels = pset.Set[ObjectLabel]{}
	cp.getters = pset.Set[ObjectLabel]{}
	cp.setters = pset.Set[ObjectLabel]{}
	cp.excludedStrings = pset.Set[string]{}
	cp.includedStrings = pset.Set[string]{}
	return canonicalize(&cp)
}

// RestrictToStr drops every non-string state.
func RestrictToStr(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToStr")
	checkNoGettersSetters(v, "RestrictToStr")
	if v.flags.masked(maskStr) == 0 {
		return none
	}
	cp := *v
	cp.flags = cp.flags.masked(maskStr | maskPropertyData | maskAttr | fExtendedScope | fModified)
	cp.num = nil
	cp.objectLabels = pset.Set[ObjectLabel]{}
	cp.getters = pset.Set[ObjectLabel]{}
	cp.setters = pset.Set[ObjectLabel]{}
	return canonicalize(&cp)
}

// RestrictToStrNumeric drops every string state that is not numeric
// (UInt or OtherNum).
func RestrictToStrNumeric(v *Value) *Value {
	return restrictStrToMask(v, fStrUInt|fStrOtherNum, "RestrictToStrNumeric")
}

// RestrictToStrNotNumeric drops UInt and OtherNum string states.
func RestrictToStrNotNumeric(v *Value) *Value {
	return restrictStrAwayFromMask(v, fStrUInt|fStrOtherNum, "RestrictToStrNotNumeric")
}

// RestrictToNotStrUInt drops the UInt string state.
func RestrictToNotStrUInt(v *Value) *Value {
	return restrictStrAwayFromMask(v, fStrUInt, "RestrictToNotStrUInt")
}

// RestrictToNotStrOtherNum drops the OtherNum string state.
func RestrictToNotStrOtherNum(v *Value) *Value {
	return restrictStrAwayFromMask(v, fStrOtherNum, "RestrictToNotStrOtherNum")
}

// RestrictToNotStrIdentifierParts drops the Identifier and
// OtherIdentifierParts string states.
func RestrictToNotStrIdentifierParts(v *Value) *Value {
	return restrictStrAwayFromMask(v, fStrIdentifier|fStrOtherIdentifierParts, "RestrictToNotStrIdentifierParts")
}

// RestrictToNotStrPrefix drops the Prefix string state.
func RestrictToNotStrPrefix(v *Value) *Value {
	return restrictStrAwayFromMask(v, fStrPrefix, "RestrictToNotStrPrefix")
}

// RestrictToNotStrings removes any concrete string in excluded from v's
// possible states. When Options.NoStringSets is set, this degrades to a
// no-op returning v unchanged (spec.md §9 open question): tracking an
// excluded-string residue is itself disabled, so there is nothing to
// narrow.
func RestrictToNotStrings(v *Value, excluded pset.Set[string]) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToNotStrings")
	if noStringSets {
		return v
	}
	if v.str != nil {
		if excluded.Contains(*v.str) {
			return none
		}
		return v
	}
	if excluded.IsEmpty() {
		return v
	}
	cp := *v
	if !cp.includedStrings.IsEmpty() {
		cp.includedStrings = cp.includedStrings.Subtract(excluded)
		if cp.includedStrings.IsEmpty() {
			return none
		}
		if cp.includedStrings.Size() == 1 {
			s := cp.includedStrings.ToSlice()[0]
			cp.str = &s
			cp.flags = cp.flags.without(maskStr).with(classifyStr(s))
			cp.includedStrings = pset.Set[string]{}
		}
	} else {
		cp.excludedStrings = cp.excludedStrings.Union(excluded)
	}
	return canonicalize(&cp)
}

// RestrictToGetter drops every state except "this is an accessor property
// with a getter".
func RestrictToGetter(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToGetter")
	if v.getters.IsEmpty() {
		return none
	}
	return canonicalize(&Value{flags: fPresentAccessor | v.flags.masked(maskAttr|fExtendedScope), getters: v.getters})
}

// RestrictToSetter drops every state except "this is an accessor property
// with a setter".
func RestrictToSetter(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToSetter")
	if v.setters.IsEmpty() {
		return none
	}
	return canonicalize(&Value{flags: fPresentAccessor | v.flags.masked(maskAttr|fExtendedScope), setters: v.setters})
}

// RestrictToGetterSetter drops every state except "this is an accessor
// property", keeping both getter and setter labels.
func RestrictToGetterSetter(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToGetterSetter")
	if v.getters.IsEmpty() && v.setters.IsEmpty() {
		return none
	}
	return canonicalize(&Value{
		flags:   fPresentAccessor | v.flags.masked(maskAttr|fExtendedScope),
		getters: v.getters,
		setters: v.setters,
	})
}

// RestrictToNotGetterSetter drops the accessor-property state, keeping
// only data states.
func RestrictToNotGetterSetter(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToNotGetterSetter")
	if !v.flags.has(fPresentAccessor) {
		return v
	}
	cp := *v
	cp.flags = cp.flags.without(fPresentAccessor)
	cp.getters = pset.Set[ObjectLabel]{}
	cp.setters = pset.Set[ObjectLabel]{}
	return canonicalize(&cp)
}

// RestrictToNonSymbolObject drops every state except "this is an object,
// function, or array" (not a symbol).
func RestrictToNonSymbolObject(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToNonSymbolObject")
	kept := v.objectLabels.RemoveIf(func(l ObjectLabel) bool { return l.Kind() == ObjectLabelSymbol })
	if kept.IsEmpty() {
		return none
	}
	return canonicalize(&Value{flags: fPresentData | v.flags.masked(maskAttr|fExtendedScope), objectLabels: kept})
}

// RestrictToSymbol drops every state except "this is a symbol".
func RestrictToSymbol(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToSymbol")
	kept := v.objectLabels.RemoveIf(func(l ObjectLabel) bool { return l.Kind() != ObjectLabelSymbol })
	if kept.IsEmpty() {
		return none
	}
	return canonicalize(&Value{flags: fPresentData | v.flags.masked(maskAttr|fExtendedScope), objectLabels: kept})
}

// RestrictToFunction drops every state except "this is a function".
func RestrictToFunction(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToFunction")
	kept := v.objectLabels.RemoveIf(func(l ObjectLabel) bool { return l.Kind() != ObjectLabelFunction })
	if kept.IsEmpty() {
		return none
	}
	return canonicalize(&Value{flags: fPresentData | v.flags.masked(maskAttr|fExtendedScope), objectLabels: kept})
}

// RestrictToNotFunction drops the function-label states, keeping every
// other object/array/symbol label and every primitive facet.
func RestrictToNotFunction(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToNotFunction")
	kept := v.objectLabels.RemoveIf(func(l ObjectLabel) bool { return l.Kind() == ObjectLabelFunction })
	if kept.Equal(v.objectLabels) {
		return v
	}
	cp := *v
	cp.objectLabels = kept
	if kept.IsEmpty() && v.flags.masked(maskPrimitive|maskNum|maskStr) == 0 && cp.getters.IsEmpty() && cp.setters.IsEmpty() {
		return none
	}
	return canonicalize(&cp)
}

// RestrictToTypeofObject drops every state whose `typeof` is not
// "object": keeps null, plain objects and arrays, drops functions and
// symbols.
func RestrictToTypeofObject(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToTypeofObject")
	kept := v.objectLabels.RemoveIf(func(l ObjectLabel) bool {
		return l.Kind() == ObjectLabelFunction || l.Kind() == ObjectLabelSymbol
	})
	flags := v.flags.masked(fNull | maskAttr | fExtendedScope)
	if kept.IsEmpty() && flags == 0 {
		return none
	}
	return canonicalize(&Value{flags: flags | fPresentData, objectLabels: kept})
}

// RestrictToNotTypeofObject drops null and non-function/symbol object
// labels, keeping every other facet.
func RestrictToNotTypeofObject(v *Value) *Value {
	checkNotPolymorphicOrUnknown(v, "RestrictToNotTypeofObject")
	kept := v.objectLabels.RemoveIf(func(l ObjectLabel) bool {
		return l.Kind() != ObjectLabelFunction && l.Kind() != ObjectLabelSymbol
	})
	cp := *v
	cp.flags = cp.flags.without(fNull)
	cp.objectLabels = kept
	return canonicalize(&cp)
}

// restrictToFlags narrows v down to exactly the primitive facets in
// keepMask (a subset of maskPrimitive), dropping every number, string,
// and object-label state entirely.
func restrictToFlags(v *Value, keepMask Flags) *Value {
	kept := v.flags.masked(keepMask)
	if kept == 0 {
		return none
	}
	cp := *v
	cp.flags = kept | cp.flags.masked(maskAttr|maskPropertyData|fExtendedScope|fModified)
	cp.num = nil
	cp.str = nil
	cp.objectLabels = pset.Set[ObjectLabel]{}
	cp.getters = pset.Set[ObjectLabel]{}
	cp.setters = pset.Set[ObjectLabel]{}
	cp.excludedStrings = pset.Set[string]{}
	cp.includedStrings = pset.Set[string]{}
	return canonicalize(&cp)
}

func restrictStrToMask(v *Value, mask Flags, op string) *Value {
	checkNotPolymorphicOrUnknown(v, op)
	if v.str != nil {
		if v.flags.masked(mask) != 0 {
			return v
		}
		return none
	}
	kept := v.flags.masked(mask)
	if kept == 0 {
		return none
	}
	cp := *v
	cp.flags = cp.flags.masked(maskPropertyData|maskAttr|fExtendedScope|fModified) | kept
	return canonicalize(&cp)
}

func restrictStrAwayFromMask(v *Value, mask Flags, op string) *Value {
	checkNotPolymorphicOrUnknown(v, op)
	if !v.flags.any(mask) {
		return v
	}
	cp := *v
	cp.flags = cp.flags.without(mask)
	if v.str != nil || cp.flags.masked(maskStr) == 0 {
		cp.flags = cp.flags.without(maskStr)
		cp.str = nil
		cp.excludedStrings = pset.Set[string]{}
		cp.includedStrings = pset.Set[string]{}
	}
	if cp.flags.masked(maskPrimitive|maskNum|maskStr) == 0 && cp.objectLabels.IsEmpty() && cp.getters.IsEmpty() && cp.setters.IsEmpty() {
		return none
	}
	return canonicalize(&cp)
}

// noStringSets mirrors Options.NoStringSets; set by Apply.
var noStringSets = false
