package core

import "strings"

// This file is the facet-predicate family used throughout join, restrict,
// and diagnostics to ask what a Value represents without reaching into
// its fields directly (spec.md §4.4).

// IsNone reports whether v is the bottom-of-lattice empty Value.
func (v *Value) IsNone() bool { return v.flags == 0 && v.propertyVar == nil }

// IsUnknown reports whether v is the "nothing is known" top Value.
func (v *Value) IsUnknown() bool { return v.flags.has(fUnknown) }

// IsPolymorphic reports whether v defers to a named property slot rather
// than describing a facet directly.
func (v *Value) IsPolymorphic() bool { return v.propertyVar != nil }

// IsMaybeAbsent reports whether v's possible states include "the property
// does not exist".
func (v *Value) IsMaybeAbsent() bool { return v.flags.has(fAbsent) }

// IsNotAbsent reports whether every state v describes is present.
func (v *Value) IsNotAbsent() bool { return !v.flags.has(fAbsent) }

// IsMaybePresent reports whether v's possible states include a present
// property (data or accessor).
func (v *Value) IsMaybePresent() bool {
	return v.flags.any(fPresentData | fPresentAccessor)
}

// IsMaybePresentData reports whether v's possible states include a
// present data property.
func (v *Value) IsMaybePresentData() bool { return v.flags.has(fPresentData) }

// IsMaybePresentAccessor reports whether v's possible states include a
// present accessor property.
func (v *Value) IsMaybePresentAccessor() bool { return v.flags.has(fPresentAccessor) }

// IsMaybeGetter reports whether v carries at least one getter label.
func (v *Value) IsMaybeGetter() bool { return !v.getters.IsEmpty() }

// IsMaybeSetter reports whether v carries at least one setter label.
func (v *Value) IsMaybeSetter() bool { return !v.setters.IsEmpty() }

// IsMaybeObject reports whether v's possible states include at least one
// non-symbol object/function/array label.
func (v *Value) IsMaybeObject() bool {
	maybe := false
	v.objectLabels.Each(func(l ObjectLabel) {
		if l.Kind() != ObjectLabelSymbol {
			maybe = true
		}
	})
	return maybe
}

// IsMaybeSymbol reports whether v's possible states include at least one
// symbol label.
func (v *Value) IsMaybeSymbol() bool {
	maybe := false
	v.objectLabels.Each(func(l ObjectLabel) {
		if l.Kind() == ObjectLabelSymbol {
			maybe = true
		}
	})
	return maybe
}

// IsMaybeFunction reports whether v's possible states include at least
// one function label.
func (v *Value) IsMaybeFunction() bool {
	maybe := false
	v.objectLabels.Each(func(l ObjectLabel) {
		if l.Kind() == ObjectLabelFunction {
			maybe = true
		}
	})
	return maybe
}

// IsMaybeNum reports whether v's possible states include a number.
func (v *Value) IsMaybeNum() bool { return v.flags.any(maskNum) }

// IsMaybeStr reports whether v's possible states include any string.
func (v *Value) IsMaybeStr() bool { return v.flags.any(maskStr) }

// IsMaybeExactStr reports whether v represents exactly one concrete
// string, and returns it.
func (v *Value) IsMaybeExactStr() (string, bool) {
	if v.flags.has(fStrPrefix) {
		return "", false
	}
	return v.Str()
}

// IsMaybeStrValue reports whether s is one of the concrete strings v may
// represent (spec.md §4.4, "isMaybeStr(s)"): s is possible when STR_JSON
// is set and s looks like JSON, or v pins down a concrete/prefix string
// matching s, or s's own category bit is among v's string facets — and,
// in every case, s is not excluded and, if v tracks an enumerated
// included-string set, s is a member of it.
func (v *Value) IsMaybeStrValue(s string) bool {
	possible := false
	if v.flags.has(fStrJSON) {
		if isJSON, ok := looksLikeJSON(s); ok && isJSON {
			possible = true
		}
	}
	if !possible {
		switch {
		case v.str != nil && v.flags.has(fStrPrefix):
			possible = strings.HasPrefix(s, *v.str)
		case v.str != nil:
			possible = s == *v.str
		default:
			possible = v.flags.masked(classifyStr(s).without(fStrJSON)) != 0
		}
	}
	if !possible {
		return false
	}
	if v.excludedStrings.Contains(s) {
		return false
	}
	if !v.includedStrings.IsEmpty() && !v.includedStrings.Contains(s) {
		return false
	}
	return true
}

// IsMaybeNumValue reports whether k is one of the concrete numbers v may
// represent (spec.md §4.4, §8 scenario 6): either v pins down exactly k,
// or k's number-facet category is among v's fuzzy number facets.
func (v *Value) IsMaybeNumValue(k float64) bool {
	if v.num != nil {
		return *v.num == k
	}
	return v.flags.has(classifyNum(k))
}

// IsMaybeTrue reports whether v's possible states include the boolean
// true.
func (v *Value) IsMaybeTrue() bool { return v.flags.has(fBoolTrue) }

// IsMaybeFalse reports whether v's possible states include the boolean
// false.
func (v *Value) IsMaybeFalse() bool { return v.flags.has(fBoolFalse) }

// IsMaybeUndef reports whether v's possible states include `undefined`.
func (v *Value) IsMaybeUndef() bool { return v.flags.has(fUndef) }

// IsMaybeNull reports whether v's possible states include `null`.
func (v *Value) IsMaybeNull() bool { return v.flags.has(fNull) }
