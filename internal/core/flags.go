package core

// Flags is the 32-bit facet/attribute/meta bitset carried by every Value.
// The bit layout is private; callers program against the named constants
// and composite masks below, never against raw bit positions (see
// spec.md §9, "Bitset encoding").
type Flags uint32

const (
	// Primitives.
	fUndef Flags = 1 << iota
	fNull
	fBoolTrue
	fBoolFalse

	// Numbers.
	fNumNaN
	fNumInf
	fNumZero
	fNumUIntPos
	fNumOther

	// Strings. Categories are not mutually exclusive; STR_JSON overlays any
	// of the others.
	fStrUInt
	fStrOtherNum
	fStrPrefix
	fStrIdentifier
	fStrOtherIdentifierParts
	fStrOther
	fStrJSON

	// Attributes: each a ±pair.
	fDontEnum
	fDontEnumNot
	fReadOnly
	fReadOnlyNot
	fDontDelete
	fDontDeleteNot

	// Meta.
	fAbsent
	fPresentData
	fPresentAccessor
	fExtendedScope
	fUnknown
	fModified // deprecated, preserved for representation compatibility
)

// Composite masks, per spec.md §9's "typed enum-set wrapper" guidance.
const (
	maskPrimitive = fUndef | fNull | fBoolTrue | fBoolFalse
	maskNum       = fNumNaN | fNumInf | fNumZero | fNumUIntPos | fNumOther
	maskStr       = fStrUInt | fStrOtherNum | fStrPrefix | fStrIdentifier | fStrOtherIdentifierParts | fStrOther | fStrJSON
	maskStrFuzzyNonPrefix = fStrOtherNum | fStrIdentifier | fStrOtherIdentifierParts | fStrOther
	maskAttr          = fDontEnum | fDontEnumNot | fReadOnly | fReadOnlyNot | fDontDelete | fDontDeleteNot
	maskPropertyData  = fAbsent | fPresentData | fPresentAccessor
	maskMeta          = fAbsent | fPresentData | fPresentAccessor | fExtendedScope | fUnknown | fModified
	maskNonUnknownAll = maskPrimitive | maskNum | maskStr | maskAttr | maskPropertyData | fExtendedScope | fModified
)

func (f Flags) has(bit Flags) bool   { return f&bit != 0 }
func (f Flags) with(bit Flags) Flags { return f | bit }
func (f Flags) without(bit Flags) Flags {
	return f &^ bit
}
func (f Flags) any(mask Flags) bool { return f&mask != 0 }
func (f Flags) masked(mask Flags) Flags {
	return f & mask
}
