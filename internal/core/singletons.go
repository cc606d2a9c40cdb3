package core

// Process-wide singleton Values (spec.md §4.1): these never change after
// init and are safe to share across every analysis running in the
// process, the same way the canonicalization pools are.
var (
	none      = canonicalize(&Value{flags: 0})
	undef     = MakeUndef()
	null      = MakeNull()
	boolTrue  = MakeBool(true)
	boolFalse = MakeBool(false)
	boolAny   = MakeBoolAny()

	strAny        = MakeStrAny()
	strUInt       = canonicalize(&Value{flags: fStrUInt | fPresentData})
	strOtherNum   = canonicalize(&Value{flags: fStrOtherNum | fPresentData})
	strNumeric    = canonicalize(&Value{flags: fStrUInt | fStrOtherNum | fPresentData})
	strNotNumeric = canonicalize(&Value{flags: fStrPrefix | fStrIdentifier | fStrOtherIdentifierParts | fStrOther | fPresentData})
	strNotUInt    = canonicalize(&Value{flags: maskStrFuzzyNonPrefix | fPresentData})
	strIdent      = canonicalize(&Value{flags: fStrIdentifier | fPresentData})
	strJSON       = canonicalize(&Value{flags: fStrJSON | fPresentData})

	numAny       = MakeNumAny()
	numUInt      = canonicalize(&Value{flags: fNumZero | fNumUIntPos | fPresentData})
	numUIntPos   = canonicalize(&Value{flags: fNumUIntPos | fPresentData})
	numNotNaNInf = canonicalize(&Value{flags: fNumZero | fNumUIntPos | fNumOther | fPresentData})
	numOther     = canonicalize(&Value{flags: fNumOther | fPresentData})
	numNaN       = canonicalize(&Value{flags: fNumNaN | fPresentData})
	numInf       = canonicalize(&Value{flags: fNumInf | fPresentData})

	absent  = MakeAbsent()
	unknown = MakeUnknown()
)

// None returns the bottom of the lattice: the value representing no
// possible concrete states at all. Joining none with any Value v returns
// v unchanged (spec.md §8, algebraic law).
func None() *Value { return none }

// Undef returns the singleton Value for the concrete `undefined`.
func Undef() *Value { return undef }

// Null returns the singleton Value for the concrete `null`.
func Null() *Value { return null }

// BoolTrue returns the singleton Value for the concrete boolean true.
func BoolTrue() *Value { return boolTrue }

// BoolFalse returns the singleton Value for the concrete boolean false.
func BoolFalse() *Value { return boolFalse }

// BoolAny returns the singleton Value for an unknown boolean.
func BoolAny() *Value { return boolAny }

// StrAny returns the singleton Value for an arbitrary string.
func StrAny() *Value { return strAny }

// NumAny returns the singleton Value for an arbitrary number.
func NumAny() *Value { return numAny }

// Absent returns the singleton Value for a non-existent property slot.
func Absent() *Value { return absent }

// Unknown returns the singleton "nothing is known" Value.
func Unknown() *Value { return unknown }
