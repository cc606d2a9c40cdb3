package core

// debugInvariantsEnabled gates the representation-invariant checks run at
// the end of every construction (spec.md §4.4, "invariants are checked
// only in debug mode"). It is off by default; SetDebugInvariants is
// intended to be called once, early, by an embedding analyzer's test
// harness or by Apply.
var debugInvariantsEnabled = false

// SetDebugInvariants toggles the representation-invariant checks performed
// by every constructor. Not safe to call concurrently with construction.
func SetDebugInvariants(enabled bool) {
	debugInvariantsEnabled = enabled
}

// checkInvariants panics if v violates one of the representation
// invariants spec.md §4.4 and §8 require of every constructed Value. It
// is only ever called when debugInvariantsEnabled is true, so a violation
// here always indicates a bug in a constructor, never bad analyzer input.
func checkInvariants(v *Value) {
	if v.flags.has(fUnknown) && v.flags.masked(maskNonUnknownAll) != 0 {
		panic("core: unknown Value carries non-unknown facets")
	}
	if v.flags.has(fAbsent) && v.flags.any(fPresentData|fPresentAccessor) {
		panic("core: a Value cannot be both absent and present")
	}
	if v.num != nil && !v.flags.has(fNumOther) && !v.flags.has(fNumUIntPos) && !v.flags.has(fNumZero) {
		panic("core: concrete num set without a matching number facet")
	}
	if v.str != nil && v.flags.masked(maskStr) == 0 {
		panic("core: concrete str set without a matching string facet")
	}
	if !v.getters.IsEmpty() || !v.setters.IsEmpty() {
		if v.flags.masked(maskPrimitive|maskNum|maskStr) != 0 {
			panic("core: accessor Value carries primitive/number/string facets")
		}
	}
	if !v.excludedStrings.IsEmpty() && !v.includedStrings.IsEmpty() {
		panic("core: a Value cannot carry both excluded and included string sets")
	}
	if v.str != nil && !v.excludedStrings.IsEmpty() {
		panic("core: a concrete string cannot also carry an excluded-string set")
	}
}
