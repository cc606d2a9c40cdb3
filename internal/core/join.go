package core

import (
	"strings"

	"lattice/internal/pset"
)

// Join computes the least upper bound of a and b in the abstract value
// lattice (spec.md §4.5). An included-string set that grows past
// stringSetsBound, or any included-string set while Options.NoStringSets
// is in effect, is dropped, leaving the unbounded fuzzy string facet.
// When widen is true, the included-string set is also dropped whenever it
// grows beyond a's, and excluded-string sets that differ between a and b
// are dropped, so that iterative fixpoint computations in the embedding
// analyzer are guaranteed to terminate.
func Join(a, b *Value, widen bool) *Value {
	if a == b {
		return a
	}
	if a.IsUnknown() || b.IsUnknown() {
		return unknown
	}
	if a.IsNone() {
		return b
	}
	if b.IsNone() {
		return a
	}
	if a.IsPolymorphic() || b.IsPolymorphic() {
		if a.propertyVar == b.propertyVar {
			return a
		}
		panic(newAnalysisError("cannot join distinct polymorphic values", "Join"))
	}

	num := joinNum(a, b)
	str, setPrefix := joinStr(a, b)
	exactSingle := str != nil && !setPrefix
	excluded, included := joinStringSets(a, b, exactSingle)
	if noStringSets || included.Size() > stringSetsBound || widen && included.Size() > a.includedStrings.Size() {
		included = pset.Set[string]{}
	}
	if widen && !a.excludedStrings.Equal(b.excludedStrings) {
		excluded = pset.Set[string]{}
	}
	flags := (a.flags | b.flags).without(fStrPrefix)
	if setPrefix {
		flags = flags.with(fStrPrefix)
	}
	labels := a.objectLabels.Union(b.objectLabels)
	getters := a.getters.Union(b.getters)
	setters := a.setters.Union(b.setters)
	fvp := joinPartitioning(a.freeVariablePartitioning, b.freeVariablePartitioning)

	return canonicalize(&Value{
		flags:                    flags,
		num:                      num,
		str:                      str,
		excludedStrings:          excluded,
		includedStrings:          included,
		objectLabels:             labels,
		getters:                  getters,
		setters:                  setters,
		freeVariablePartitioning: fvp,
	})
}

// JoinAll folds Join over values left to right, returning none for an
// empty slice. widen applies to every step.
func JoinAll(values []*Value, widen bool) *Value {
	result := none
	for _, v := range values {
		result = Join(result, v, widen)
	}
	return result
}

func joinNum(a, b *Value) *float64 {
	if a.num == nil || b.num == nil {
		return nil
	}
	if *a.num != *b.num {
		return nil
	}
	return a.num
}

// joinStr computes the joined str field and whether the result is a
// prefix-string lattice element rather than a single concrete string
// (spec.md §4.5, "Strings (single/prefix)"). Two equal concrete strings
// (or equal prefixes) join to themselves; two differing concrete strings
// join to their longest shared prefix, becoming a STR_PREFIX element, or
// drop str entirely when they share no prefix at all; a concrete/prefix
// string joined with a nested prefix collapses to whichever prefix is the
// shorter of the two (the one whose represented string set is the
// superset), since join must only grow the set of strings represented;
// incompatible (non-nested) prefixes drop str and widen to category bits.
func joinStr(a, b *Value) (str *string, setPrefix bool) {
	if a.str == nil || b.str == nil {
		return nil, false
	}
	aPrefix := a.flags.has(fStrPrefix)
	bPrefix := b.flags.has(fStrPrefix)
	if *a.str == *b.str && aPrefix == bPrefix {
		return a.str, aPrefix
	}
	switch {
	case aPrefix && bPrefix:
		if strings.HasPrefix(*b.str, *a.str) {
			return a.str, true
		}
		if strings.HasPrefix(*a.str, *b.str) {
			return b.str, true
		}
	case aPrefix:
		if strings.HasPrefix(*b.str, *a.str) {
			return a.str, true
		}
	case bPrefix:
		if strings.HasPrefix(*a.str, *b.str) {
			return b.str, true
		}
	default:
		if p := sharedPrefix(*a.str, *b.str); p != "" {
			return &p, true
		}
	}
	return nil, false
}

// joinStringSets combines the fuzzy excluded/included string sets carried
// by a and b. Together with Join's widen step, resolves spec.md §9's open
// question on excludedStrings widening: the residual excluded set only
// survives when BOTH operands
// carried a non-empty excludedStrings set going in (an excluded string
// only stays excluded from the join if every operand excluded it);
// otherwise the join falls back to the unbounded fuzzy string facet with
// no excluded residue. Included sets are unioned whenever both operands
// track one; if either operand's string facet is unbounded (no tracked
// included set), the result stops tracking an enumerated set altogether.
// exactSingle is true when the join collapsed to one concrete non-prefix
// string (both operands equal, no widening): neither set is meaningful
// then, and both are dropped. A prefix result (scenario: "file_a"
// join "file_b" -> STR_PREFIX "file_") still tracks includedStrings.
func joinStringSets(a, b *Value, exactSingle bool) (excluded, included pset.Set[string]) {
	if exactSingle {
		return pset.Set[string]{}, pset.Set[string]{}
	}
	if !a.excludedStrings.IsEmpty() && !b.excludedStrings.IsEmpty() {
		excluded = a.excludedStrings.Intersect(b.excludedStrings)
	}
	aExact := a.str != nil && !a.flags.has(fStrPrefix)
	bExact := b.str != nil && !b.flags.has(fStrPrefix)
	aTracksIncluded := !a.includedStrings.IsEmpty() || aExact
	bTracksIncluded := !b.includedStrings.IsEmpty() || bExact
	if aTracksIncluded && bTracksIncluded {
		ai, bi := a.includedStrings, b.includedStrings
		if aExact {
			ai = pset.New(*a.str)
		}
		if bExact {
			bi = pset.New(*b.str)
		}
		included = ai.Union(bi)
	}
	return excluded, included
}

func joinPartitioning(a, b FreeVariablePartitioning) FreeVariablePartitioning {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return a.Join(b)
}

// JoinGettersSetters unions arg's getter and setter labels onto receiver.
// Resolves spec.md §9's open question on joining accessor values: rather
// than a symmetric join, the receiver must not already carry any
// getter/setter labels of its own — the helper exists specifically for
// widening a freshly-created accessor property onto an existing one built
// up label by label, not for merging two independently-populated
// accessor Values.
func (receiver *Value) JoinGettersSetters(arg *Value) *Value {
	if !receiver.getters.IsEmpty() || !receiver.setters.IsEmpty() {
		panic(newAnalysisError("receiver already carries getters/setters", "JoinGettersSetters"))
	}
	cp := *receiver
	cp.getters = arg.getters
	cp.setters = arg.setters
	cp.flags = cp.flags.with(arg.flags.masked(fPresentAccessor))
	return canonicalize(&cp)
}

// stringSetsBound mirrors Options.StringSetsBound (spec.md §6); Join
// consults the package-level value set by Apply so that widening
// behavior follows whatever Options the embedding analyzer loaded,
// without threading an Options value through every call.
var stringSetsBound = 10
