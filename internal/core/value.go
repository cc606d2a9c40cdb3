package core

import (
	"hash/maphash"

	"lattice/internal/canon"
	"lattice/internal/pset"
)

// Value is an immutable abstract value: a finite description of the set of
// concrete runtime values (or property states) it represents. Every Value
// in normal use is canonical: two Values describing the same abstract
// state are the same *Value, so Equal degenerates to a pointer comparison
// and HashCode is only ever computed once, at construction (spec.md §3).
//
// The zero value is not meaningful; Values are only produced by the
// constructors in construct.go, which route every result through
// canonicalize before handing it back.
type Value struct {
	flags Flags

	// num holds the single concrete number the Value represents, or nil
	// if the Value does not pin down an exact number (spec.md §3.2).
	num *float64

	// str holds the single concrete string the Value represents, or nil
	// if the Value does not pin down an exact string.
	str *string

	// excludedStrings, when non-empty, lists concrete strings the Value
	// explicitly does NOT represent, narrowing an otherwise-fuzzy string
	// facet (spec.md §3.2, §9). includedStrings is its dual: present only
	// for small enumerated string sets no larger than the configured bound.
	excludedStrings pset.Set[string]
	includedStrings pset.Set[string]

	// objectLabels is the (possibly empty) set of object/function/array/
	// symbol labels this Value may denote.
	objectLabels pset.Set[ObjectLabel]

	// getters and setters name the object labels backing this Value when
	// it describes an accessor property (spec.md §3.3); both are empty
	// for every other kind of Value.
	getters pset.Set[ObjectLabel]
	setters pset.Set[ObjectLabel]

	// freeVariablePartitioning is opaque partitioning metadata threaded
	// through from the embedding analyzer; nil unless that analyzer uses
	// it (spec.md §6).
	freeVariablePartitioning FreeVariablePartitioning

	// propertyVar, when non-nil, names the property slot a polymorphic
	// "the value of the property named by var" Value defers to
	// (spec.md §3.4).
	propertyVar ObjectProperty

	// hashcode is computed once, by hashValue, at construction time and
	// never recomputed.
	hashcode uint32
}

var valuePool = canon.NewPool[*Value]()
var labelSetPool = canon.NewPool[pset.Set[ObjectLabel]]()
var stringSetPool = canon.NewPool[pset.Set[string]]()

var valueHashSeed = maphash.MakeSeed()

// canonicalizeLabelSet interns a set of object labels so that structurally
// equal label sets collapse to one shared backing map (spec.md §4.2).
func canonicalizeLabelSet(s pset.Set[ObjectLabel]) pset.Set[ObjectLabel] {
	if s.IsEmpty() {
		return pset.Set[ObjectLabel]{}
	}
	return labelSetPool.Canonicalize(s)
}

// canonicalizeStringSet interns a set of strings for the same reason.
func canonicalizeStringSet(s pset.Set[string]) pset.Set[string] {
	if s.IsEmpty() {
		return pset.Set[string]{}
	}
	return stringSetPool.Canonicalize(s)
}

// canonicalize interns v into the shared value pool, returning the
// canonical representative for v's structural contents. Every constructor
// in construct.go must route its result through this before returning.
func canonicalize(v *Value) *Value {
	v.objectLabels = canonicalizeLabelSet(v.objectLabels)
	v.getters = canonicalizeLabelSet(v.getters)
	v.setters = canonicalizeLabelSet(v.setters)
	v.excludedStrings = canonicalizeStringSet(v.excludedStrings)
	v.includedStrings = canonicalizeStringSet(v.includedStrings)
	v.hashcode = hashValue(v)
	if debugInvariantsEnabled {
		checkInvariants(v)
	}
	return valuePool.Canonicalize(v)
}

func hashValue(v *Value) uint32 {
	var acc uint64
	acc ^= uint64(v.flags)
	if v.num != nil {
		acc ^= maphash.Comparable(valueHashSeed, *v.num)
	}
	if v.str != nil {
		acc ^= maphash.Comparable(valueHashSeed, *v.str)
	}
	acc ^= uint64(v.excludedStrings.HashCode())
	acc ^= uint64(v.includedStrings.HashCode()) << 1
	acc ^= uint64(v.objectLabels.HashCode()) << 2
	acc ^= uint64(v.getters.HashCode()) << 3
	acc ^= uint64(v.setters.HashCode()) << 4
	return uint32(acc) ^ uint32(acc>>32)
}

// Equal implements canon.Internable[*Value]: two Values are structurally
// equal when every field matches. Only ever invoked on not-yet-canonical
// Values being interned; canonical Values should be compared with ==.
func (v *Value) Equal(other *Value) bool {
	if v == other {
		return true
	}
	if v.flags != other.flags {
		return false
	}
	if !equalFloatPtr(v.num, other.num) {
		return false
	}
	if !equalStringPtr(v.str, other.str) {
		return false
	}
	if !v.excludedStrings.Equal(other.excludedStrings) {
		return false
	}
	if !v.includedStrings.Equal(other.includedStrings) {
		return false
	}
	if !v.objectLabels.Equal(other.objectLabels) {
		return false
	}
	if !v.getters.Equal(other.getters) {
		return false
	}
	if !v.setters.Equal(other.setters) {
		return false
	}
	if v.propertyVar != other.propertyVar {
		return false
	}
	return v.freeVariablePartitioning == other.freeVariablePartitioning
}

// HashCode implements canon.Internable[*Value].
func (v *Value) HashCode() uint32 {
	return v.hashcode
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	// NaN is canonicalized into the FLAGS facet (fNumNaN), never stored
	// here, so ordinary equality is safe.
	return *a == *b
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Accessors. The core's own join/restrict/diagnostics code lives in the
// same package and could reach into the fields directly, but routes
// through these anyway so that a future field reshuffle only touches one
// place (mirrors the teacher's habit of small read-only getters on its
// schema types).

func (v *Value) Flags() Flags { return v.flags }

// Num returns the concrete number the Value pins down, and whether one is
// present.
func (v *Value) Num() (float64, bool) {
	if v.num == nil {
		return 0, false
	}
	return *v.num, true
}

// Str returns the concrete string the Value pins down (for a prefix-string
// Value, the common prefix), and whether one is present.
func (v *Value) Str() (string, bool) {
	if v.str == nil {
		return "", false
	}
	return *v.str, true
}

func (v *Value) ExcludedStrings() pset.Set[string]   { return v.excludedStrings }
func (v *Value) IncludedStrings() pset.Set[string]   { return v.includedStrings }
func (v *Value) ObjectLabels() pset.Set[ObjectLabel] { return v.objectLabels }
func (v *Value) Getters() pset.Set[ObjectLabel]      { return v.getters }
func (v *Value) Setters() pset.Set[ObjectLabel]      { return v.setters }
func (v *Value) PropertyVar() (ObjectProperty, bool) { return v.propertyVar, v.propertyVar != nil }
func (v *Value) FreeVariablePartitioning() FreeVariablePartitioning {
	return v.freeVariablePartitioning
}
