package core

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Options bundles the small set of process-wide knobs spec.md §6 grants
// the embedding analyzer control over. Unlike almost everything else in
// this package, Options is ordinary mutable configuration, loaded once at
// startup the way the teacher loads its validation-rule configuration.
type Options struct {
	// DebugInvariantsEnabled turns on the representation-invariant checks
	// performed by every constructor (spec.md §4.4).
	DebugInvariantsEnabled bool `toml:"debug_invariants_enabled"`

	// PolymorphicDisabled, when true, forbids MakePropertyVar: the
	// embedding analyzer is asserting it never needs polymorphic values.
	PolymorphicDisabled bool `toml:"polymorphic_disabled"`

	// NoStringSets turns off string-set tracking: Join keeps no
	// included-string set and RestrictToNotStrings becomes a no-op
	// (spec.md §9 open question). Excluded-string sets built with
	// MakeStrExcluding are still carried.
	NoStringSets bool `toml:"no_string_sets"`

	// PropagateDeadFlow is recorded by Apply. Join does not consult it:
	// joining none with any Value v yields v either way.
	PropagateDeadFlow bool `toml:"propagate_dead_flow"`

	// StringSetsBound caps the size of an included-string set: Join drops
	// a set that grows past it, leaving the unbounded fuzzy string facet.
	StringSetsBound int `toml:"string_sets_bound"`
}

// DefaultOptions returns the Options a fresh process starts with:
// invariant checking off (it is a debug-build aid, not a default-on
// safety net), string sets enabled, a conservative bound of 10.
func DefaultOptions() Options {
	return Options{
		DebugInvariantsEnabled: false,
		PolymorphicDisabled:    false,
		NoStringSets:           false,
		PropagateDeadFlow:      false,
		StringSetsBound:        10,
	}
}

// LoadOptions reads Options from a TOML file at path, starting from
// DefaultOptions so that an unset field in the file keeps its default.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if _, err := os.Stat(path); err != nil {
		return Options{}, fmt.Errorf("core: reading options file %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, fmt.Errorf("core: decoding options file %s: %w", path, err)
	}
	return opts, nil
}

// Apply installs opts as the process-wide configuration consulted by
// Join, the restriction operators, and the constructors. Not safe to call
// concurrently with any in-flight construction or join.
func Apply(opts Options) {
	SetDebugInvariants(opts.DebugInvariantsEnabled)
	noStringSets = opts.NoStringSets
	polymorphicDisabled = opts.PolymorphicDisabled
	propagateDeadFlow = opts.PropagateDeadFlow
	if opts.StringSetsBound > 0 {
		stringSetsBound = opts.StringSetsBound
	}
}

var (
	polymorphicDisabled = false
	propagateDeadFlow   = false
)
