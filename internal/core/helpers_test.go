package core

import "lattice/internal/pset"

// fakeLabel is a minimal ObjectLabel stand-in for tests; a real embedding
// analyzer's heap-allocation-site type would carry far more.
type fakeLabel struct {
	kind ObjectLabelKind
	name string
}

func (l *fakeLabel) Kind() ObjectLabelKind      { return l.kind }
func (l *fakeLabel) IsSingleton() bool          { return false }
func (l *fakeLabel) IsHostObject() bool         { return false }
func (l *fakeLabel) HostObjectShortName() string { return "" }
func (l *fakeLabel) SourceLocation() SourceLocation { return nil }

func strSet(ss ...string) pset.Set[string] {
	return pset.New(ss...)
}
