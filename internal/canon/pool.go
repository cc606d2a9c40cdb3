// Package canon implements the canonicalization (interning) pool shared by
// the abstract-value package. Two structurally equal values canonicalize to
// the same representative, so that afterwards equality and hashing are
// reference-fast.
//
// The pool is the one piece of shared mutable state in the core (see
// spec.md §5): it is protected by a mutex so that it can be used safely
// when an embedding analyzer runs more than one analysis in the same
// process.
package canon

import "sync"

// Internable is implemented by types whose structural equality and hash
// code can be computed independently of identity. HashCode need not be
// collision-free; Equal is the source of truth and is only ever invoked
// while a value is being canonicalized, never afterwards (once canonical,
// callers are expected to compare by reference).
type Internable[T any] interface {
	Equal(other T) bool
	HashCode() uint32
}

// Pool is a process-wide (or analysis-scoped) interning pool for values of
// type T. The zero value is not usable; construct with NewPool.
type Pool[T Internable[T]] struct {
	mu      sync.Mutex
	buckets map[uint32][]T
}

// NewPool constructs an empty pool.
func NewPool[T Internable[T]]() *Pool[T] {
	return &Pool[T]{buckets: make(map[uint32][]T)}
}

// Canonicalize returns the unique representative structurally equal to v,
// inserting v itself as the representative if no such value exists yet.
func (p *Pool[T]) Canonicalize(v T) T {
	h := v.HashCode()

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[h]
	for _, existing := range bucket {
		if existing.Equal(v) {
			return existing
		}
	}
	p.buckets[h] = append(bucket, v)
	return v
}

// Size returns the number of distinct interned values. Intended for tests
// and diagnostics only.
func (p *Pool[T]) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}

// Reset atomically clears the pool. Values returned before Reset remain
// valid Go values, but they are no longer the canonical representative of
// their equivalence class: a later Canonicalize call with a structurally
// equal value will intern a *new* representative, distinct by reference
// from anything handed out before the reset. Callers must not retain
// values returned before a Reset and compare them, by reference, against
// values obtained after it.
func (p *Pool[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.buckets = make(map[uint32][]T)
}
