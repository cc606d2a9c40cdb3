package canon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type tagged struct {
	n int
}

func (t *tagged) Equal(other *tagged) bool { return t.n == other.n }
func (t *tagged) HashCode() uint32         { return uint32(t.n) }

func TestCanonicalizeDedupes(t *testing.T) {
	p := NewPool[*tagged]()

	a := p.Canonicalize(&tagged{n: 1})
	b := p.Canonicalize(&tagged{n: 1})
	c := p.Canonicalize(&tagged{n: 2})

	require.Same(t, a, b)
	require.NotSame(t, a, c)
	require.Equal(t, 2, p.Size())
}

func TestResetInvalidatesIdentity(t *testing.T) {
	p := NewPool[*tagged]()
	a := p.Canonicalize(&tagged{n: 1})
	p.Reset()
	b := p.Canonicalize(&tagged{n: 1})

	require.NotSame(t, a, b)
	require.Equal(t, 1, p.Size())
}
