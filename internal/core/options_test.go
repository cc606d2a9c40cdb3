package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.False(t, opts.DebugInvariantsEnabled)
	require.Equal(t, 10, opts.StringSetsBound)
}

func TestLoadOptionsOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.toml")
	contents := "no_string_sets = true\nstring_sets_bound = 4\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	require.True(t, opts.NoStringSets)
	require.Equal(t, 4, opts.StringSetsBound)
	require.False(t, opts.DebugInvariantsEnabled)
}

func TestApplyInstallsStringSetsBound(t *testing.T) {
	defer Apply(DefaultOptions())
	Apply(Options{StringSetsBound: 7})
	require.Equal(t, 7, stringSetsBound)
}
