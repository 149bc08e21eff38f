package extension

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/script"
)

func TestLoadReturnsErrProviderNotFoundWhenNoFileExists(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(dir)
	err := l.Load(script.NewRegistry(), "standard")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProviderNotFound))
}

func TestLoadSearchesMultiplePathsInOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, "standard-arc.so"), []byte("not a real plugin"), 0o644))

	l := NewLoader(first, second)
	err := l.Load(script.NewRegistry(), "standard")
	// The file is found (second path), but plugin.Open fails on the bogus
	// contents — so the error is NOT ErrProviderNotFound, proving find()
	// located it.
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrProviderNotFound))
}

func TestNormalizeReplacesNonAlnumWithUnderscore(t *testing.T) {
	assert.Equal(t, "standard", normalize("standard"))
	assert.Equal(t, "my_arc_type", normalize("my-arc.type"))
	assert.Equal(t, "log_64", normalize("log/64"))
}
