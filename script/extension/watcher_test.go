package extension

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/script"
)

func TestNewWatcherSucceedsOnExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, NewLoader(dir), script.NewRegistry(), DefaultWatcherOptions())
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.NoError(t, w.Stop())
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, NewLoader(dir), script.NewRegistry(), DefaultWatcherOptions())
	require.NoError(t, err)
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestDefaultWatcherOptionsDebounceWindow(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, DefaultWatcherOptions().DebounceWindow)
}
