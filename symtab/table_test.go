package symtab

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/core"
)

func TestNewPreBindsEpsilon(t *testing.T) {
	tbl := New("words")
	l, ok := tbl.Find("<eps>")
	require.True(t, ok)
	assert.Equal(t, core.Epsilon, l)

	name, ok := tbl.FindLabel(core.Epsilon)
	require.True(t, ok)
	assert.Equal(t, "<eps>", name)
}

func TestAddSymbolIsIdempotent(t *testing.T) {
	tbl := New("words")
	a := tbl.AddSymbol("cat")
	b := tbl.AddSymbol("cat")
	assert.Equal(t, a, b)
	assert.NotEqual(t, core.Epsilon, a)

	c := tbl.AddSymbol("dog")
	assert.NotEqual(t, a, c)
}

func TestFindLabelRoundTrip(t *testing.T) {
	tbl := New("words")
	l := tbl.AddSymbol("cat")
	name, ok := tbl.FindLabel(l)
	require.True(t, ok)
	assert.Equal(t, "cat", name)

	_, ok = tbl.FindLabel(core.Label(999))
	assert.False(t, ok)
}

func TestPrefix(t *testing.T) {
	tbl := New("words")
	tbl.AddSymbol("cat")
	tbl.AddSymbol("car")
	tbl.AddSymbol("dog")

	names := tbl.Prefix("ca")
	assert.ElementsMatch(t, []string{"cat", "car"}, names)
}

func TestLen(t *testing.T) {
	tbl := New("words")
	assert.Equal(t, 1, tbl.Len()) // epsilon only
	tbl.AddSymbol("cat")
	assert.Equal(t, 2, tbl.Len())
}

func TestWriteReadRoundTrip(t *testing.T) {
	tbl := New("words")
	tbl.AddSymbol("cat")
	tbl.AddSymbol("dog")

	var buf bytes.Buffer
	require.NoError(t, tbl.Write(&buf))

	out := New("")
	require.NoError(t, out.Read(&buf))

	assert.Equal(t, tbl.Len(), out.Len())
	l, ok := out.Find("dog")
	require.True(t, ok)
	name, ok := out.FindLabel(l)
	require.True(t, ok)
	assert.Equal(t, "dog", name)
}

func TestReadRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	out := New("")
	assert.Error(t, out.Read(buf))
}
