package vector

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/semiring"
)

func TestWriteFstThenReadFstRoundTrip(t *testing.T) {
	f := New("tropical", semiring.TropicalZero)
	s0 := f.AddState()
	s1 := f.AddState()
	f.SetStart(s0)
	f.SetFinal(s1, semiring.New(2.5))
	f.AddArc(s0, core.Arc{ILabel: 1, OLabel: 2, Weight: semiring.New(0.5), NextState: s1})

	var buf bytes.Buffer
	require.NoError(t, WriteFst(&buf, f))

	got, err := ReadFst(&buf, semiring.TropicalZero)
	require.NoError(t, err)

	assert.Equal(t, f.ArcType(), got.ArcType())
	assert.Equal(t, f.Start(), got.Start())
	require.Equal(t, f.NumStates(), got.NumStates())
	assert.True(t, got.Final(s1).Equal(semiring.New(2.5)))
	assert.True(t, got.Final(s0).Equal(semiring.TropicalZero))
	require.Equal(t, 1, got.NumArcs(s0))

	it := got.Arcs(s0)
	require.False(t, it.Done())
	a := it.Value()
	assert.Equal(t, core.Label(1), a.ILabel)
	assert.Equal(t, core.Label(2), a.OLabel)
	assert.Equal(t, s1, a.NextState)
	assert.True(t, a.Weight.Equal(semiring.New(0.5)))
}

func TestReadFstRejectsBadMagic(t *testing.T) {
	_, err := ReadFst(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8}), semiring.TropicalZero)
	require.Error(t, err)
}
