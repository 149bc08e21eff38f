package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/vector"
)

// buildWeightedAcceptor: s0 --1/0.5--> s1(final, weight 1.5).
func buildWeightedAcceptor(t *testing.T) *vector.Fst {
	t.Helper()
	f := vector.New("tropical", semiring.TropicalZero)
	s0 := f.AddState()
	s1 := f.AddState()
	f.SetStart(s0)
	f.SetFinal(s1, semiring.New(1.5))
	f.AddArc(s0, core.Arc{ILabel: 1, OLabel: 1, Weight: semiring.New(0.5), NextState: s1})
	return f
}

func TestEncodeFstAddsSuperFinalState(t *testing.T) {
	src := buildWeightedAcceptor(t)
	m := NewMapper(FlagLabels|FlagWeights, ModeEncode, semiring.TropicalZero)
	enc := New(src, m)

	assert.Equal(t, src.NumStates()+1, enc.NumStates())
	sf := core.StateId(src.NumStates())
	assert.True(t, enc.Final(sf).Equal(semiring.TropicalOne))
	assert.True(t, enc.Final(1).Equal(semiring.TropicalZero)) // folded away
}

func TestEncodeFstArcsAreLabelEqualAndUnweighted(t *testing.T) {
	src := buildWeightedAcceptor(t)
	m := NewMapper(FlagLabels|FlagWeights, ModeEncode, semiring.TropicalZero)
	enc := New(src, m)

	it := enc.Arcs(0)
	require.False(t, it.Done())
	a := it.Value()
	assert.Equal(t, a.ILabel, a.OLabel)
	assert.True(t, a.Weight.Equal(semiring.TropicalOne))
}

func TestEncodeThenDecodeRoundTrip(t *testing.T) {
	src := buildWeightedAcceptor(t)
	em := NewMapper(FlagLabels|FlagWeights, ModeEncode, semiring.TropicalZero)
	enc := New(src, em)

	dm := NewDecodeMapper(em)
	dec := NewDecodeFst(enc, dm)

	assert.Equal(t, src.NumStates(), dec.NumStates())
	assert.True(t, dec.Final(1).Equal(semiring.New(1.5)))

	it := dec.Arcs(0)
	require.False(t, it.Done())
	a := it.Value()
	assert.Equal(t, core.Label(1), a.ILabel)
	assert.Equal(t, core.Label(1), a.OLabel)
	assert.True(t, a.Weight.Equal(semiring.New(0.5)))
}

func TestEncodeFstClearsSymbolTables(t *testing.T) {
	src := buildWeightedAcceptor(t)
	m := NewMapper(FlagLabels, ModeEncode, semiring.TropicalZero)
	enc := New(src, m)
	assert.Nil(t, enc.InputSymbols())
	assert.Nil(t, enc.OutputSymbols())
}
