package encode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/semiring"
)

func TestEncodeAssignsDistinctLabels(t *testing.T) {
	tbl := NewTable(FlagLabels|FlagWeights, semiring.TropicalZero)
	a := core.Arc{ILabel: 1, OLabel: 2, Weight: semiring.New(0.5)}
	b := core.Arc{ILabel: 1, OLabel: 3, Weight: semiring.New(0.5)}

	la := tbl.Encode(a)
	lb := tbl.Encode(b)
	assert.NotEqual(t, la, lb)
	assert.Equal(t, 2, tbl.Size())
}

func TestEncodeIsIdempotentForIdenticalTuples(t *testing.T) {
	tbl := NewTable(FlagLabels|FlagWeights, semiring.TropicalZero)
	a := core.Arc{ILabel: 1, OLabel: 2, Weight: semiring.New(0.5)}
	la := tbl.Encode(a)
	lb := tbl.Encode(a)
	assert.Equal(t, la, lb)
	assert.Equal(t, 1, tbl.Size())
}

func TestGetLabelIsNonMutating(t *testing.T) {
	tbl := NewTable(FlagLabels, semiring.TropicalZero)
	a := core.Arc{ILabel: 1, OLabel: 2, Weight: semiring.TropicalOne}
	assert.Equal(t, core.NoLabel, tbl.GetLabel(a))
	assert.Equal(t, 0, tbl.Size())

	l := tbl.Encode(a)
	assert.Equal(t, l, tbl.GetLabel(a))
}

func TestDecodeOutOfRange(t *testing.T) {
	tbl := NewTable(FlagLabels, semiring.TropicalZero)
	assert.Nil(t, tbl.Decode(0))
	assert.Nil(t, tbl.Decode(99))
}

// E6: build a table with 3 tuples under flags = LABELS; write; read back;
// identical size, flags, and Decode(k) for k in {1,2,3}.
func TestWriteReadRoundTrip(t *testing.T) {
	tbl := NewTable(FlagLabels, semiring.TropicalZero)
	arcs := []core.Arc{
		{ILabel: 1, OLabel: 10, Weight: semiring.TropicalOne},
		{ILabel: 2, OLabel: 20, Weight: semiring.TropicalOne},
		{ILabel: 3, OLabel: 30, Weight: semiring.TropicalOne},
	}
	var labels []core.Label
	for _, a := range arcs {
		labels = append(labels, tbl.Encode(a))
	}

	var buf bytes.Buffer
	require.NoError(t, tbl.Write(&buf))

	out, err := ReadTable(&buf, semiring.TropicalZero)
	require.NoError(t, err)

	assert.Equal(t, tbl.Size(), out.Size())
	assert.Equal(t, tbl.Flags(), out.Flags())
	for i, l := range labels {
		want := tbl.Decode(l)
		got := out.Decode(l)
		require.NotNil(t, got)
		assert.Equal(t, want.ILabel, got.ILabel, "tuple %d", i)
		assert.Equal(t, want.OLabel, got.OLabel, "tuple %d", i)
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 16))
	_, err := ReadTable(buf, semiring.TropicalZero)
	assert.Error(t, err)
}
