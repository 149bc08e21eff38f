package semiring

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlusIsMin(t *testing.T) {
	a := New(3)
	b := New(5)
	assert.Equal(t, 3.0, float64(*Plus(a, b)))
	assert.Equal(t, 3.0, float64(*Plus(b, a)))
}

func TestTimesIsSum(t *testing.T) {
	a := New(3)
	b := New(5)
	assert.Equal(t, 8.0, float64(*Times(a, b)))
}

func TestZeroIsAbsorbingForTimes(t *testing.T) {
	z := TropicalZero
	a := New(5)
	got := Times(z, a)
	assert.True(t, math.IsInf(float64(*got), 1))
}

func TestOneIsIdentityForTimes(t *testing.T) {
	one := TropicalOne
	a := New(5)
	assert.Equal(t, 5.0, float64(*Times(one, a)))
}

func TestEqualTreatsNaNAsSingleIdentity(t *testing.T) {
	nan1 := New(math.NaN())
	nan2 := New(math.NaN())
	assert.True(t, nan1.Equal(nan2))

	five := New(5)
	assert.False(t, nan1.Equal(five))
	assert.False(t, five.Equal(nan1))
}

func TestWriteReadRoundTrip(t *testing.T) {
	w := New(2.5)
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))

	out := New(0)
	require.NoError(t, out.Read(&buf))
	assert.Equal(t, 2.5, float64(*out))
}

func TestStringRendersSentinels(t *testing.T) {
	assert.Equal(t, "Inf", TropicalZero.String())
	assert.Equal(t, "NaN", New(math.NaN()).String())
	assert.Equal(t, "0", TropicalOne.String())
}
