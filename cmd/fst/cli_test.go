package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/vector"
)

func writeFixture(t *testing.T, path string) {
	t.Helper()
	f := vector.New("tropical", semiring.TropicalZero)
	s0 := f.AddState()
	s1 := f.AddState()
	f.SetStart(s0)
	f.SetFinal(s1, semiring.New(1.5))
	f.AddArc(s0, core.Arc{ILabel: 1, OLabel: 1, Weight: semiring.New(0.5), NextState: s1})

	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()
	require.NoError(t, vector.WriteFst(out, f))
}

// writeAcceptorFixture writes an unweighted, epsilon-free, deterministic
// two-state acceptor — the shape complement.New requires to avoid setting
// its Error property.
func writeAcceptorFixture(t *testing.T, path string) {
	t.Helper()
	f := vector.New("tropical", semiring.TropicalZero)
	s0 := f.AddState()
	s1 := f.AddState()
	f.SetStart(s0)
	f.SetFinal(s1, semiring.TropicalOne)
	f.AddArc(s0, core.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne, NextState: s1})

	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()
	require.NoError(t, vector.WriteFst(out, f))
}

func TestRunCopyFIFORoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.fst")
	out := filepath.Join(dir, "out.fst")
	writeFixture(t, in)

	copyQueue = "fifo"
	runCopy(&cobra.Command{}, []string{in, out})

	got, err := readMachine(out)
	require.NoError(t, err)
	assert.Equal(t, 2, got.NumStates())
}

func TestRunCopyAllQueueKinds(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.fst")
	writeFixture(t, in)

	for _, q := range []string{"fifo", "lifo", "shortest", "topo"} {
		out := filepath.Join(dir, q+".fst")
		copyQueue = q
		runCopy(&cobra.Command{}, []string{in, out})

		got, err := readMachine(out)
		require.NoError(t, err, "queue kind %s", q)
		assert.Equal(t, 2, got.NumStates(), "queue kind %s", q)
	}
}

func TestRunEncodeThenRunDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.fst")
	table := filepath.Join(dir, "table.bin")
	encoded := filepath.Join(dir, "encoded.fst")
	decoded := filepath.Join(dir, "decoded.fst")
	writeFixture(t, in)

	encodeLabels = true
	encodeWeights = true
	runEncode(&cobra.Command{}, []string{in, table, encoded})

	runDecode(&cobra.Command{}, []string{encoded, table, decoded})

	original, err := readMachine(in)
	require.NoError(t, err)
	got, err := readMachine(decoded)
	require.NoError(t, err)

	require.Equal(t, original.NumStates(), got.NumStates())
	require.Equal(t, 1, got.NumArcs(0))
	oit := original.Arcs(0)
	git := got.Arcs(0)
	assert.Equal(t, oit.Value().ILabel, git.Value().ILabel)
	assert.Equal(t, oit.Value().OLabel, git.Value().OLabel)
	assert.True(t, oit.Value().Weight.Equal(git.Value().Weight))
}

func TestRunComplementOnValidAcceptor(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.fst")
	out := filepath.Join(dir, "out.fst")
	writeAcceptorFixture(t, in)

	runComplement(&cobra.Command{}, []string{in, out})

	got, err := readMachine(out)
	require.NoError(t, err)
	assert.Equal(t, 3, got.NumStates())
}

func TestBuildQueueRejectsUnknownName(t *testing.T) {
	_, err := buildQueue("bogus", vector.New("tropical", semiring.TropicalZero))
	require.Error(t, err)
}

func TestHopDistancesFromStart(t *testing.T) {
	f := vector.New("tropical", semiring.TropicalZero)
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, core.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne, NextState: s1})
	f.AddArc(s1, core.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne, NextState: s2})

	dist := hopDistances(f)
	assert.Equal(t, int64(0), dist[s0])
	assert.Equal(t, int64(1), dist[s1])
	assert.Equal(t, int64(2), dist[s2])
}
