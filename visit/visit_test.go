package visit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/vector"
)

// buildDiamond: s0 -> s1, s0 -> s2, s1 -> s3, s2 -> s3; s3 final.
func buildDiamond(t *testing.T) *vector.Fst {
	t.Helper()
	f := vector.New("tropical", semiring.TropicalZero)
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState()
	s3 := f.AddState()
	f.SetStart(s0)
	f.SetFinal(s3, semiring.TropicalOne)
	f.AddArc(s0, core.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne, NextState: s1})
	f.AddArc(s0, core.Arc{ILabel: 2, OLabel: 2, Weight: semiring.TropicalOne, NextState: s2})
	f.AddArc(s1, core.Arc{ILabel: 3, OLabel: 3, Weight: semiring.TropicalOne, NextState: s3})
	f.AddArc(s2, core.Arc{ILabel: 4, OLabel: 4, Weight: semiring.TropicalOne, NextState: s3})
	return f
}

// recordingVisitor records the order InitState is called in, and lets the
// test inject an early-abort condition.
type recordingVisitor struct {
	initOrder   []core.StateId
	finishOrder []core.StateId
	abortAt     core.StateId
	hasAbort    bool
}

func (v *recordingVisitor) InitVisit(core.Fst) {}

func (v *recordingVisitor) InitState(s, _ core.StateId) bool {
	v.initOrder = append(v.initOrder, s)
	return !(v.hasAbort && s == v.abortAt)
}

func (v *recordingVisitor) WhiteArc(core.StateId, core.Arc) bool { return true }
func (v *recordingVisitor) GreyArc(core.StateId, core.Arc) bool  { return true }
func (v *recordingVisitor) BlackArc(core.StateId, core.Arc) bool { return true }
func (v *recordingVisitor) FinishState(s core.StateId)           { v.finishOrder = append(v.finishOrder, s) }
func (v *recordingVisitor) FinishVisit()                         {}

func TestVisitFIFOIsBreadthFirst(t *testing.T) {
	f := buildDiamond(t)
	v := &recordingVisitor{}
	Visit(f, v, NewFIFOQueue(), AnyArcFilter, false)
	require.Equal(t, []core.StateId{0, 1, 2, 3}, v.initOrder)
}

func TestVisitLIFOIsDepthFirst(t *testing.T) {
	f := buildDiamond(t)
	v := &recordingVisitor{}
	Visit(f, v, NewLIFOQueue(), AnyArcFilter, false)
	// A stack-ordered queue drives s0's arc iterator back to the top
	// whenever it pushes a new state, so s1's whole subtree (s1, s3)
	// is discovered before s0's second arc uncovers s2.
	require.Equal(t, []core.StateId{0, 1, 3, 2}, v.initOrder)
}

func TestVisitAbortStopsEarlyAndStillFinishesGreyStates(t *testing.T) {
	f := buildDiamond(t)
	v := &recordingVisitor{abortAt: 1, hasAbort: true}
	Visit(f, v, NewFIFOQueue(), AnyArcFilter, false)
	// s1's InitState returns false; s0 (grey, unfinished) must still get
	// FinishState called on it before FinishVisit.
	assert.Contains(t, v.finishOrder, core.StateId(0))
}

func TestVisitEmptyFstFinishesImmediately(t *testing.T) {
	f := vector.New("tropical", semiring.TropicalZero)
	v := &recordingVisitor{}
	Visit(f, v, NewFIFOQueue(), AnyArcFilter, false)
	assert.Empty(t, v.initOrder)
}

// nonExpandedFst wraps a vector.Fst but reports Expanded as unknown,
// forcing Visit down the state-iterator growth-probe path regardless of
// the wrapped container's own (always-Expanded) properties.
type nonExpandedFst struct{ *vector.Fst }

func (f nonExpandedFst) Properties(mask core.Properties, test bool) core.Properties {
	return f.Fst.Properties(mask, test) &^ (core.Expanded | core.ExpandedKnown)
}

// buildDisconnected: s0 -> start, s1 and s2 unreachable from s0 and from
// each other; no arcs anywhere.
func buildDisconnected(t *testing.T) *vector.Fst {
	t.Helper()
	f := vector.New("tropical", semiring.TropicalZero)
	s0 := f.AddState()
	f.AddState() // s1
	f.AddState() // s2
	f.SetStart(s0)
	return f
}

func TestVisitNonExpandedGrowthProbeReachesDisconnectedStates(t *testing.T) {
	f := buildDisconnected(t)
	v := &recordingVisitor{}
	Visit(nonExpandedFst{f}, v, NewFIFOQueue(), AnyArcFilter, false)
	require.Equal(t, []core.StateId{0, 1, 2}, v.initOrder)
}

func TestVisitCopyVisitorPreservesDisconnectedStates(t *testing.T) {
	f := buildDisconnected(t)
	dst := vector.New(f.ArcType(), semiring.TropicalZero)
	Visit(f, NewCopyVisitor(dst), NewFIFOQueue(), AnyArcFilter, false)
	assert.Equal(t, f.NumStates(), dst.NumStates())
}

func TestVisitFilterExcludesArcs(t *testing.T) {
	f := buildDiamond(t)
	v := &recordingVisitor{}
	onlyLabel1 := func(a core.Arc) bool { return a.ILabel == 1 }
	Visit(f, v, NewFIFOQueue(), onlyLabel1, true)
	require.Equal(t, []core.StateId{0, 1}, v.initOrder)
}
