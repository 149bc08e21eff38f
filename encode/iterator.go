// File: iterator.go
// Role: expandedStateIter/simpleArcIter — cursors over a per-state arc
//       snapshot materialized on demand, shared by EncodeFst and DecodeFst.

package encode

import "github.com/katalvlaran/wfst/core"

type expandedStateIter struct {
	n   int
	pos int
}

func (it *expandedStateIter) Done() bool         { return it.pos >= it.n }
func (it *expandedStateIter) Value() core.StateId { return core.StateId(it.pos) }
func (it *expandedStateIter) Next()               { it.pos++ }
func (it *expandedStateIter) Reset()              { it.pos = 0 }

type simpleArcIter struct {
	arcs []core.Arc
	pos  int
}

func (it *simpleArcIter) Done() bool      { return it.pos >= len(it.arcs) }
func (it *simpleArcIter) Value() core.Arc { return it.arcs[it.pos] }
func (it *simpleArcIter) Next()           { it.pos++ }
func (it *simpleArcIter) Reset()          { it.pos = 0 }
func (it *simpleArcIter) Position() int   { return it.pos }
func (it *simpleArcIter) Seek(pos int)    { it.pos = pos }

func newEncodeArcIter(im *encodeImpl, s core.StateId) core.ArcIter {
	if im.sfState != core.NoStateId && s == im.sfState {
		return &simpleArcIter{}
	}
	var arcs []core.Arc
	for it := im.fst.Arcs(s); !it.Done(); it.Next() {
		arcs = append(arcs, im.mapper.Map(it.Value()))
	}
	if extra, ok := im.encodedFinalArc(s); ok {
		arcs = append(arcs, extra)
	}
	return &simpleArcIter{arcs: arcs}
}

func newDecodeArcIter(im *decodeImpl, s core.StateId) core.ArcIter {
	var arcs []core.Arc
	for it := im.fst.Arcs(s); !it.Done(); it.Next() {
		a := it.Value()
		if im.sfState != core.NoStateId && a.NextState == im.sfState {
			continue // folded back into Final(s) instead
		}
		arcs = append(arcs, im.mapper.Map(a))
	}
	return &simpleArcIter{arcs: arcs}
}
