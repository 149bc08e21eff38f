// File: iterator.go
// Role: stateIter/arcIter — line-for-line ports of
//       StateIterator<ComplementFst<A>>/ArcIterator<ComplementFst<A>>.

package complement

import "github.com/katalvlaran/wfst/core"

type stateIter struct {
	src core.StateIter
	s   core.StateId
}

func newStateIter(im *impl) *stateIter {
	return &stateIter{src: im.fst.States(), s: 0}
}

func (it *stateIter) Done() bool { return it.s > 0 && it.src.Done() }

func (it *stateIter) Value() core.StateId { return it.s }

func (it *stateIter) Next() {
	if it.s != 0 {
		it.src.Next()
	}
	it.s++
}

func (it *stateIter) Reset() {
	it.src.Reset()
	it.s = 0
}

type arcIter struct {
	im  *impl
	s   core.StateId
	src core.ArcIter // nil when s == 0
	pos int
}

func newArcIter(im *impl, s core.StateId) *arcIter {
	it := &arcIter{im: im, s: s}
	if s != 0 {
		it.src = im.fst.Arcs(s - 1)
	}
	return it
}

func (it *arcIter) Done() bool {
	if it.s != 0 {
		return it.pos > 0 && it.src.Done()
	}
	return it.pos > 0
}

// Value adds the rho arc to the synthetic sink at position 0; every later
// position mirrors the source arc with nextstate shifted by one.
func (it *arcIter) Value() core.Arc {
	if it.pos == 0 {
		return core.Arc{ILabel: core.RhoLabel, OLabel: core.RhoLabel, Weight: it.im.one, NextState: 0}
	}
	a := it.src.Value()
	a.NextState++
	return a
}

func (it *arcIter) Next() {
	if it.s != 0 && it.pos > 0 {
		it.src.Next()
	}
	it.pos++
}

func (it *arcIter) Position() int { return it.pos }

func (it *arcIter) Reset() {
	if it.s != 0 {
		it.src.Reset()
	}
	it.pos = 0
}

func (it *arcIter) Seek(pos int) {
	if it.s != 0 {
		if pos == 0 {
			it.src.Reset()
		} else {
			it.src.Seek(pos - 1)
		}
	}
	it.pos = pos
}
