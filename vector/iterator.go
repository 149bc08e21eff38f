// File: iterator.go
// Role: stateIter/arcIter — the plain-slice cursor pair satisfying
//       core.StateIter and core.ArcIter over a snapshot taken at
//       States()/Arcs() call time.

package vector

import "github.com/katalvlaran/wfst/core"

type stateIter struct {
	n   int
	pos int
}

func (it *stateIter) Done() bool        { return it.pos >= it.n }
func (it *stateIter) Value() core.StateId { return core.StateId(it.pos) }
func (it *stateIter) Next()              { it.pos++ }
func (it *stateIter) Reset()             { it.pos = 0 }

type arcIter struct {
	arcs []core.Arc
	pos  int
}

func (it *arcIter) Done() bool     { return it.pos >= len(it.arcs) }
func (it *arcIter) Value() core.Arc { return it.arcs[it.pos] }
func (it *arcIter) Next()          { it.pos++ }
func (it *arcIter) Reset()         { it.pos = 0 }
func (it *arcIter) Position() int  { return it.pos }
func (it *arcIter) Seek(pos int)   { it.pos = pos }
