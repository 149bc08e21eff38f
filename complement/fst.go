// File: fst.go
// Role: Fst — the public delayed facade over impl, attaching core.Fst to
//       the implementation via a delayed.Handle (ImplToFst<Impl> analogue).

package complement

import (
	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/delayed"
)

// Fst complements src: an unweighted, epsilon-free, deterministic acceptor
// in, its completion-then-final-exchange out. zero and one must be src's
// semiring's Zero and One values.
//
// If src does not satisfy the required properties, Fst's Error property
// is set rather than panicking; callers that care should check
// Properties(core.Error, true) before using the result.
type Fst struct {
	h *delayed.Handle
}

// New returns a delayed complement of src.
func New(src core.Fst, zero, one core.Weight) *Fst {
	return &Fst{h: delayed.NewHandle(newImpl(src, zero, one))}
}

func (f *Fst) impl() *impl { return f.h.Get().(*impl) }

func (f *Fst) Start() core.StateId        { return f.impl().Start() }
func (f *Fst) Final(s core.StateId) core.Weight { return f.impl().Final(s) }
func (f *Fst) NumStates() int             { return f.impl().NumStates() }
func (f *Fst) NumArcs(s core.StateId) int { return f.impl().NumArcs(s) }

func (f *Fst) States() core.StateIter { return newStateIter(f.impl()) }
func (f *Fst) Arcs(s core.StateId) core.ArcIter { return newArcIter(f.impl(), s) }

func (f *Fst) Properties(mask core.Properties, test bool) core.Properties {
	return f.impl().Properties(mask, test)
}

func (f *Fst) InputSymbols() core.SymbolTable  { return f.impl().iTable }
func (f *Fst) OutputSymbols() core.SymbolTable { return f.impl().oTable }
func (f *Fst) ArcType() string                 { return f.impl().fst.ArcType() }

// Copy returns a clone. safe == true clones the underlying source machine
// so the copy can be walked from another goroutine; safe == false shares
// it with f.
func (f *Fst) Copy(safe bool) core.Fst {
	return &Fst{h: f.h.Copy(safe)}
}
