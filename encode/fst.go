// File: fst.go
// Role: EncodeFst/DecodeFst — on-the-fly arc-mapping facades over Mapper,
//       grounded on encode.h's EncodeFst<A>/DecodeFst<A> (ArcMapFst
//       specializations).
// AI-HINT (file):
//   - EncodeFst appends exactly one synthetic super-final state (the
//     source's NumStates()) whenever its mapper's FinalAction is
//     MapRequireSuperFinal; DecodeFst assumes that same convention on its
//     source and drops the matching state back out.

package encode

import (
	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/delayed"
)

type encodeImpl struct {
	fst    core.Fst
	mapper *Mapper
	sfState core.StateId // NoStateId unless FinalAction() == MapRequireSuperFinal
}

func newEncodeImpl(fst core.Fst, mapper *Mapper) *encodeImpl {
	mapper.SetInputSymbols(fst.InputSymbols())
	mapper.SetOutputSymbols(fst.OutputSymbols())
	im := &encodeImpl{fst: fst, mapper: mapper, sfState: core.NoStateId}
	if mapper.FinalAction() == MapRequireSuperFinal {
		im.sfState = core.StateId(fst.NumStates())
	}
	return im
}

func (im *encodeImpl) Clone() delayed.Impl {
	return &encodeImpl{fst: im.fst.Copy(true), mapper: im.mapper, sfState: im.sfState}
}

func (im *encodeImpl) NumStates() int {
	if im.sfState != core.NoStateId {
		return im.fst.NumStates() + 1
	}
	return im.fst.NumStates()
}

func (im *encodeImpl) Start() core.StateId { return im.fst.Start() }

func (im *encodeImpl) Final(s core.StateId) core.Weight {
	if im.sfState != core.NoStateId && s == im.sfState {
		return im.mapper.table.zero.One()
	}
	w := im.fst.Final(s)
	if im.sfState == core.NoStateId || w.Equal(w.Zero()) {
		return w
	}
	// Non-zero final weight folded into an arc to the super-final state.
	return w.Zero()
}

func (im *encodeImpl) NumArcs(s core.StateId) int {
	if im.sfState != core.NoStateId && s == im.sfState {
		return 0
	}
	n := im.fst.NumArcs(s)
	if im.sfState != core.NoStateId && !im.fst.Final(s).Equal(im.fst.Final(s).Zero()) {
		n++
	}
	return n
}

// encodedFinalArc returns the arc the super-final state's incoming edge
// from s carries, or the ok=false zero value if s has no non-zero final
// weight to fold.
func (im *encodeImpl) encodedFinalArc(s core.StateId) (core.Arc, bool) {
	w := im.fst.Final(s)
	if im.sfState == core.NoStateId || w.Equal(w.Zero()) {
		return core.Arc{}, false
	}
	mapped := im.mapper.Map(core.Arc{ILabel: core.Epsilon, OLabel: core.Epsilon, Weight: w, NextState: core.NoStateId})
	mapped.NextState = im.sfState
	return mapped, true
}

// Fst is the delayed encoder over a source machine.
type Fst struct{ h *delayed.Handle }

// New returns a delayed encoding of src under mapper, which must be in
// ModeEncode.
func New(src core.Fst, mapper *Mapper) *Fst {
	return &Fst{h: delayed.NewHandle(newEncodeImpl(src, mapper))}
}

func (f *Fst) impl() *encodeImpl { return f.h.Get().(*encodeImpl) }

func (f *Fst) Start() core.StateId              { return f.impl().Start() }
func (f *Fst) Final(s core.StateId) core.Weight { return f.impl().Final(s) }
func (f *Fst) NumStates() int                   { return f.impl().NumStates() }
func (f *Fst) NumArcs(s core.StateId) int       { return f.impl().NumArcs(s) }
func (f *Fst) States() core.StateIter           { return &expandedStateIter{n: f.impl().NumStates()} }
func (f *Fst) Arcs(s core.StateId) core.ArcIter { return newEncodeArcIter(f.impl(), s) }

func (f *Fst) Properties(mask core.Properties, test bool) core.Properties {
	im := f.impl()
	p := im.fst.Properties(mask, test)
	if im.mapper.Error() {
		p |= core.Error | core.ErrorKnown
	}
	return p & mask
}

func (f *Fst) InputSymbols() core.SymbolTable  { return nil } // cleared: new labels are synthetic
func (f *Fst) OutputSymbols() core.SymbolTable { return nil }
func (f *Fst) ArcType() string                 { return f.impl().fst.ArcType() }

func (f *Fst) Copy(safe bool) core.Fst { return &Fst{h: f.h.Copy(safe)} }

// Mapper returns the encoder this Fst was built from, so a caller can
// later build a DecodeFst sharing the same table.
func (f *Fst) Mapper() *Mapper { return f.impl().mapper }
