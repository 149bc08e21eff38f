// File: decode_fst.go
// Role: DecodeFst's impl and facade — the inverse of EncodeFst, assuming
//       its source carries the same super-final convention EncodeFst
//       produces when FlagWeights is set.

package encode

import (
	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/delayed"
)

type decodeImpl struct {
	fst     core.Fst
	mapper  *Mapper // ModeDecode, sharing its encoder's table
	sfState core.StateId
}

func newDecodeImpl(fst core.Fst, mapper *Mapper) *decodeImpl {
	im := &decodeImpl{fst: fst, mapper: mapper, sfState: core.NoStateId}
	if mapper.Flags()&FlagWeights != 0 && fst.NumStates() > 0 {
		im.sfState = core.StateId(fst.NumStates() - 1)
	}
	return im
}

func (im *decodeImpl) Clone() delayed.Impl {
	return &decodeImpl{fst: im.fst.Copy(true), mapper: im.mapper, sfState: im.sfState}
}

func (im *decodeImpl) NumStates() int {
	if im.sfState != core.NoStateId {
		return im.fst.NumStates() - 1
	}
	return im.fst.NumStates()
}

func (im *decodeImpl) Start() core.StateId { return im.fst.Start() }

// Final restores s's real final weight, either passed through directly
// (weights not encoded) or recovered from the one out-arc pointing at the
// super-final state (weights encoded).
func (im *decodeImpl) Final(s core.StateId) core.Weight {
	if im.sfState == core.NoStateId {
		return im.fst.Final(s)
	}
	for it := im.fst.Arcs(s); !it.Done(); it.Next() {
		a := it.Value()
		if a.NextState == im.sfState {
			// a is a real arc (concrete NextState), so Map takes the normal
			// decode branch rather than the final-weight pass-through one.
			decoded := im.mapper.Map(a)
			return decoded.Weight
		}
	}
	return im.fst.Final(s).Zero()
}

func (im *decodeImpl) NumArcs(s core.StateId) int {
	n := 0
	for it := im.fst.Arcs(s); !it.Done(); it.Next() {
		if im.sfState != core.NoStateId && it.Value().NextState == im.sfState {
			continue
		}
		n++
	}
	return n
}

// DecodeFst is the delayed decoder over an encoded source.
type DecodeFst struct{ h *delayed.Handle }

// NewDecodeFst decodes src under mapper, which must be in ModeDecode and
// share its table with whatever encoder produced src.
func NewDecodeFst(src core.Fst, mapper *Mapper) *DecodeFst {
	return &DecodeFst{h: delayed.NewHandle(newDecodeImpl(src, mapper))}
}

func (f *DecodeFst) impl() *decodeImpl { return f.h.Get().(*decodeImpl) }

func (f *DecodeFst) Start() core.StateId              { return f.impl().Start() }
func (f *DecodeFst) Final(s core.StateId) core.Weight { return f.impl().Final(s) }
func (f *DecodeFst) NumStates() int                   { return f.impl().NumStates() }
func (f *DecodeFst) NumArcs(s core.StateId) int       { return f.impl().NumArcs(s) }
func (f *DecodeFst) States() core.StateIter           { return &expandedStateIter{n: f.impl().NumStates()} }
func (f *DecodeFst) Arcs(s core.StateId) core.ArcIter { return newDecodeArcIter(f.impl(), s) }

func (f *DecodeFst) Properties(mask core.Properties, test bool) core.Properties {
	im := f.impl()
	p := im.fst.Properties(mask, test)
	if im.mapper.Error() {
		p |= core.Error | core.ErrorKnown
	}
	return p & mask
}

func (f *DecodeFst) InputSymbols() core.SymbolTable  { return f.impl().mapper.InputSymbols() }
func (f *DecodeFst) OutputSymbols() core.SymbolTable { return f.impl().mapper.OutputSymbols() }
func (f *DecodeFst) ArcType() string                 { return f.impl().fst.ArcType() }

func (f *DecodeFst) Copy(safe bool) core.Fst { return &DecodeFst{h: f.h.Copy(safe)} }
