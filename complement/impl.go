// File: impl.go
// Role: impl — ComplementFstImpl's Go counterpart: Start/Final/NumArcs/
//       NumStates/Properties over the state-shift-by-one encoding.
// AI-HINT (file):
//   - State 0 is the synthetic completion sink; state s (s > 0) mirrors
//     the source's state s-1.
//   - Final exchanges the source's final/non-final status; NumArcs adds
//     one for the synthetic rho arc prepended at every state.

package complement

import (
	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/delayed"
)

// requiredProps is the property set a complement source must satisfy:
// unweighted, epsilon-free, deterministic acceptor.
const requiredProps = core.Unweighted | core.NoEpsilons | core.IDeterministic | core.Acceptor

type impl struct {
	fst    core.Fst
	zero   core.Weight
	one    core.Weight
	iTable core.SymbolTable
	oTable core.SymbolTable
	props  core.Properties
	known  core.Properties
}

func newImpl(src core.Fst, zero, one core.Weight) *impl {
	srcProps := src.Properties(core.KnownMask|core.KnownMask>>1, false)
	p := core.ComplementProperties(srcProps)
	im := &impl{
		fst:    src,
		zero:   zero,
		one:    one,
		iTable: src.InputSymbols(),
		oTable: src.OutputSymbols(),
		props:  p,
		known:  p | core.ErrorKnown,
	}
	if src.Properties(requiredProps, true)&requiredProps != requiredProps {
		im.props |= core.Error
		im.known |= core.Error | core.ErrorKnown
	}
	return im
}

func (im *impl) Clone() delayed.Impl {
	return &impl{
		fst:    im.fst.Copy(true),
		zero:   im.zero,
		one:    im.one,
		iTable: im.iTable,
		oTable: im.oTable,
		props:  im.props,
		known:  im.known,
	}
}

func (im *impl) Start() core.StateId {
	if im.props.Has(core.Error) {
		return core.NoStateId
	}
	if s := im.fst.Start(); s != core.NoStateId {
		return s + 1
	}
	return 0
}

func (im *impl) Final(s core.StateId) core.Weight {
	if s == 0 || im.fst.Final(s-1).Equal(im.zero) {
		return im.one
	}
	return im.zero
}

func (im *impl) NumArcs(s core.StateId) int {
	if s == 0 {
		return 1
	}
	return im.fst.NumArcs(s-1) + 1
}

func (im *impl) NumStates() int {
	return im.fst.NumStates() + 1
}

func (im *impl) Properties(mask core.Properties, test bool) core.Properties {
	if mask.Has(core.Error) && im.fst.Properties(core.Error, false).Has(core.Error) {
		im.props |= core.Error
		im.known |= core.Error | core.ErrorKnown
	}
	return im.props & im.known & mask
}
