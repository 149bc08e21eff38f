// File: fst.go
// Role: Fst — the concrete, mutable, fully-materialized core.MutableFst.
// AI-HINT (file):
//   - Adapted from the teacher's core.Graph adjacency-list: vertices become
//     states, edges become arcs gaining ilabel/olabel, the undirected-edge
//     mirroring is dropped since Fst arcs are always directed.
//   - state.final uses Weight == nil to mean "never set", distinct from a
//     semiring Zero() final weight which explicitly means non-final.

package vector

import (
	"sync"

	"github.com/katalvlaran/wfst/core"
)

type state struct {
	arcs  []core.Arc
	final core.Weight // nil until SetFinal is called at least once
}

// Fst is a plain-slice, mutex-guarded core.MutableFst.
type Fst struct {
	mu sync.RWMutex

	states  []*state
	start   core.StateId
	arcType string
	zero    core.Weight // this machine's semiring Zero, used for non-final states

	iTable core.SymbolTable
	oTable core.SymbolTable

	// props carries both the semantic bits and their *Known companions in
	// one value, exactly as core.Properties documents: a semantic bit is
	// meaningful only when its Known companion (always the next bit up)
	// is also set.
	props core.Properties
}

// New returns an empty Fst over the semiring of zero (typically
// semiring.TropicalZero or another Weight's Zero()).
func New(arcType string, zero core.Weight) *Fst {
	return &Fst{
		start:   core.NoStateId,
		arcType: arcType,
		zero:    zero,
		// NumStates/NumArcs are O(1) for this container by construction, at
		// every state count including zero, so Expanded is always known true.
		props: core.Expanded | core.ExpandedKnown,
	}
}

func (f *Fst) Start() core.StateId {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.start
}

func (f *Fst) Final(s core.StateId) core.Weight {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if int(s) < 0 || int(s) >= len(f.states) {
		return f.zero
	}
	if w := f.states[s].final; w != nil {
		return w
	}
	return f.zero
}

func (f *Fst) NumStates() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.states)
}

func (f *Fst) NumArcs(s core.StateId) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if int(s) < 0 || int(s) >= len(f.states) {
		return 0
	}
	return len(f.states[s].arcs)
}

func (f *Fst) States() core.StateIter {
	f.mu.RLock()
	n := len(f.states)
	f.mu.RUnlock()
	return &stateIter{n: n}
}

func (f *Fst) Arcs(s core.StateId) core.ArcIter {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var arcs []core.Arc
	if int(s) >= 0 && int(s) < len(f.states) {
		arcs = f.states[s].arcs
	}
	return &arcIter{arcs: arcs}
}

// Properties returns the bits of mask actually set in f's property value.
// test is accepted for interface compliance but never probes: recomputing
// an unknown bit requires a walk, out of scope for the mutable concrete
// container, whose callers set properties explicitly via SetProperties
// after a mutation they can reason about locally.
func (f *Fst) Properties(mask core.Properties, test bool) core.Properties {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.props & mask
}

func (f *Fst) InputSymbols() core.SymbolTable {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.iTable
}

func (f *Fst) OutputSymbols() core.SymbolTable {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.oTable
}

func (f *Fst) ArcType() string { return f.arcType }

// Copy returns a clone. safe and unsafe are identical here: every field is
// either immutable after construction (arcType, zero) or copied by value
// (slices get fresh backing arrays), so there is nothing unsafe to share.
func (f *Fst) Copy(safe bool) core.Fst {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := &Fst{
		start:   f.start,
		arcType: f.arcType,
		zero:    f.zero,
		iTable:  f.iTable,
		oTable:  f.oTable,
		props:   f.props,
	}
	out.states = make([]*state, len(f.states))
	for i, st := range f.states {
		ns := &state{final: st.final}
		ns.arcs = append(ns.arcs, st.arcs...)
		out.states[i] = ns
	}
	return out
}

func (f *Fst) AddState() core.StateId {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := core.StateId(len(f.states))
	f.states = append(f.states, &state{})
	return id
}

func (f *Fst) SetStart(s core.StateId) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.start = s
}

func (f *Fst) SetFinal(s core.StateId, w core.Weight) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if int(s) < 0 || int(s) >= len(f.states) {
		return
	}
	f.states[s].final = w
}

func (f *Fst) AddArc(s core.StateId, a core.Arc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if int(s) < 0 || int(s) >= len(f.states) {
		return
	}
	f.states[s].arcs = append(f.states[s].arcs, a)
	f.clearArcDependentPropsLocked()
}

func (f *Fst) DeleteStates() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states = nil
	f.start = core.NoStateId
	f.props = core.Expanded | core.ExpandedKnown
}

func (f *Fst) SetInputSymbols(t core.SymbolTable) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.iTable = t
}

func (f *Fst) SetOutputSymbols(t core.SymbolTable) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.oTable = t
}

// SetProperties ORs known (a mask of *Known bits, e.g. core.AcceptorKnown)
// into f's known status and sets each corresponding semantic bit from
// bits. Every *Known bit sits exactly one position above its semantic
// companion, so known>>1 recovers the semantic-bit mask those Known bits
// describe.
func (f *Fst) SetProperties(bits, known core.Properties) {
	f.mu.Lock()
	defer f.mu.Unlock()
	valueMask := known | (known >> 1)
	f.props = (f.props &^ valueMask) | (bits & (known >> 1)) | known
}

func (f *Fst) clearArcDependentPropsLocked() {
	f.clearPropsLocked(core.AcceptorKnown | core.UnweightedKnown |
		core.IDeterministicKnown | core.NoEpsilonsKnown | core.ILabelSortedKnown)
}

func (f *Fst) clearPropsLocked(known core.Properties) {
	valueMask := known | (known >> 1)
	f.props &^= valueMask
}
