// File: copy_visitor.go
// Role: CopyVisitor/PartialVisitor/PartialCopyVisitor — ported from
//       visit.h's three canonical Visitor implementations.

package visit

import "github.com/katalvlaran/wfst/core"

// CopyVisitor copies its source Fst into a core.MutableFst, following
// whatever order the driving Queue hands out states in.
type CopyVisitor struct {
	ifst core.Fst
	ofst core.MutableFst
}

// NewCopyVisitor returns a CopyVisitor writing into ofst.
func NewCopyVisitor(ofst core.MutableFst) *CopyVisitor {
	return &CopyVisitor{ofst: ofst}
}

func (v *CopyVisitor) InitVisit(ifst core.Fst) {
	v.ifst = ifst
	v.ofst.DeleteStates()
	v.ofst.SetStart(ifst.Start())
}

func (v *CopyVisitor) InitState(s, _ core.StateId) bool {
	for core.StateId(v.ofst.NumStates()) <= s {
		v.ofst.AddState()
	}
	return true
}

func (v *CopyVisitor) WhiteArc(s core.StateId, a core.Arc) bool { v.ofst.AddArc(s, a); return true }
func (v *CopyVisitor) GreyArc(s core.StateId, a core.Arc) bool  { v.ofst.AddArc(s, a); return true }
func (v *CopyVisitor) BlackArc(s core.StateId, a core.Arc) bool { v.ofst.AddArc(s, a); return true }

func (v *CopyVisitor) FinishState(s core.StateId) { v.ofst.SetFinal(s, v.ifst.Final(s)) }
func (v *CopyVisitor) FinishVisit()               {}

// PartialVisitor drives a traversal up to a state limit without copying
// anything, useful for probing accessibility or forcing a delayed
// machine's final weights to materialize for the first maxVisit states.
type PartialVisitor struct {
	fst      core.Fst
	maxVisit core.StateId
	ninit    core.StateId
	nfinish  core.StateId
}

// NewPartialVisitor returns a PartialVisitor that aborts once maxVisit
// states have been initialized.
func NewPartialVisitor(maxVisit core.StateId) *PartialVisitor {
	return &PartialVisitor{maxVisit: maxVisit}
}

func (v *PartialVisitor) InitVisit(fst core.Fst) { v.fst = fst; v.ninit, v.nfinish = 0, 0 }

func (v *PartialVisitor) InitState(_, _ core.StateId) bool {
	v.ninit++
	return v.ninit < v.maxVisit
}

func (v *PartialVisitor) WhiteArc(core.StateId, core.Arc) bool { return true }
func (v *PartialVisitor) GreyArc(core.StateId, core.Arc) bool  { return true }
func (v *PartialVisitor) BlackArc(core.StateId, core.Arc) bool { return true }

func (v *PartialVisitor) FinishState(s core.StateId) {
	v.fst.Final(s) // forces a delayed machine to compute s's final weight
	v.nfinish++
}

func (v *PartialVisitor) FinishVisit() {}

// NumInitialized returns how many states InitState was called for.
func (v *PartialVisitor) NumInitialized() core.StateId { return v.ninit }

// NumFinished returns how many states were fully finished.
func (v *PartialVisitor) NumFinished() core.StateId { return v.nfinish }

// PartialCopyVisitor copies up to a state limit, with independent
// control over whether grey- and black-arc revisits are copied.
type PartialCopyVisitor struct {
	*CopyVisitor
	maxVisit       core.StateId
	copyGrey       bool
	copyBlack      bool
	ninit, nfinish core.StateId
}

// NewPartialCopyVisitor returns a PartialCopyVisitor writing into ofst,
// aborting after maxVisit states are initialized.
func NewPartialCopyVisitor(ofst core.MutableFst, maxVisit core.StateId, copyGrey, copyBlack bool) *PartialCopyVisitor {
	return &PartialCopyVisitor{
		CopyVisitor: NewCopyVisitor(ofst),
		maxVisit:    maxVisit,
		copyGrey:    copyGrey,
		copyBlack:   copyBlack,
	}
}

func (v *PartialCopyVisitor) InitVisit(ifst core.Fst) {
	v.CopyVisitor.InitVisit(ifst)
	v.ninit, v.nfinish = 0, 0
}

func (v *PartialCopyVisitor) InitState(s, root core.StateId) bool {
	v.CopyVisitor.InitState(s, root)
	v.ninit++
	return v.ninit < v.maxVisit
}

func (v *PartialCopyVisitor) GreyArc(s core.StateId, a core.Arc) bool {
	if v.copyGrey {
		return v.CopyVisitor.GreyArc(s, a)
	}
	return true
}

func (v *PartialCopyVisitor) BlackArc(s core.StateId, a core.Arc) bool {
	if v.copyBlack {
		return v.CopyVisitor.BlackArc(s, a)
	}
	return true
}

func (v *PartialCopyVisitor) FinishState(s core.StateId) {
	v.CopyVisitor.FinishState(s)
	v.nfinish++
}

// NumInitialized returns how many states InitState was called for.
func (v *PartialCopyVisitor) NumInitialized() core.StateId { return v.ninit }

// NumFinished returns how many states were fully finished.
func (v *PartialCopyVisitor) NumFinished() core.StateId { return v.nfinish }
