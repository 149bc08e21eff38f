// File: visitor.go
// Role: Visitor — ported from visit.h's commented-out interface template,
//       made concrete as a Go interface.

package visit

import "github.com/katalvlaran/wfst/core"

// Visitor determines the actions Visit takes during a traversal. If any
// of the boolean methods return false, the visit is aborted: Visit calls
// FinishState on every unfinished (grey) state and then FinishVisit.
type Visitor interface {
	// InitVisit is called once, before any state is touched.
	InitVisit(fst core.Fst)

	// InitState is called when s is discovered; root is the state the
	// current visit tree was rooted at.
	InitState(s, root core.StateId) bool

	// WhiteArc is called when an arc to an undiscovered state is examined.
	WhiteArc(s core.StateId, a core.Arc) bool

	// GreyArc is called when an arc to a discovered-but-unfinished state
	// is examined.
	GreyArc(s core.StateId, a core.Arc) bool

	// BlackArc is called when an arc to a finished state is examined.
	BlackArc(s core.StateId, a core.Arc) bool

	// FinishState is called when s's out-arcs are exhausted.
	FinishState(s core.StateId)

	// FinishVisit is called once, after every tree in the visit forest
	// has been walked (or the visit was aborted).
	FinishVisit()
}
