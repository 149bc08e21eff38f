// File: visit.go
// Role: Visit — the queue-dependent traversal engine, ported line by line
//       from original_source's fst/visit.h (White/Grey/Black coloring,
//       per-state arc-iterator lifecycle, visit-forest root advancement).
//       The original's MemoryPool<AIterator> becomes a sync.Pool of
//       lightweight iterator slots, since core.ArcIter values themselves
//       are already owned by whichever Fst produced them.

package visit

import (
	"sync"

	"github.com/katalvlaran/wfst/core"
)

type color byte

const (
	white color = iota // undiscovered
	grey               // discovered, unfinished
	black              // finished
)

// iterSlot is the pooled unit: a state's live arc cursor. Whether a
// state's arcs are exhausted is recorded in its color via blackDoneMark.
type iterSlot struct {
	iter core.ArcIter
}

var iterSlotPool = newSlotPool()

func newSlotPool() *slotPool { return &slotPool{} }

// slotPool is a tiny sync.Pool wrapper kept in its own type so Visit's
// body reads like the original's aiter_pool rather than raw sync.Pool
// calls sprinkled through the loop.
type slotPool struct{ pool sync.Pool }

func (p *slotPool) get() *iterSlot {
	if v := p.pool.Get(); v != nil {
		return v.(*iterSlot)
	}
	return &iterSlot{}
}

func (p *slotPool) put(s *iterSlot) {
	s.iter = nil
	p.pool.Put(s)
}

// Visit performs queue-dependent visitation of fst. visitor determines
// the actions taken and accumulates any return data; queue determines
// the order states are dequeued in; filter determines which arcs are
// considered. If accessOnly is true, only states reachable from fst's
// start state are visited (a single tree, no root advancement).
func Visit(fst core.Fst, visitor Visitor, queue Queue, filter ArcFilter, accessOnly bool) {
	visitor.InitVisit(fst)

	start := fst.Start()
	if start == core.NoStateId {
		visitor.FinishVisit()
		return
	}

	status := map[core.StateId]color{}
	slots := map[core.StateId]*iterSlot{}

	nstates := int64(start) + 1
	expanded := fst.Properties(core.Expanded, false).Has(core.Expanded)
	if expanded {
		nstates = int64(fst.NumStates())
	}
	// siter is held across every resumption of the outer root-search loop
	// below and never rescanned from the start: each resumption picks up
	// exactly where the previous one left off.
	siter := fst.States()
	statusOf := func(s core.StateId) color {
		c, ok := status[s]
		if !ok {
			return white
		}
		return c
	}

	visit := true
	for root := start; visit && int64(root) < nstates; {
		visit = visitor.InitState(root, root)
		status[root] = grey
		queue.Enqueue(root)

		for !queue.Empty() {
			s := queue.Head()
			if int64(s)+1 > nstates {
				nstates = int64(s) + 1
			}

			slot, ok := slots[s]
			if !ok && statusOf(s) != black && visit {
				slot = iterSlotPool.get()
				slot.iter = fst.Arcs(s)
				slots[s] = slot
			}

			if (slot != nil && slot.iter.Done()) || !visit {
				if slot != nil {
					iterSlotPool.put(slot)
					delete(slots, s)
					slot = nil
				}
				status[s] |= blackDoneMark
			}

			if status[s]&blackDoneMark != 0 {
				queue.Dequeue()
				visitor.FinishState(s)
				status[s] = black
				continue
			}

			arc := slot.iter.Value()
			if int64(arc.NextState)+1 > nstates {
				nstates = int64(arc.NextState) + 1
			}

			if filter(arc) {
				switch statusOf(arc.NextState) {
				case white:
					visit = visitor.WhiteArc(s, arc)
					if visit {
						visit = visitor.InitState(arc.NextState, root)
						status[arc.NextState] = grey
						queue.Enqueue(arc.NextState)
					}
				case black:
					visit = visitor.BlackArc(s, arc)
				default: // grey
					visit = visitor.GreyArc(s, arc)
				}
			}

			slot.iter.Next()
			if slot.iter.Done() {
				iterSlotPool.put(slot)
				delete(slots, s)
				status[s] |= blackDoneMark
			}
		}

		if accessOnly {
			break
		}

		// Finds the next tree root: the lowest-numbered white state,
		// scanning from 0 after the start state's tree and from root+1
		// after every later tree.
		next := root
		if next == start {
			next = 0
		} else {
			next++
		}
		for int64(next) < nstates && statusOf(next) != white {
			next++
		}
		root = next

		if !expanded && int64(root) == nstates {
			for ; !siter.Done(); siter.Next() {
				if int64(siter.Value()) == nstates {
					nstates++
					break
				}
			}
		}
	}
	visitor.FinishVisit()
}

// blackDoneMark is OR'd into a state's color once its arc iterator is
// exhausted, mirroring the original's separate kArcIterDone flag; it
// never collides with white/grey/black since those are small enum
// values and this is a high bit.
const blackDoneMark color = 0x80
