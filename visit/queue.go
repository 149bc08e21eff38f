// File: queue.go
// Role: Queue and its four implementations — FIFOQueue/LIFOQueue/
//       ShortestQueue/TopoQueue — grounded on the teacher's bfs.walker
//       queue (FIFO), dfs's explicit stack (LIFO), dijkstra's
//       container/heap frontier (ShortestQueue), and dfs/topological.go's
//       rank assignment (TopoQueue).

package visit

import (
	"container/heap"

	"github.com/katalvlaran/wfst/core"
)

// Queue orders the states Visit discovers. Enqueue/Dequeue/Head follow a
// FIFO-like contract in name only; each implementation picks its own
// ordering policy.
type Queue interface {
	// Enqueue adds s to the queue. Re-enqueuing a state already present
	// is the caller's responsibility to avoid; Visit never does so.
	Enqueue(s core.StateId)

	// Head returns the next state Dequeue will remove, without removing
	// it. Head must not be called on an empty queue.
	Head() core.StateId

	// Dequeue removes and returns the state Head reported.
	Dequeue() core.StateId

	// Empty reports whether the queue holds no states.
	Empty() bool

	// Clear discards every queued state, resetting to empty.
	Clear()
}

// FIFOQueue visits states in the order they were discovered
// (breadth-first).
type FIFOQueue struct {
	items []core.StateId
}

// NewFIFOQueue returns an empty FIFOQueue.
func NewFIFOQueue() *FIFOQueue { return &FIFOQueue{} }

func (q *FIFOQueue) Enqueue(s core.StateId) { q.items = append(q.items, s) }
func (q *FIFOQueue) Head() core.StateId     { return q.items[0] }
func (q *FIFOQueue) Empty() bool            { return len(q.items) == 0 }
func (q *FIFOQueue) Clear()                 { q.items = q.items[:0] }

func (q *FIFOQueue) Dequeue() core.StateId {
	s := q.items[0]
	q.items = q.items[1:]
	return s
}

// LIFOQueue visits the most recently discovered state first
// (depth-first).
type LIFOQueue struct {
	items []core.StateId
}

// NewLIFOQueue returns an empty LIFOQueue.
func NewLIFOQueue() *LIFOQueue { return &LIFOQueue{} }

func (q *LIFOQueue) Enqueue(s core.StateId) { q.items = append(q.items, s) }
func (q *LIFOQueue) Head() core.StateId     { return q.items[len(q.items)-1] }
func (q *LIFOQueue) Empty() bool            { return len(q.items) == 0 }
func (q *LIFOQueue) Clear()                 { q.items = q.items[:0] }

func (q *LIFOQueue) Dequeue() core.StateId {
	n := len(q.items) - 1
	s := q.items[n]
	q.items = q.items[:n]
	return s
}

// ShortestQueue visits states in increasing order of an externally
// maintained key (typically shortest distance so far), via a min-heap.
// Callers update the key map before Enqueue and may re-enqueue a state
// with a smaller key later; the stale, larger-key entry is simply never
// at the head before the fresh one, following dijkstra.go's
// lazy-decrease-key convention — Visit never needs to know which entries
// are stale because it dequeues a state at most once per visit (later
// dequeues of an already-black state are filtered by the caller's key
// comparison, not by this queue).
type ShortestQueue struct {
	h shortestHeap
}

// NewShortestQueue returns an empty ShortestQueue ordered by key(s),
// ascending.
func NewShortestQueue(key func(core.StateId) int64) *ShortestQueue {
	return &ShortestQueue{h: shortestHeap{key: key}}
}

func (q *ShortestQueue) Enqueue(s core.StateId) { heap.Push(&q.h, s) }
func (q *ShortestQueue) Head() core.StateId     { return q.h.items[0] }
func (q *ShortestQueue) Empty() bool            { return len(q.h.items) == 0 }
func (q *ShortestQueue) Clear()                 { q.h.items = q.h.items[:0] }

func (q *ShortestQueue) Dequeue() core.StateId {
	return heap.Pop(&q.h).(core.StateId)
}

// shortestHeap implements container/heap.Interface over core.StateId,
// ordered by key ascending, mirroring dijkstra.go's nodePQ.
type shortestHeap struct {
	items []core.StateId
	key   func(core.StateId) int64
}

func (h shortestHeap) Len() int            { return len(h.items) }
func (h shortestHeap) Less(i, j int) bool  { return h.key(h.items[i]) < h.key(h.items[j]) }
func (h shortestHeap) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *shortestHeap) Push(x interface{}) { h.items = append(h.items, x.(core.StateId)) }
func (h *shortestHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	s := old[n-1]
	h.items = old[:n-1]
	return s
}

// TopoQueue visits states in topological rank order: a state with no
// unvisited predecessor among those already ranked comes before its
// successors. Rank is supplied once, up front, by the caller (typically
// computed by a prior depth-first pass, mirroring dfs/topological.go).
type TopoQueue struct {
	rank  map[core.StateId]int
	items []core.StateId
}

// NewTopoQueue returns an empty TopoQueue ordered by rank ascending;
// states with no entry in rank sort after every ranked state, in
// insertion order among themselves.
func NewTopoQueue(rank map[core.StateId]int) *TopoQueue {
	return &TopoQueue{rank: rank}
}

func (q *TopoQueue) Enqueue(s core.StateId) {
	pos := len(q.items)
	for i, other := range q.items {
		if q.less(s, other) {
			pos = i
			break
		}
	}
	q.items = append(q.items, core.NoStateId)
	copy(q.items[pos+1:], q.items[pos:])
	q.items[pos] = s
}

func (q *TopoQueue) less(a, b core.StateId) bool {
	ra, aok := q.rank[a]
	rb, bok := q.rank[b]
	if aok && bok {
		return ra < rb
	}
	return aok && !bok
}

func (q *TopoQueue) Head() core.StateId { return q.items[0] }
func (q *TopoQueue) Empty() bool        { return len(q.items) == 0 }
func (q *TopoQueue) Clear()             { q.items = q.items[:0] }

func (q *TopoQueue) Dequeue() core.StateId {
	s := q.items[0]
	q.items = q.items[1:]
	return s
}
