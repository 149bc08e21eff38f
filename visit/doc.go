// Package visit provides queue-dependent graph traversal over a core.Fst:
// a Visitor interface that drives what happens at each state/arc and a
// Visit engine that walks states in whatever order a Queue hands them
// back, so the same traversal code serves breadth-first, depth-first,
// shortest-first, and topological orders by swapping the queue alone.
package visit
