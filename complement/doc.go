// Package complement provides Fst, a delayed FST that completes an
// unweighted, epsilon-free, deterministic acceptor and exchanges its
// final/non-final states, implementing set complementation over the
// acceptor's label alphabet.
//
// A synthetic state 0 is prepended as the completion sink: each remaining
// output state s corresponds to input state s-1, and the first out-arc at
// every state carries the library-private core.RhoLabel ("any other
// label") before the state's real arcs.
package complement
