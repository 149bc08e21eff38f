// Package core defines the fundamental weighted finite-state transducer
// abstractions: labels, states, weights, arcs, and the Fst/MutableFst
// read/write contracts that every concrete or delayed machine in this
// repository implements.
//
// Nothing in this package is tied to a particular storage layout or
// semiring. Concrete containers live in vector (a fully materialized
// MutableFst) and semiring (one reference Weight implementation);
// delayed machines live in complement and encode. This package is the
// seam all of them share.
package core
