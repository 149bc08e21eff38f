// Package lvlath is the root of the github.com/katalvlaran/wfst module, a
// weighted finite-state transducer toolkit. It holds no code of its own;
// the work is done in its subpackages:
//
//	core/       — labels, states, weights, arcs, the Fst interfaces and property bits
//	semiring/   — the tropical weight
//	symtab/     — symbol tables
//	vector/     — the mutable, fully materialized Fst and its file format
//	delayed/    — the shared handle behind on-the-fly machines
//	complement/ — the on-the-fly complement of an acceptor
//	encode/     — label/weight encoding and decoding
//	visit/      — the queue-driven state visitation engine and its visitors
//	script/     — the (operation, arc type) registry; script/extension loads providers
//	config/     — YAML defaults
//	cmd/fst/    — the command-line tool
package lvlath
