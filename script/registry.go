// File: registry.go
// Role: Registry — the (operation, arc type) dispatch table, grounded on
//       original_source's fst/script/script-impl.h's
//       GenericOperationRegister. That type hand-rolls an append-only hash
//       map guarded for concurrent registration; sync.Map already gives Go
//       the same "publication-safe, append-only" contract, so it stands in
//       directly rather than being reimplemented.

package script

import "sync"

// OperationFunc is the body registered for one (operation, arc type) pair.
// args is whatever ArgPack the operation's client-facing wrapper built; the
// function is responsible for asserting it to the concrete type it expects.
type OperationFunc func(args any) error

// Registry maps (operation name, arc type name) pairs to OperationFuncs.
// The zero value is an empty Registry ready for use; NewRegistry returns one.
type Registry struct {
	ops sync.Map // [2]string{op, arcType} -> OperationFunc
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry { return &Registry{} }

// Register installs fn as the body for (op, arcType), replacing any
// previous registration. Intended to run from an arc-type provider's
// package-level init or its extension.Loader-invoked Register hook.
func (r *Registry) Register(op, arcType string, fn OperationFunc) {
	r.ops.Store([2]string{op, arcType}, fn)
}

// Lookup returns the registered body for (op, arcType), if any.
func (r *Registry) Lookup(op, arcType string) (OperationFunc, bool) {
	v, ok := r.ops.Load([2]string{op, arcType})
	if !ok {
		return nil, false
	}

	return v.(OperationFunc), true
}

// Default is the process-wide registry used by the package-level Apply.
// Arc-type providers loaded via script/extension register into this one.
var Default = NewRegistry()
