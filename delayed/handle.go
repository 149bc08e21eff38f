// Package delayed provides Handle, the shared-implementation wrapper every
// on-the-fly machine (complement.Fst, encode.Fst, encode.DecodeFst)
// builds on, mirroring OpenFst's ImplToFst<Impl>: a machine's facade holds
// a handle to its Impl rather than the Impl's state directly, so Copy can
// either share that Impl (unsafe, cheap) or clone it (safe, for use from
// another goroutine).
package delayed

// Impl is the contract a delayed machine's implementation satisfies.
type Impl interface {
	// Clone returns a deep copy safe to hand to a concurrent owner.
	Clone() Impl
}

// Handle wraps one Impl, mirroring a shared_ptr<Impl> plus the safe/unsafe
// Copy discipline described in spec §4.5/§5: unsafe copies share impl and
// race with concurrent mutation of the source; safe copies do not.
type Handle struct {
	impl Impl
}

// NewHandle wraps impl in a fresh Handle.
func NewHandle(impl Impl) *Handle {
	return &Handle{impl: impl}
}

// Get returns the wrapped Impl.
func (h *Handle) Get() Impl { return h.impl }

// Copy returns a new Handle. safe == false shares impl with h (the two
// handles' owners must not mutate concurrently); safe == true clones impl
// so the new handle's owner can run on another goroutine unsupervised.
func (h *Handle) Copy(safe bool) *Handle {
	if !safe {
		return &Handle{impl: h.impl}
	}
	return &Handle{impl: h.impl.Clone()}
}
