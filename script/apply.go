// File: apply.go
// Role: Apply and ArcTypesMatch, ported from original_source's
//       fst/script/script-impl.h's Apply<OpReg> template function and
//       ArcTypesMatch helper. Registry.Apply looks up the registered
//       function, invokes it, and logs a registry miss; it does not check
//       arc types, which is ArcTypesMatch's job for callers that run it
//       before boxing their args. Go's any-typed args play the role the
//       original's generic OpReg::Args template parameter does.

package script

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNoOperation is returned when no function is registered for the
// requested (operation, arc type) pair.
var ErrNoOperation = errors.New("script: no operation registered")

// ArcTyped is satisfied by anything carrying an arc type tag, which is all
// that ArcTypesMatch needs — FstClass, MutableFstClass, and core.Fst all
// qualify.
type ArcTyped interface {
	ArcType() string
}

// ArcTypesMatch reports whether m and n carry the same arc type, logging a
// warning naming opName if they don't. Client-facing operation wrappers
// call this before boxing their args, mirroring the original's guard of
// "if (!ArcTypesMatch(ifst, *ofst, "Foo")) return;".
func ArcTypesMatch(m, n ArcTyped, opName string) bool {
	if m.ArcType() == n.ArcType() {
		return true
	}

	slog.Warn("script: mismatched arc types",
		slog.String("op", opName),
		slog.String("lhs_arc_type", m.ArcType()),
		slog.String("rhs_arc_type", n.ArcType()),
	)

	return false
}

// Apply looks up the function registered for (op, arcType) in r and invokes
// it with args. A registry miss logs at Error level and returns
// ErrNoOperation wrapped with the requested op and arcType; it is not a
// panic and not a structural error, since an unregistered arc type is an
// expected outcome of a scripting environment that has not yet loaded that
// provider.
func (r *Registry) Apply(op, arcType string, args any) error {
	fn, ok := r.Lookup(op, arcType)
	if !ok {
		slog.Error("script: no operation registered",
			slog.String("op", op),
			slog.String("arc_type", arcType),
		)

		return fmt.Errorf("%w: %s on arc type %q", ErrNoOperation, op, arcType)
	}

	if err := fn(args); err != nil {
		return fmt.Errorf("script: %s on arc type %q: %w", op, arcType, err)
	}

	slog.Debug("script: applied operation",
		slog.String("op", op),
		slog.String("arc_type", arcType),
	)

	return nil
}

// Apply dispatches through the package-level Default registry.
func Apply(op, arcType string, args any) error {
	return Default.Apply(op, arcType, args)
}
