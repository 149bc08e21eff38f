// File: loader.go
// Role: Loader — dynamic arc-type provider loading, grounded on
//       original_source's GenericOperationRegister::ConvertKeyToSoFilename
//       (arc-type name → "<legal-name>-arc.so") plus fst/script-impl.h's
//       registration contract, using the standard library's plugin package
//       as the load mechanism (the original's dlopen-equivalent) and
//       UUID-tagged structured logging in the style of
//       jinterlante1206-AleutianLocal/services/trace/dag/executor.go's
//       session-correlated log lines.

package extension

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"plugin"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/wfst/script"
)

// ErrProviderNotFound indicates no "<name>-arc.so" file exists on any of
// the loader's search paths for the requested arc type.
var ErrProviderNotFound = errors.New("extension: no provider found for arc type")

// ErrBadProvider indicates a provider .so was opened but does not export a
// Register(*script.Registry) function of the expected signature.
var ErrBadProvider = errors.New("extension: provider does not export Register")

// Loader locates and loads arc-type provider plugins from a fixed set of
// search directories, registering each into a script.Registry exactly
// once. Safe for concurrent use.
type Loader struct {
	searchPaths []string

	mu     sync.Mutex
	loaded map[string]struct{} // normalized arc type -> loaded
}

// NewLoader returns a Loader searching searchPaths in order, first match
// wins.
func NewLoader(searchPaths ...string) *Loader {
	return &Loader{
		searchPaths: searchPaths,
		loaded:      make(map[string]struct{}),
	}
}

// Load finds the provider for arcType, opens it, and calls its exported
// Register function with reg. Loading the same arcType a second time is a
// no-op that returns nil, so Watcher can call Load freely without tracking
// what it has already seen.
func (l *Loader) Load(reg *script.Registry, arcType string) error {
	name := normalize(arcType)
	correlationID := uuid.NewString()[:12]

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.loaded[name]; ok {
		slog.Debug("extension: provider already loaded",
			slog.String("arc_type", arcType),
			slog.String("correlation_id", correlationID),
		)

		return nil
	}

	path, err := l.find(name)
	if err != nil {
		slog.Warn("extension: provider not found",
			slog.String("arc_type", arcType),
			slog.String("correlation_id", correlationID),
			slog.String("error", err.Error()),
		)

		return err
	}

	slog.Info("extension: loading provider",
		slog.String("arc_type", arcType),
		slog.String("path", path),
		slog.String("correlation_id", correlationID),
	)

	p, err := plugin.Open(path)
	if err != nil {
		return fmt.Errorf("extension: opening %s: %w", path, err)
	}

	sym, err := p.Lookup("Register")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBadProvider, path, err)
	}

	registerFn, ok := sym.(func(*script.Registry))
	if !ok {
		return fmt.Errorf("%w: %s: Register has wrong type", ErrBadProvider, path)
	}

	registerFn(reg)

	l.loaded[name] = struct{}{}

	slog.Info("extension: provider loaded",
		slog.String("arc_type", arcType),
		slog.String("correlation_id", correlationID),
	)

	return nil
}

// find returns the first "<name>-arc.so" found across the loader's search
// paths.
func (l *Loader) find(name string) (string, error) {
	filename := name + "-arc.so"
	for _, dir := range l.searchPaths {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: %s (searched %v)", ErrProviderNotFound, filename, l.searchPaths)
}

// normalize maps an arc type name to a filesystem-legal symbol by
// replacing every non-alphanumeric byte with an underscore, mirroring the
// original's ConvertToLegalCSymbol.
func normalize(arcType string) string {
	var b strings.Builder
	b.Grow(len(arcType))
	for _, r := range arcType {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}
