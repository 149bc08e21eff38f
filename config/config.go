// File: config.go
// Role: Config — the YAML-deserialized settings shape, grounded on
//       jinterlante1206-AleutianLocal/services/trace/config/tool_registry.go's
//       ToolRegistryYAML (concrete fields, no map[string]any) but trimmed
//       of that file's Prometheus/OTel instrumentation: nothing in this
//       module's scope exercises a metrics pipeline, so none is wired.

package config

import "time"

// EncodeDefaults are the encode.Table flags a bare "encode" invocation
// assumes when the caller supplies neither --labels nor --weights.
type EncodeDefaults struct {
	Labels  bool `yaml:"labels"`
	Weights bool `yaml:"weights"`
}

// ExtensionDefaults hold settings for script/extension's Loader and
// Watcher. That package does not read them itself: a caller passes them
// to NewLoader and NewWatcher.
type ExtensionDefaults struct {
	// SearchPaths are the directories Loader.find walks, in order, when
	// looking for "<name>-arc.so".
	SearchPaths []string `yaml:"search_paths"`

	// DebounceWindow is how long Watcher waits after the last filesystem
	// event in a burst before loading, in time.ParseDuration syntax
	// (e.g. "100ms"). yaml.v3 has no built-in time.Duration scalar
	// support, so this is parsed on demand via Duration rather than
	// unmarshaled directly.
	DebounceWindow string `yaml:"debounce_window"`
}

// Duration parses DebounceWindow, defaulting to 100ms if it is empty.
func (d ExtensionDefaults) Duration() (time.Duration, error) {
	if d.DebounceWindow == "" {
		return 100 * time.Millisecond, nil
	}

	return time.ParseDuration(d.DebounceWindow)
}

// Config is the root of the YAML settings document.
type Config struct {
	Encode    EncodeDefaults    `yaml:"encode"`
	Extension ExtensionDefaults `yaml:"extension"`
}

// AsBits converts d's encode defaults to an encode.Table flag bitmask,
// given the bit values for labels and weights. The caller supplies those
// bits because config must not depend on encode (encode has no reason to depend on
// config, and a cycle here would be a layering mistake, not a feature).
func (d EncodeDefaults) AsBits(labelsBit, weightsBit uint32) uint32 {
	var bits uint32
	if d.Labels {
		bits |= labelsBit
	}
	if d.Weights {
		bits |= weightsBit
	}

	return bits
}
