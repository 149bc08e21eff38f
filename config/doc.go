// Package config loads YAML-defined defaults: which encode.Table flags a
// bare "encode" invocation assumes, where script/extension should look for
// arc-type providers, and how long its watcher debounces filesystem
// bursts. In this module only cmd/fst's encode command reads them (the
// encode flags); script/extension takes its search paths and debounce
// window from its caller, not from this package. Loading follows the
// external-file-with-embedded-fallback pattern, caching the result for the
// life of the process.
package config
