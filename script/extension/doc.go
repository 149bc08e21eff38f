// Package extension loads arc-type providers that were not linked into the
// binary, giving the scripting layer's registry entries for arc types it
// was never compiled against. A provider is a Go plugin (.so) exporting a
// Register(*script.Registry) function; Loader finds and loads one on
// demand, and Watcher proactively loads new ones as they appear on disk.
package extension
