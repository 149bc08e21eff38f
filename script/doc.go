// Package script implements the type-erased scripting dispatch layer: a
// registry keyed by (operation name, arc type) that lets a caller invoke a
// typed operation without knowing its arc type at compile time. FstClass
// and MutableFstClass are the erasure boundary; Registry and Apply are the
// dispatch mechanism; script/extension adds out-of-process registration of
// arc types the core library was not built knowing about.
package script
