// Package langtag defines the language-tag type shared by internal/dispatch
// and internal/stripper. It exists only to break the import cycle that
// would otherwise result from the Line Stripper needing to know which
// language it is stripping: internal/dispatch already imports
// internal/stripper, so internal/stripper cannot import internal/dispatch
// back. Both packages instead depend on this leaf package, with
// dispatch.Lang declared as an alias of Lang so existing dispatch.Lang
// constants and call sites are unaffected.
package langtag

// Lang is a language tag, matching the strings the original dispatcher
// in _examples/original_source/core/processor.rs used.
type Lang string
