// Package utils provides the helper collection shared by the CLI and the HTTP
// feature: record lookup, string-to-color hashing, initials extraction,
// casing, pruning of empty values, debouncing, smooth scrolling and
// error-message extraction.
//
// Every helper is a free function with no package state. Functions that can
// have "no result" return a second boolean (or an error when the failure
// deserves a name) instead of panicking.
//
// # Records
//
// A Record is a plain map[string]any, the shape produced by decoding a JSON
// object. Sequences are plain Go slices.
//
//	r, ok := utils.FindByKey(users, 42)
//	clean := utils.PruneEmptyDeep(payload)
//
// # Timing helpers
//
// Debounce and ScrollToTop are the only helpers with side effects. Both are
// built on timers and are safe for concurrent use.
package utils
