// Package helpers holds the configuration section for the helper collection.
//
// The helpers themselves live in core/utils and take plain arguments; this
// package only maps the environment (HELPERS_COLOR_CACHE_SIZE,
// HELPERS_SCROLL_FRAME_MS, HELPERS_DEBOUNCE_MS) onto typed durations and sizes
// with safe fallbacks.
package helpers
