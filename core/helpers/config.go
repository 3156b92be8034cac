package helpers

import "time"

// Config holds tunables for the helper collection when it is served or run
// from the CLI.
type Config struct {
	// ColorCacheSize is the number of StringToColor results kept in memory.
	ColorCacheSize int `mapstructure:"color_cache_size" default:"256"`
	// ScrollFrameMS is the frame interval of ScrollToTop, in milliseconds.
	ScrollFrameMS int `mapstructure:"scroll_frame_ms" default:"15"`
	// DebounceMS is the quiet window of debounced helper calls, in milliseconds.
	DebounceMS int `mapstructure:"debounce_ms" default:"300"`
}

// ScrollFrame returns the configured frame interval, falling back to 15ms.
func (c Config) ScrollFrame() time.Duration {
	if c.ScrollFrameMS <= 0 {
		return 15 * time.Millisecond
	}
	return time.Duration(c.ScrollFrameMS) * time.Millisecond
}

// DebounceDelay returns the configured debounce window, falling back to 300ms.
func (c Config) DebounceDelay() time.Duration {
	if c.DebounceMS <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// CacheSize returns the configured cache size, falling back to 256.
func (c Config) CacheSize() int {
	if c.ColorCacheSize <= 0 {
		return 256
	}
	return c.ColorCacheSize
}
