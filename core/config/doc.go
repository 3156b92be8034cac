// Package config provides configuration management for helperkit.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key, body limit)
//   - Log: Logging level and format
//   - Helpers: color cache size, scroll frame interval, debounce window
//
// Defaults come from the `default` struct tags of each section. Environment
// keys are the upper-cased dotted path with dots replaced by underscores,
// e.g. HELPERS_COLOR_CACHE_SIZE.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
