// Package server holds the HTTP server configuration.
//
// While the start command handles the server lifecycle, this package defines
// the configuration structure and its validation: listen port, API key and
// request body limit.
//
// # Usage
//
// This package is embedded by core/config and read by the start command when
// building the Fiber application.
package server
