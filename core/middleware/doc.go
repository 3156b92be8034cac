// Package middleware groups the Fiber middleware registered in front of the
// helper endpoints.
//
// # Components
//
//   - auth: rejects requests whose X-API-Key header (or "key" query
//     parameter) does not match the configured key. An empty key turns the
//     check off, which is the default for local use.
//   - rayid: tags each request with an X-Ray-ID, reusing an upstream value
//     when present, and stores it in the request locals for logger.WithRayID.
//
// Register rayid before the request logger and auth after it, so rejected
// requests are still traced.
package middleware
