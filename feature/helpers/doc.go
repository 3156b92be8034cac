// Package helpers exposes the core/utils helper collection over HTTP.
//
// # HTTP Endpoints
//
//   - POST /helpers/color : {"text"} -> {"color"}, cached in an LRU.
//   - POST /helpers/initials : {"name"} -> {"initials"}.
//   - POST /helpers/camel : {"text"} -> {"result"}.
//   - POST /helpers/hyphenate : {"text"} -> {"result"}.
//   - POST /helpers/prune : JSON object -> pruned object (supports ?deep=true).
//   - POST /helpers/errors : field-error object -> {"message"}.
//   - POST /helpers/typeof : any JSON -> {"type"}.
//   - POST /helpers/find : {"records","key","field"} -> {"record"}.
//   - POST /helpers/match : {"records","candidates","field"} -> {"records"}.
//   - POST /helpers/equal : {"a","b"} -> {"equal"}.
//   - POST /helpers/last : JSON array -> {"item"}.
//
// Malformed bodies answer 400. A helper with no result answers 422.
package helpers
