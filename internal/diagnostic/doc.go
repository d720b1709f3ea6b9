// Package diagnostic provides structured errors, warnings and notes
// collected while planning builders.
//
// Key capabilities:
//   - Unsupported record shapes
//   - Name collisions between generated setters, fields and methods
//   - Notes on generated API surface (e.g. exported setters for unexported fields)
package diagnostic
