// Package plan turns extracted records into builder plans.
//
// It decides every name the generated code introduces (builder type,
// constructor, setters, field slots, build method, output file) and reports
// collisions between them as diagnostics before any code is emitted.
package plan
