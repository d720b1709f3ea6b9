// Package analyze provides package loading, record-shape classification
// and record extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build a canonical in-memory model of named types and their fields.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/interface/...) and struct fields
//   - Shape: coarse classification deciding whether a builder can be derived
//   - Record: a struct with named fields, ready for builder generation
package analyze
