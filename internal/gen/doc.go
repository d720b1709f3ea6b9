// Package gen provides deterministic Go code generation for record builders.
//
// Generation approach uses text/template + go/format for readable Go code.
//
// For a record R with fields F1..Fn the generated file declares:
//   - RBuilder, holding one optional.Option slot per field
//   - NewRBuilder, returning a builder with every slot absent
//   - one chainable setter per field, overwriting its slot
//   - Build, returning R or a builder.MissingFieldError naming the first
//     absent field in declaration order
package gen
