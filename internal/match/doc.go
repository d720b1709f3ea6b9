// Package match ranks identifiers by similarity to a name that was not
// found, to produce "did you mean" hints.
//
// Key functions:
//   - NormalizeIdent: folds case and separators before comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: returns the closest candidates above a similarity threshold
package match
