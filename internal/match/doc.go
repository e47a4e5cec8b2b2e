// Package match provides edit-distance helpers used to suggest the closest
// known name when a declared type or a field path is not recognized.
//
// Key functions:
//   - Normalize: folds a type name or dotted field path for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest candidate above a similarity threshold
package match
