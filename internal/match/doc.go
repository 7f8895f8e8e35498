// Package match provides name normalization, Levenshtein distance calculation
// and candidate ranking for "did you mean" suggestions on unknown type names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - NormalizeTypeRef: strips array suffixes and type collections from references
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks declared type names against an unknown reference
package match
