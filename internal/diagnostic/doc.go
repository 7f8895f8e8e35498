// Package diagnostic provides structured errors, warnings and infos found
// while validating interface definition documents.
//
// Key capabilities:
//   - Unknown type references with "did you mean" suggestions
//   - Duplicate declarations and typedef cycles
//   - A single combined error for callers that only need pass/fail
package diagnostic
