// Package diagnostic provides structured errors, warnings and notes about
// destination declarations for the navigation code generator.
//
// Key capabilities:
//   - Duplicate destination and argument reports
//   - Unknown argument types with "did you mean" suggestions
//   - Invalid default values
//   - Source positions for declarations discovered in Go code
package diagnostic
