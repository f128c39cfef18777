// Package naming converts declaration names into Go identifiers and file
// names, and ranks near-miss spellings for diagnostics.
//
// Key functions:
//   - Tokenize: splits camelCase, PascalCase, snake_case and kebab-case
//   - Pascal, Camel, Snake: identifier styles built from tokens
//   - Levenshtein: edit distance between strings
//   - Suggest: closest candidates to a misspelled name
package naming
