// Package gen provides deterministic Go code generation for navigation
// destinations.
//
// Generation approach uses text/template + go/format for readable Go code.
// Every destination yields one file holding:
//   - A string-based argument key type and its constants
//   - The destination descriptor built with the nav runtime
//   - An Args struct whose Route method serializes a route
//   - A binder reading arguments back from a resolved entry
//
// A shared file lists the route patterns of all destinations.
package gen
