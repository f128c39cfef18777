// Package analyze discovers destination declarations in Go source.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// struct types marked with a navgen directive in their doc comment:
//
//	// Search lists results for a query.
//	//
//	//navgen:destination id=search
//	type Search struct {
//	    Query string  `nav:"query"`
//	    Page  int     `nav:"page,default=1"`
//	    Sort  *string `nav:"sort"`
//	}
//
// Directive keys:
//   - id: destination identifier (default: snake_case type name)
//   - name: Go name prefix for generated code (default: type name)
//
// Each exported field becomes an argument in field order. The nav tag sets
// the argument name (default: camelCase field name) and an optional default;
// "-" skips the field. Pointer fields are nullable. Field types must have a
// string, integer, bool or float underlying type.
package analyze
