// Package schema defines destination declarations and loads them from
// YAML and HCL files.
//
// Declarations are the generator's input: plain data describing each
// destination and its arguments. They can also be discovered from annotated
// Go structs (see package analyze); all sources produce the same types.
//
// # YAML
//
//	version: "1"
//	package: navigation
//	destinations:
//	  - id: search
//	    arguments:
//	      - name: query
//	        type: string
//	      - name: page
//	        type: int
//	        default: 1
//	      - name: sort
//	        type: string
//	        nullable: true
//
// # HCL
//
//	package = "navigation"
//
//	destination "search" {
//	  argument "query" {
//	    type = "string"
//	  }
//	  argument "page" {
//	    type    = "int"
//	    default = 1
//	  }
//	  argument "sort" {
//	    type     = "string"
//	    nullable = true
//	  }
//	}
//
// # Arguments
//
// An argument with neither a default nor nullable is required and becomes a
// path segment; every other argument is optional and becomes a query
// parameter. "default: null" declares an explicit null default, which is only
// meaningful for nullable arguments.
package schema
