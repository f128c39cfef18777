// Package nav builds and reads type-safe navigation routes.
//
// A Destination declares an identifier and an ordered list of arguments.
// Each argument is keyed by an application-defined type implementing Key,
// has a declared ArgType, and is either required or optional:
//
//   - required arguments have no default and are not nullable; they are
//     written positionally into the path ("search/42/books")
//   - optional arguments have a default or are nullable; they are written
//     as named query parameters ("search/?page=2&sort=asc")
//
// NewRoute serializes a destination and its Values into a route string for
// the host navigation controller. In the other direction, Bind reads typed
// values back out of a resolved Entry. Resolve is a reference resolver that
// turns a route string back into an Entry the way a host controller would.
//
// # Basic Usage
//
//	type SearchKey string
//
//	func (k SearchKey) ArgumentKey() string { return string(k) }
//
//	const (
//	    SearchQuery SearchKey = "query"
//	    SearchPage  SearchKey = "page"
//	)
//
//	var Search = nav.MustDestination("search",
//	    nav.Argument[SearchKey]{Key: SearchQuery, Type: nav.TypeString},
//	    nav.Argument[SearchKey]{Key: SearchPage, Type: nav.TypeInt, Default: nav.Default(nav.Int(1))},
//	)
//
//	route, err := nav.NewRoute(Search, nav.Values[SearchKey]{
//	    SearchQuery: nav.String("books"),
//	})
//	// route.String() == "search/books?page=1"
//
// Destinations are usually not written by hand: cmd/navgen generates the key
// type, the destination descriptor and a typed Args struct from declarations.
package nav
