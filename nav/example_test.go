package nav_test

import (
	"context"
	"fmt"

	"navroute-generator/nav"
)

type SearchKey string

func (k SearchKey) ArgumentKey() string { return string(k) }

const (
	SearchQuery SearchKey = "query"
	SearchPage  SearchKey = "page"
	SearchSort  SearchKey = "sort"
)

var Search = nav.MustDestination("search",
	nav.Argument[SearchKey]{Key: SearchQuery, Type: nav.TypeString},
	nav.Argument[SearchKey]{Key: SearchPage, Type: nav.TypeInt, Default: nav.Default(nav.Int(1))},
	nav.Argument[SearchKey]{Key: SearchSort, Type: nav.TypeString, Nullable: true},
)

// Example builds a route, resolves it the way a host controller would, and
// reads the arguments back.
func Example() {
	route, err := nav.NewRoute(Search, nav.Values[SearchKey]{
		SearchQuery: nav.String("go books"),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(Search.Pattern())
	fmt.Println(route)

	entry, err := nav.Resolve(Search, route.String())
	if err != nil {
		fmt.Println(err)
		return
	}
	args := nav.Bind(Search, entry)

	query, _ := args.GetString(SearchQuery)
	page, _ := args.GetInt(SearchPage)
	_, err = args.GetString(SearchSort)
	fmt.Println(query, page)
	fmt.Println(err)

	// Output:
	// search/{query}?page={page}&sort={sort}
	// search/go%20books?page=1
	// go books 1
	// nav: destination "search" argument "sort": argument value is null
}

// ExampleNavigate hands a route to a host controller.
func ExampleNavigate() {
	controller := nav.NavigatorFunc(func(_ context.Context, route string) error {
		fmt.Println("navigate:", route)
		return nil
	})

	err := nav.Navigate(context.Background(), controller, Search, nav.Values[SearchKey]{
		SearchQuery: nav.String("maps"),
		SearchPage:  nav.Int(3),
		SearchSort:  nav.String("new"),
	})
	fmt.Println(err)

	err = nav.Navigate(context.Background(), controller, Search, nil)
	fmt.Println(err)

	// Output:
	// navigate: search/maps?page=3&sort=new
	// <nil>
	// nav: destination "search" argument "query": missing required argument
}
