package nav

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Navigator is the host navigation controller a route is handed to.
type Navigator interface {
	Navigate(ctx context.Context, route string) error
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(ctx context.Context, route string) error

// Navigate calls f(ctx, route).
func (f NavigatorFunc) Navigate(ctx context.Context, route string) error {
	return f(ctx, route)
}

// Navigate builds the route for d and values and hands it to n.
// Route construction errors are returned before n is called.
func Navigate[K Key](ctx context.Context, n Navigator, d *Destination[K], values Values[K]) error {
	route, err := NewRoute(d, values)
	if err != nil {
		return err
	}

	Logger().Debug("navigate",
		zap.String("destination", route.Destination()),
		zap.String("route", route.String()))

	if err := n.Navigate(ctx, route.String()); err != nil {
		return fmt.Errorf("navigate to %s: %w", route, err)
	}
	return nil
}
