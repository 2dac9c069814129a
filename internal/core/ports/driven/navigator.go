package driven

import "github.com/homebase-labs/homebase-core/internal/core/domain"

// Navigator is the live navigation tree owned by the presentation
// layer. The coordinator holds it behind this interface and treats the
// tree as opaque; implementations may fail any dispatch and the
// coordinator converts the failure to a boolean result.
type Navigator interface {
	// Navigate moves to the named route.
	Navigate(route domain.Route) error

	// CanGoBack reports whether a back navigation is possible.
	CanGoBack() bool

	// GoBack pops the current route.
	GoBack() error

	// Reset replaces the entire route stack with a single-route stack
	// at the given route and index.
	Reset(route domain.Route, index int) error

	// Replace swaps the current top route without growing the stack.
	Replace(route domain.Route) error

	// PopToTop collapses the stack to its root entry.
	PopToTop() error

	// CurrentRoute returns the route at the top of the stack, or nil.
	CurrentRoute() *domain.Route
}
