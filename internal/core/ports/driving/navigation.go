package driving

import "github.com/homebase-labs/homebase-core/internal/core/domain"

// NavigationService exposes imperative navigation usable from outside
// the render tree. Before a live tree is attached, every operation is a
// no-op returning its zero result; nothing is queued and nothing
// panics.
type NavigationService interface {
	// IsReady reports whether a live tree is attached.
	IsReady() bool

	// Navigate appends to the history and dispatches to the tree.
	// Returns false when not ready or when dispatch fails.
	Navigate(name string, params map[string]any) bool

	// GoBack pops the current route if the tree reports it can.
	// Returns whether it actually went back.
	GoBack() bool

	// Reset replaces the entire stack with a single route and clears
	// the history. A hard discontinuity, not an incremental navigation.
	Reset(name string, params map[string]any, index int) bool

	// Replace swaps the current top route without growing the stack.
	Replace(name string, params map[string]any) bool

	// PopToTop collapses the stack to its root entry.
	PopToTop() bool

	// CurrentRoute returns the active route, or nil when not ready.
	CurrentRoute() *domain.Route

	// CurrentRouteName returns the active route name, or "".
	CurrentRouteName() string

	// History returns a defensive copy of the bounded history log.
	History() []domain.HistoryEntry

	// ClearHistory empties the history unconditionally.
	ClearHistory()
}
