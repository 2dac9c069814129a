package services

import (
	"sync"
	"time"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driven"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driving"
)

// Ensure NavigationCoordinator implements the interface.
var _ driving.NavigationService = (*NavigationCoordinator)(nil)

// NavigationCoordinator holds a deferred reference to the live
// navigation tree and exposes imperative navigation usable from
// outside the render tree, plus a bounded history log.
//
// Until Attach is called the coordinator is not ready: every operation
// returns its zero result immediately, mutates nothing, and queues
// nothing. Dispatch errors from the tree are logged and converted to a
// false result; they never propagate.
type NavigationCoordinator struct {
	mu      sync.Mutex
	nav     driven.Navigator
	history []domain.HistoryEntry

	capacity int
	errlog   driving.ErrorReporter

	// now is swappable for tests.
	now func() time.Time
}

// NavigationOption configures a NavigationCoordinator.
type NavigationOption func(*NavigationCoordinator)

// WithNavigationErrorLog routes swallowed dispatch failures to the
// given reporter.
func WithNavigationErrorLog(r driving.ErrorReporter) NavigationOption {
	return func(c *NavigationCoordinator) { c.errlog = r }
}

// NewNavigationCoordinator creates a coordinator in the not-ready
// state.
func NewNavigationCoordinator(opts ...NavigationOption) *NavigationCoordinator {
	c := &NavigationCoordinator{
		capacity: domain.HistoryCapacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attach binds the live navigation tree, moving the coordinator to
// ready. Called by the presentation layer once its tree is mounted.
func (c *NavigationCoordinator) Attach(nav driven.Navigator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nav = nav
}

// Detach releases the tree reference, reverting to not ready.
func (c *NavigationCoordinator) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nav = nil
}

// IsReady reports whether a live tree is attached.
func (c *NavigationCoordinator) IsReady() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nav != nil
}

// Navigate appends to the history and asks the tree to move to the
// route. The history append happens before dispatch; a failed dispatch
// keeps the entry, so the log records attempts rather than outcomes.
// Returns false when not ready or when dispatch fails.
func (c *NavigationCoordinator) Navigate(name string, params map[string]any) bool {
	c.mu.Lock()
	if c.nav == nil {
		c.mu.Unlock()
		return false
	}
	c.appendHistory(name, params)
	nav := c.nav
	c.mu.Unlock()

	if err := nav.Navigate(domain.Route{Name: name, Params: params}); err != nil {
		c.report(err, "navigation.navigate")
		return false
	}
	return true
}

// GoBack pops the current route if the tree reports it can go back.
// Returns whether it actually went back.
func (c *NavigationCoordinator) GoBack() bool {
	c.mu.Lock()
	nav := c.nav
	c.mu.Unlock()
	if nav == nil || !nav.CanGoBack() {
		return false
	}
	if err := nav.GoBack(); err != nil {
		c.report(err, "navigation.goBack")
		return false
	}
	return true
}

// Reset replaces the entire route stack with a single-route stack and
// clears the history log. A hard discontinuity, used for root changes
// such as a logout.
func (c *NavigationCoordinator) Reset(name string, params map[string]any, index int) bool {
	c.mu.Lock()
	if c.nav == nil {
		c.mu.Unlock()
		return false
	}
	c.history = nil
	nav := c.nav
	c.mu.Unlock()

	if err := nav.Reset(domain.Route{Name: name, Params: params}, index); err != nil {
		c.report(err, "navigation.reset")
		return false
	}
	return true
}

// Replace swaps the current top route without growing the stack.
func (c *NavigationCoordinator) Replace(name string, params map[string]any) bool {
	c.mu.Lock()
	nav := c.nav
	c.mu.Unlock()
	if nav == nil {
		return false
	}
	if err := nav.Replace(domain.Route{Name: name, Params: params}); err != nil {
		c.report(err, "navigation.replace")
		return false
	}
	return true
}

// PopToTop collapses the stack to its root entry.
func (c *NavigationCoordinator) PopToTop() bool {
	c.mu.Lock()
	nav := c.nav
	c.mu.Unlock()
	if nav == nil {
		return false
	}
	if err := nav.PopToTop(); err != nil {
		c.report(err, "navigation.popToTop")
		return false
	}
	return true
}

// CurrentRoute returns the active route, or nil when not ready.
func (c *NavigationCoordinator) CurrentRoute() *domain.Route {
	c.mu.Lock()
	nav := c.nav
	c.mu.Unlock()
	if nav == nil {
		return nil
	}
	return nav.CurrentRoute()
}

// CurrentRouteName returns the active route name, or "".
func (c *NavigationCoordinator) CurrentRouteName() string {
	route := c.CurrentRoute()
	if route == nil {
		return ""
	}
	return route.Name
}

// History returns a defensive copy of the history log, oldest first.
func (c *NavigationCoordinator) History() []domain.HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.HistoryEntry, len(c.history))
	copy(out, c.history)
	return out
}

// ClearHistory empties the history unconditionally.
func (c *NavigationCoordinator) ClearHistory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}

// appendHistory records an entry, evicting the oldest beyond capacity.
// Caller must hold the mutex.
func (c *NavigationCoordinator) appendHistory(name string, params map[string]any) {
	c.history = append(c.history, domain.HistoryEntry{
		Name:      name,
		Params:    params,
		Timestamp: c.now().UTC(),
	})
	if len(c.history) > c.capacity {
		c.history = c.history[len(c.history)-c.capacity:]
	}
}

func (c *NavigationCoordinator) report(err error, context string) {
	if c.errlog != nil {
		c.errlog.LogError(err, context)
	}
}
