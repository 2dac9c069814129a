package domain

import "time"

// HistoryCapacity bounds the navigation history log. Insertion order is
// the only meaningful order; the oldest entry is evicted first.
const HistoryCapacity = 10

// Route identifies a screen in the presentation layer's route tree.
// The coordinator treats names as opaque; it holds no knowledge of the
// tree's structure.
type Route struct {
	// Name is the route name recognised by the presentation layer.
	Name string `json:"name"`
	// Params are the route parameters, if any.
	Params map[string]any `json:"params,omitempty"`
}

// HistoryEntry records one imperative navigation attempt. Failed
// dispatches are recorded too; the log tracks intent, not outcome.
type HistoryEntry struct {
	// Name is the route navigated to.
	Name string `json:"name"`
	// Params are the parameters the route was invoked with.
	Params map[string]any `json:"params,omitempty"`
	// Timestamp is when the navigation was dispatched.
	Timestamp time.Time `json:"timestamp"`
}
