package driving

import (
	"context"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
)

// ConnectivityService exposes current reachability and a subscription
// registry over the platform's push-based connectivity events.
type ConnectivityService interface {
	// CheckConnectivity performs a one-shot reachability query.
	// Returns false on any query failure (fails closed); never panics.
	CheckConnectivity(ctx context.Context) bool

	// Subscribe registers a callback invoked on every connectivity
	// event. Returns its unsubscribe handle. Callbacks for one event
	// fire synchronously in registration order.
	Subscribe(fn func(domain.ConnectivityState)) (unsubscribe func())

	// UnsubscribeAll removes every registered callback. Idempotent.
	UnsubscribeAll()

	// Last returns the most recent event, or nil before the first one.
	Last() *domain.ConnectivityState
}
