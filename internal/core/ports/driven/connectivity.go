package driven

import (
	"context"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
)

// ConnectivityProbe performs a one-shot reachability query. A probe
// error means nothing is known about the network; callers fail closed.
type ConnectivityProbe interface {
	// Check queries current reachability.
	Check(ctx context.Context) (domain.ConnectivityState, error)
}

// ConnectivitySink receives pushed connectivity-change events from a
// platform event source. The monitor implements this; watchers call it.
type ConnectivitySink interface {
	// Notify delivers one connectivity event.
	Notify(state domain.ConnectivityState)
}
