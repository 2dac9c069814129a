package connectivity

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driven"
	"github.com/homebase-labs/homebase-core/internal/logger"
)

// DefaultInterval is how often the watcher samples the probe.
const DefaultInterval = 15 * time.Second

// Watcher samples the probe and pushes state changes into the sink.
// On a mobile runtime the OS delivers these events itself; here the
// watcher is the event source, and the monitor downstream stays purely
// push-based.
type Watcher struct {
	probe    driven.ConnectivityProbe
	sink     driven.ConnectivitySink
	interval time.Duration

	started  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewWatcher creates a watcher feeding the sink. A non-positive
// interval selects DefaultInterval.
func NewWatcher(probe driven.ConnectivityProbe, sink driven.ConnectivitySink, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{
		probe:    probe,
		sink:     sink,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins watching. The initial state is always delivered; after
// that only changes are. Only the first call starts the loop.
func (w *Watcher) Start(ctx context.Context) {
	if !w.started.CompareAndSwap(false, true) {
		return
	}
	go w.run(ctx)
}

// Stop halts the watcher and waits for the loop to exit. Idempotent,
// and safe on a watcher that was never started.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	if w.started.Load() {
		<-w.done
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var last *domain.ConnectivityState
	last = w.sample(ctx, last, true)

	for {
		select {
		case <-w.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			last = w.sample(ctx, last, false)
		}
	}
}

// sample probes once and notifies the sink when the state changed.
func (w *Watcher) sample(ctx context.Context, last *domain.ConnectivityState, force bool) *domain.ConnectivityState {
	state, err := w.probe.Check(ctx)
	if err != nil {
		// Nothing is known; fail closed and report a disconnect once.
		logger.Warn("connectivity: probe failed: %v", err)
		reachable := false
		state = domain.ConnectivityState{IsInternetReachable: &reachable}
	}

	if force || last == nil || changed(*last, state) {
		w.sink.Notify(state)
	}
	return &state
}

// changed compares the observable parts of two states.
func changed(a, b domain.ConnectivityState) bool {
	if a.IsConnected != b.IsConnected {
		return true
	}
	return a.Online() != b.Online()
}
