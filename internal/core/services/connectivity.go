package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driven"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driving"
)

// Ensure ConnectivityMonitor implements both ports: the driving service
// and the sink that platform watchers push events into.
var (
	_ driving.ConnectivityService = (*ConnectivityMonitor)(nil)
	_ driven.ConnectivitySink     = (*ConnectivityMonitor)(nil)
)

// ConnectivityMonitor relays pushed connectivity events to registered
// subscribers and answers one-shot reachability queries. It does not
// poll; events arrive from a platform watcher via Notify.
//
// For a single event, callbacks fire synchronously in registration
// order and all receive the same state value. There is no cross-event
// ordering guarantee beyond the watcher's delivery order.
type ConnectivityMonitor struct {
	mu    sync.Mutex
	probe driven.ConnectivityProbe
	subs  []*subscription
	last  *domain.ConnectivityState
}

// subscription pairs a callback with its active flag so an unsubscribe
// handle stays idempotent after UnsubscribeAll. The flag is atomic:
// Notify reads it after releasing the registry lock, racing against an
// unsubscribe on another goroutine.
type subscription struct {
	fn     func(domain.ConnectivityState)
	active atomic.Bool
}

// NewConnectivityMonitor creates a monitor over the given probe.
func NewConnectivityMonitor(probe driven.ConnectivityProbe) *ConnectivityMonitor {
	return &ConnectivityMonitor{probe: probe}
}

// CheckConnectivity performs a one-shot reachability query. Any probe
// failure fails closed: the answer is false, never an error.
func (m *ConnectivityMonitor) CheckConnectivity(ctx context.Context) bool {
	if m.probe == nil {
		return false
	}
	state, err := m.probe.Check(ctx)
	if err != nil {
		return false
	}
	return state.Online()
}

// Subscribe registers a callback for every subsequent connectivity
// event and returns its unsubscribe handle. Handles are independent
// and idempotent.
func (m *ConnectivityMonitor) Subscribe(fn func(domain.ConnectivityState)) func() {
	sub := &subscription{fn: fn}
	sub.active.Store(true)

	m.mu.Lock()
	m.subs = append(m.subs, sub)
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.remove(sub)
	}
}

// UnsubscribeAll removes every registered callback. Idempotent;
// previously returned unsubscribe handles become no-ops.
func (m *ConnectivityMonitor) UnsubscribeAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sub := range m.subs {
		sub.active.Store(false)
	}
	m.subs = nil
}

// Last returns the most recent event, or nil before the first one.
func (m *ConnectivityMonitor) Last() *domain.ConnectivityState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == nil {
		return nil
	}
	s := *m.last
	return &s
}

// Notify delivers one connectivity event to every subscriber, in
// registration order, synchronously. Called by the platform watcher.
func (m *ConnectivityMonitor) Notify(state domain.ConnectivityState) {
	m.mu.Lock()
	s := state
	m.last = &s
	subs := make([]*subscription, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	// Callbacks run outside the lock so a subscriber may subscribe or
	// unsubscribe from within its callback without deadlocking.
	for _, sub := range subs {
		if sub.active.Load() {
			sub.fn(state)
		}
	}
}

// remove deletes one subscription. Caller must hold the mutex.
func (m *ConnectivityMonitor) remove(target *subscription) {
	if !target.active.CompareAndSwap(true, false) {
		return
	}
	for i, sub := range m.subs {
		if sub == target {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			return
		}
	}
}
