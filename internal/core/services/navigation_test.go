package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
)

// fakeNavigator records dispatches and can fail on demand.
type fakeNavigator struct {
	failWith  error
	canGoBack bool

	navigated []domain.Route
	backs     int
	resets    []domain.Route
	replaced  []domain.Route
	popped    int
	current   *domain.Route
}

func (f *fakeNavigator) Navigate(route domain.Route) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.navigated = append(f.navigated, route)
	f.current = &route
	return nil
}

func (f *fakeNavigator) CanGoBack() bool { return f.canGoBack }

func (f *fakeNavigator) GoBack() error {
	if f.failWith != nil {
		return f.failWith
	}
	f.backs++
	return nil
}

func (f *fakeNavigator) Reset(route domain.Route, _ int) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.resets = append(f.resets, route)
	f.current = &route
	return nil
}

func (f *fakeNavigator) Replace(route domain.Route) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.replaced = append(f.replaced, route)
	f.current = &route
	return nil
}

func (f *fakeNavigator) PopToTop() error {
	if f.failWith != nil {
		return f.failWith
	}
	f.popped++
	return nil
}

func (f *fakeNavigator) CurrentRoute() *domain.Route { return f.current }

func TestNavigationBeforeAttachIsInert(t *testing.T) {
	coord := NewNavigationCoordinator()

	assert.False(t, coord.IsReady())
	assert.False(t, coord.Navigate("Rooms", nil))
	assert.False(t, coord.GoBack())
	assert.False(t, coord.Reset("Login", nil, 0))
	assert.False(t, coord.Replace("Rooms", nil))
	assert.False(t, coord.PopToTop())
	assert.Nil(t, coord.CurrentRoute())
	assert.Equal(t, "", coord.CurrentRouteName())
	assert.Empty(t, coord.History())
}

func TestNavigateDispatchesAndRecordsHistory(t *testing.T) {
	nav := &fakeNavigator{}
	coord := NewNavigationCoordinator()
	coord.Attach(nav)
	require.True(t, coord.IsReady())

	params := map[string]any{"roomId": "room-7"}
	assert.True(t, coord.Navigate("RoomDetail", params))

	require.Len(t, nav.navigated, 1)
	assert.Equal(t, "RoomDetail", nav.navigated[0].Name)
	assert.Equal(t, "RoomDetail", coord.CurrentRouteName())

	history := coord.History()
	require.Len(t, history, 1)
	assert.Equal(t, "RoomDetail", history[0].Name)
	assert.Equal(t, params, history[0].Params)
	assert.False(t, history[0].Timestamp.IsZero())
}

func TestHistoryIsBoundedOldestFirstEviction(t *testing.T) {
	coord := NewNavigationCoordinator()
	coord.Attach(&fakeNavigator{})

	tick := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	coord.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	for i := 0; i < 15; i++ {
		require.True(t, coord.Navigate(fmt.Sprintf("Screen%d", i), nil))
	}

	history := coord.History()
	require.Len(t, history, domain.HistoryCapacity)
	// The five oldest entries are gone; order is preserved.
	assert.Equal(t, "Screen5", history[0].Name)
	assert.Equal(t, "Screen14", history[len(history)-1].Name)
	for i := 1; i < len(history); i++ {
		assert.True(t, history[i].Timestamp.After(history[i-1].Timestamp))
	}
}

func TestFailedDispatchKeepsHistoryEntryAndLogs(t *testing.T) {
	nav := &fakeNavigator{failWith: errors.New("tree unmounted")}
	errlog := NewErrorLog()
	coord := NewNavigationCoordinator(WithNavigationErrorLog(errlog))
	coord.Attach(nav)

	assert.False(t, coord.Navigate("Rooms", nil))

	// The attempt itself is recorded even though dispatch failed.
	require.Len(t, coord.History(), 1)
	entries := errlog.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "navigation.navigate", entries[0].Context)
}

func TestGoBackHonoursCanGoBack(t *testing.T) {
	nav := &fakeNavigator{canGoBack: false}
	coord := NewNavigationCoordinator()
	coord.Attach(nav)

	assert.False(t, coord.GoBack())
	assert.Zero(t, nav.backs)

	nav.canGoBack = true
	assert.True(t, coord.GoBack())
	assert.Equal(t, 1, nav.backs)
}

func TestResetClearsHistory(t *testing.T) {
	nav := &fakeNavigator{}
	coord := NewNavigationCoordinator()
	coord.Attach(nav)

	require.True(t, coord.Navigate("Rooms", nil))
	require.True(t, coord.Navigate("Tenants", nil))
	require.Len(t, coord.History(), 2)

	assert.True(t, coord.Reset("Login", nil, 0))

	assert.Empty(t, coord.History())
	require.Len(t, nav.resets, 1)
	assert.Equal(t, "Login", nav.resets[0].Name)
}

func TestDetachRevertsToNotReady(t *testing.T) {
	coord := NewNavigationCoordinator()
	coord.Attach(&fakeNavigator{})
	require.True(t, coord.Navigate("Rooms", nil))

	coord.Detach()

	assert.False(t, coord.IsReady())
	assert.False(t, coord.Navigate("Tenants", nil))
	// Detaching does not erase the log.
	assert.Len(t, coord.History(), 1)
}

func TestHistoryReturnsDefensiveCopy(t *testing.T) {
	coord := NewNavigationCoordinator()
	coord.Attach(&fakeNavigator{})
	require.True(t, coord.Navigate("Rooms", nil))

	history := coord.History()
	history[0].Name = "mutated"

	assert.Equal(t, "Rooms", coord.History()[0].Name)
}
