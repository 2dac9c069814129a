package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
)

// recordingAlerter captures alerts for assertions.
type recordingAlerter struct {
	mu    sync.Mutex
	calls []struct {
		title   string
		message string
		actions []domain.AlertAction
	}
}

func (a *recordingAlerter) Alert(title, message string, actions []domain.AlertAction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, struct {
		title   string
		message string
		actions []domain.AlertAction
	}{title, message, actions})
}

func TestLogErrorRecordsEntry(t *testing.T) {
	log := NewErrorLog()
	log.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	log.newID = func() string { return "fixed-id" }

	log.LogError(errors.New("save failed"), "session.setCredentials", "owner-1")

	entries := log.Entries()
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "fixed-id", entry.ID)
	assert.Equal(t, "save failed", entry.Message)
	assert.Equal(t, "session.setCredentials", entry.Context)
	assert.Equal(t, "owner-1", entry.UserID)
	assert.Equal(t, "*errors.errorString", entry.Name)
	assert.NotEmpty(t, entry.StackTrace)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), entry.Timestamp)
}

func TestLogErrorWithNilErrorKeepsContext(t *testing.T) {
	log := NewErrorLog()

	log.LogError(nil, "navigation.navigate")

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Message)
	assert.Equal(t, "navigation.navigate", entries[0].Context)
}

func TestBufferEvictsOldestBeyondCapacity(t *testing.T) {
	log := NewErrorLog()

	for i := 0; i < 150; i++ {
		log.LogError(fmt.Errorf("error %d", i), "test")
	}

	entries := log.Entries()
	require.Len(t, entries, domain.ErrorLogCapacity)
	assert.Equal(t, "error 50", entries[0].Message)
	assert.Equal(t, "error 149", entries[len(entries)-1].Message)
}

func TestEntriesReturnsDefensiveCopy(t *testing.T) {
	log := NewErrorLog()
	log.LogError(errors.New("original"), "test")

	entries := log.Entries()
	entries[0].Message = "mutated"

	assert.Equal(t, "original", log.Entries()[0].Message)
}

func TestClearEmptiesBuffer(t *testing.T) {
	log := NewErrorLog()
	log.LogError(errors.New("boom"), "test")

	log.Clear()

	assert.Empty(t, log.Entries())
}

func TestShowAlertSuppliesDefaultAction(t *testing.T) {
	alerter := &recordingAlerter{}
	log := NewErrorLog(WithAlerter(alerter))

	log.ShowAlert("Session Expired", "Please sign in again.")

	require.Len(t, alerter.calls, 1)
	call := alerter.calls[0]
	assert.Equal(t, "Session Expired", call.title)
	require.Len(t, call.actions, 1)
	assert.Equal(t, "OK", call.actions[0].Label)
}

func TestShowAlertKeepsExplicitActions(t *testing.T) {
	alerter := &recordingAlerter{}
	log := NewErrorLog(WithAlerter(alerter))

	log.ShowAlert("Discard changes?", "Unsaved edits will be lost.",
		domain.AlertAction{Label: "Cancel"},
		domain.AlertAction{Label: "Discard"},
	)

	require.Len(t, alerter.calls, 1)
	require.Len(t, alerter.calls[0].actions, 2)
	assert.Equal(t, "Cancel", alerter.calls[0].actions[0].Label)
}

func TestShowAlertWithoutAlerterIsDropped(t *testing.T) {
	log := NewErrorLog()

	// Must not panic.
	log.ShowAlert("title", "message")
}

func TestWithCapacityOverride(t *testing.T) {
	log := NewErrorLog(WithCapacity(3))

	for i := 0; i < 5; i++ {
		log.LogError(fmt.Errorf("error %d", i), "test")
	}

	entries := log.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "error 2", entries[0].Message)
}
