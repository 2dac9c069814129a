package services

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driven"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driving"
	"github.com/homebase-labs/homebase-core/internal/logger"
)

// Ensure ErrorLog implements the interface.
var _ driving.ErrorReporter = (*ErrorLog)(nil)

// ErrorLog is a bounded ring buffer of recent errors and info events
// for diagnostics, plus the trigger for user-facing alerts. Append
// only; the oldest entry is evicted when capacity is exceeded.
type ErrorLog struct {
	mu      sync.Mutex
	entries []domain.ErrorEntry

	capacity int
	dev      bool
	alerter  driven.Alerter

	// now and newID are swappable for tests.
	now   func() time.Time
	newID func() string
}

// ErrorLogOption configures an ErrorLog.
type ErrorLogOption func(*ErrorLog)

// WithDevMode enables the live console sink and info logging.
func WithDevMode(dev bool) ErrorLogOption {
	return func(l *ErrorLog) { l.dev = dev }
}

// WithAlerter sets the alert surface. Without one, alerts are dropped.
func WithAlerter(a driven.Alerter) ErrorLogOption {
	return func(l *ErrorLog) { l.alerter = a }
}

// WithCapacity overrides the buffer capacity. Values below one fall
// back to the default.
func WithCapacity(n int) ErrorLogOption {
	return func(l *ErrorLog) {
		if n > 0 {
			l.capacity = n
		}
	}
}

// NewErrorLog creates an error log with the default capacity.
func NewErrorLog(opts ...ErrorLogOption) *ErrorLog {
	l := &ErrorLog{
		capacity: domain.ErrorLogCapacity,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LogError records an error. It never fails; a nil error is recorded
// as an entry with an empty message so the context is not lost.
func (l *ErrorLog) LogError(err error, context string, userID ...string) {
	entry := domain.ErrorEntry{
		ID:        l.newID(),
		Timestamp: l.now().UTC(),
		Context:   context,
	}
	if err != nil {
		entry.Message = err.Error()
		entry.Name = fmt.Sprintf("%T", err)
		entry.StackTrace = string(debug.Stack())
	}
	if len(userID) > 0 {
		entry.UserID = userID[0]
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
	dev := l.dev
	l.mu.Unlock()

	if dev {
		logger.Warn("[%s] %s", context, entry.Message)
	}
}

// LogInfo records an informational event in development mode.
// A no-op in production builds.
func (l *ErrorLog) LogInfo(message, context string, data map[string]any) {
	l.mu.Lock()
	dev := l.dev
	l.mu.Unlock()
	if !dev {
		return
	}
	if data != nil {
		logger.Info("[%s] %s %v", context, message, data)
	} else {
		logger.Info("[%s] %s", context, message)
	}
}

// Entries returns a defensive copy of the buffer, oldest first.
func (l *ErrorLog) Entries() []domain.ErrorEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.ErrorEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear empties the buffer unconditionally.
func (l *ErrorLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// ShowAlert triggers a user-facing alert. When no actions are given, a
// single dismissive OK action is supplied.
func (l *ErrorLog) ShowAlert(title, message string, actions ...domain.AlertAction) {
	l.mu.Lock()
	alerter := l.alerter
	l.mu.Unlock()
	if alerter == nil {
		return
	}
	if len(actions) == 0 {
		actions = []domain.AlertAction{{Label: "OK"}}
	}
	alerter.Alert(title, message, actions)
}
