// Package alert provides terminal-side implementations of the alert
// surface. The mobile presentation layer supplies its own; the CLI
// harness and tests use these.
package alert

import (
	"fmt"
	"io"
	"sync"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driven"
)

// Ensure implementations satisfy the interface.
var (
	_ driven.Alerter = (*WriterAlerter)(nil)
	_ driven.Alerter = (*RecordingAlerter)(nil)
)

// WriterAlerter prints alerts to a writer. Used by the CLI harness.
type WriterAlerter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterAlerter creates an alerter writing to out.
func NewWriterAlerter(out io.Writer) *WriterAlerter {
	return &WriterAlerter{out: out}
}

// Alert prints the alert and its actions.
func (a *WriterAlerter) Alert(title, message string, actions []domain.AlertAction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintf(a.out, "ALERT: %s\n  %s\n", title, message)
	for _, action := range actions {
		fmt.Fprintf(a.out, "  [%s]\n", action.Label)
	}
}

// RecordingAlerter captures alerts for assertions in tests.
type RecordingAlerter struct {
	mu    sync.Mutex
	shown []RecordedAlert
}

// RecordedAlert is one captured alert.
type RecordedAlert struct {
	Title   string
	Message string
	Actions []domain.AlertAction
}

// NewRecordingAlerter creates an empty recorder.
func NewRecordingAlerter() *RecordingAlerter {
	return &RecordingAlerter{}
}

// Alert records the alert.
func (a *RecordingAlerter) Alert(title, message string, actions []domain.AlertAction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.shown = append(a.shown, RecordedAlert{Title: title, Message: message, Actions: actions})
}

// Shown returns a copy of the captured alerts.
func (a *RecordingAlerter) Shown() []RecordedAlert {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]RecordedAlert, len(a.shown))
	copy(out, a.shown)
	return out
}
