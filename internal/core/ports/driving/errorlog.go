package driving

import "github.com/homebase-labs/homebase-core/internal/core/domain"

// ErrorReporter is the terminal sink for diagnostics. Logging must
// never fail and never panic the caller.
type ErrorReporter interface {
	// LogError records an error with the operation that produced it.
	LogError(err error, context string, userID ...string)

	// LogInfo records an informational event in development builds;
	// a no-op in production.
	LogInfo(message, context string, data map[string]any)

	// Entries returns a defensive copy of the ring buffer.
	Entries() []domain.ErrorEntry

	// Clear empties the buffer unconditionally.
	Clear()

	// ShowAlert triggers a user-facing alert, defaulting to a single
	// OK action when none are given.
	ShowAlert(title, message string, actions ...domain.AlertAction)
}
