package domain

import "time"

// ErrorLogCapacity bounds the diagnostics ring buffer. Eviction is
// oldest-first; entries are append-only.
const ErrorLogCapacity = 100

// ErrorEntry is one recorded diagnostic event.
type ErrorEntry struct {
	// ID is a unique identifier (UUID).
	ID string `json:"id"`
	// Timestamp is when the entry was recorded.
	Timestamp time.Time `json:"timestamp"`
	// Message is the error message.
	Message string `json:"message"`
	// StackTrace is the call stack at the log site, when captured.
	StackTrace string `json:"stackTrace,omitempty"`
	// Name is the concrete error type, when known.
	Name string `json:"name,omitempty"`
	// Context names the operation that produced the error.
	Context string `json:"context"`
	// UserID identifies the signed-in user at the time, when known.
	UserID string `json:"userId,omitempty"`
}

// AlertAction is one button on a user-facing alert.
type AlertAction struct {
	// Label is the button text.
	Label string `json:"label"`
	// OnPress is invoked when the action is chosen. May be nil.
	OnPress func() `json:"-"`
}
