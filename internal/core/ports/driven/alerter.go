package driven

import "github.com/homebase-labs/homebase-core/internal/core/domain"

// Alerter presents a blocking user-facing alert. Implementations must
// not fail; an alert that cannot be shown is dropped silently.
type Alerter interface {
	// Alert shows a titled message with the given actions.
	Alert(title, message string, actions []domain.AlertAction)
}
