package driving

import (
	"context"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
)

// SessionService owns the authenticated identity. It is the sole writer
// of the persisted credential record. Its operations never raise raw
// infrastructure errors; failures are converted to typed results and
// recorded in the error log.
type SessionService interface {
	// LoadSession reads the persisted record at process start and
	// resolves the session to authenticated or anonymous. It always
	// completes, regardless of validation outcome.
	LoadSession(ctx context.Context)

	// SetCredentials replaces the identity wholesale and persists it.
	// Returns ErrInvalidInput for records violating the presence
	// invariant; persistence failures are swallowed and logged.
	SetCredentials(ctx context.Context, creds domain.Credentials) error

	// ClearCredentials removes the identity. Idempotent.
	ClearCredentials(ctx context.Context)

	// State returns the current session state.
	State() domain.SessionState

	// Credentials returns the current record, or nil when anonymous.
	// The returned value is a copy.
	Credentials() *domain.Credentials

	// AccessToken returns the current access token, or "".
	AccessToken() string

	// ValidateToken classifies a token against the backend.
	ValidateToken(ctx context.Context, token string) domain.TokenValidation

	// RefreshToken exchanges a refresh token for a new pair.
	RefreshToken(ctx context.Context, refreshToken string) domain.TokenRefresh

	// Logout removes the core session keys, plus cache and preference
	// keys when clearAllData is true.
	Logout(ctx context.Context, token string, clearAllData bool) domain.LogoutResult

	// OnChange registers a callback invoked after every state change.
	OnChange(fn func(domain.SessionState))
}
