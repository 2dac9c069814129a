package domain

// SessionState describes whether, and as whom, the app is currently
// authenticated.
type SessionState string

const (
	// StateUninitialized is the state before LoadSession has been called.
	StateUninitialized SessionState = "uninitialized"
	// StateLoading is the state while the persisted record is being read
	// and validated.
	StateLoading SessionState = "loading"
	// StateAuthenticated means a credential record is held in memory.
	StateAuthenticated SessionState = "authenticated"
	// StateAnonymous means no credential record is held.
	StateAnonymous SessionState = "anonymous"
)

// ValidationPolicy controls what happens when token validation fails
// during session load.
type ValidationPolicy string

const (
	// PolicyOptimistic keeps stale credentials when validation fails,
	// allowing offline-first operation with an unvalidated token.
	PolicyOptimistic ValidationPolicy = "optimistic"
	// PolicyStrict drops to anonymous when validation fails.
	PolicyStrict ValidationPolicy = "strict"
)

// ValidationCode classifies a token validation outcome.
type ValidationCode string

const (
	// ValidationOK means the token was accepted by the backend.
	ValidationOK ValidationCode = ""
	// ValidationNoToken means no token was supplied.
	ValidationNoToken ValidationCode = "NO_TOKEN"
	// ValidationInvalidToken means the backend rejected the token.
	ValidationInvalidToken ValidationCode = "INVALID_TOKEN"
	// ValidationError means the validation call itself failed
	// (network, decode) and nothing is known about the token.
	ValidationError ValidationCode = "VALIDATION_ERROR"
)

// TokenValidation is the result of validating an access token.
// It is always returned by value; validation never raises.
type TokenValidation struct {
	// IsValid reports whether the token was accepted.
	IsValid bool `json:"isValid"`
	// User holds the profile fetched during validation, when valid.
	User *User `json:"userData,omitempty"`
	// Code classifies the failure; empty when valid.
	Code ValidationCode `json:"error,omitempty"`
}

// RefreshCode classifies a token refresh outcome.
type RefreshCode string

const (
	// RefreshOK means new tokens were issued.
	RefreshOK RefreshCode = ""
	// RefreshNoToken means no refresh token was supplied.
	RefreshNoToken RefreshCode = "NO_REFRESH_TOKEN"
	// RefreshError means the refresh operation failed.
	RefreshError RefreshCode = "REFRESH_ERROR"
)

// TokenPair holds an access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// TokenRefresh is the result of a token refresh attempt.
type TokenRefresh struct {
	// Success reports whether tokens were issued.
	Success bool `json:"success"`
	// Tokens holds the issued pair, when successful.
	Tokens *TokenPair `json:"tokens,omitempty"`
	// Code classifies the failure; empty when successful.
	Code RefreshCode `json:"error,omitempty"`
}

// LogoutResult is the outcome of a logout. Storage failures during key
// removal are reported here rather than raised.
type LogoutResult struct {
	// Success reports whether all requested keys were removed.
	Success bool `json:"success"`
	// Err describes the failure, when any.
	Err string `json:"error,omitempty"`
}
