package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driven"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driving"
	"github.com/homebase-labs/homebase-core/internal/logger"
)

// Ensure SessionManager implements the interface.
var _ driving.SessionService = (*SessionManager)(nil)

// SessionManager owns the current authenticated identity. It is the
// sole writer of the persisted credential record.
//
// Every state and persistence transition runs under one mutex, so
// racing SetCredentials/ClearCredentials calls serialise and the last
// issued call wins. Persistence failures on the save and clear paths
// are swallowed by policy: they are recorded in the error log but not
// surfaced to the caller (best-effort persistence).
type SessionManager struct {
	mu    sync.Mutex
	store driven.KVStore
	api   driven.AuthAPI

	policy domain.ValidationPolicy
	errlog driving.ErrorReporter

	state    domain.SessionState
	creds    *domain.Credentials
	onChange []func(domain.SessionState)
}

// SessionOption configures a SessionManager.
type SessionOption func(*SessionManager)

// WithValidationPolicy selects what LoadSession does when token
// validation fails. The default is PolicyOptimistic: keep the stale
// credentials and proceed authenticated.
func WithValidationPolicy(p domain.ValidationPolicy) SessionOption {
	return func(s *SessionManager) {
		if p == domain.PolicyStrict || p == domain.PolicyOptimistic {
			s.policy = p
		}
	}
}

// WithSessionErrorLog routes swallowed persistence failures to the
// given reporter.
func WithSessionErrorLog(r driving.ErrorReporter) SessionOption {
	return func(s *SessionManager) { s.errlog = r }
}

// NewSessionManager creates a session manager over the given store.
// The API may be nil until BindAuthAPI is called; validation is then
// skipped and load behaves optimistically.
func NewSessionManager(store driven.KVStore, api driven.AuthAPI, opts ...SessionOption) *SessionManager {
	s := &SessionManager{
		store:  store,
		api:    api,
		policy: domain.PolicyOptimistic,
		state:  domain.StateUninitialized,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BindAuthAPI attaches the remote API after construction. Needed
// because the API client's bearer token source points back at this
// session, so the two cannot be built in one step.
func (s *SessionManager) BindAuthAPI(api driven.AuthAPI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.api = api
}

// LoadSession reads the persisted credential record and resolves the
// session. An absent or corrupt record resolves to anonymous. A present
// record is validated against the backend; on validation failure the
// configured policy decides whether the stale credentials are kept
// (optimistic) or dropped (strict). Loading always completes.
func (s *SessionManager) LoadSession(ctx context.Context) {
	s.mu.Lock()
	s.state = domain.StateLoading
	s.mu.Unlock()
	s.notify(domain.StateLoading)

	creds, err := s.readStored(ctx)
	if err != nil {
		if err != domain.ErrNoCredentials && err != domain.ErrCorruptCredentials {
			s.report(err, "session.load")
		}
		s.transition(nil, domain.StateAnonymous)
		return
	}

	result := s.ValidateToken(ctx, creds.AccessToken)
	switch {
	case result.IsValid:
		if result.User != nil {
			creds.User = *result.User
		}
		s.transition(creds, domain.StateAuthenticated)
	case s.policy == domain.PolicyStrict:
		logger.Debug("session: validation failed (%s), strict policy drops credentials", result.Code)
		s.transition(nil, domain.StateAnonymous)
	default:
		// Optimistic: operate with the unvalidated, possibly stale
		// token. The first authenticated API call will flush it out.
		logger.Debug("session: validation failed (%s), keeping stale credentials", result.Code)
		s.transition(creds, domain.StateAuthenticated)
	}
}

// SetCredentials replaces the identity wholesale and persists it.
// Records violating the presence invariant are rejected. Persistence
// failure does not fail the call; it is logged and the in-memory
// identity still changes.
func (s *SessionManager) SetCredentials(ctx context.Context, creds domain.Credentials) error {
	if !creds.Valid() {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	if err := s.persist(ctx, creds); err != nil {
		s.reportLocked(err, "session.setCredentials", creds.User.ID)
	}
	c := creds
	s.creds = &c
	s.state = domain.StateAuthenticated
	s.mu.Unlock()

	s.notify(domain.StateAuthenticated)
	return nil
}

// ClearCredentials removes the identity. Idempotent: clearing an
// already-anonymous session is a no-op that still lands on anonymous.
func (s *SessionManager) ClearCredentials(ctx context.Context) {
	s.mu.Lock()
	if err := s.store.MultiRemove(ctx, domain.SessionKeys()); err != nil {
		s.reportLocked(err, "session.clearCredentials")
	}
	s.creds = nil
	s.state = domain.StateAnonymous
	s.mu.Unlock()

	s.notify(domain.StateAnonymous)
}

// State returns the current session state.
func (s *SessionManager) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Credentials returns a copy of the current record, or nil.
func (s *SessionManager) Credentials() *domain.Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return nil
	}
	c := *s.creds
	return &c
}

// AccessToken returns the current access token, or "".
func (s *SessionManager) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return ""
	}
	return s.creds.AccessToken
}

// ValidateToken classifies a token against the backend by fetching the
// owner profile with it. Never raises; network and decode failures
// classify as ValidationError, a backend rejection as InvalidToken.
func (s *SessionManager) ValidateToken(ctx context.Context, token string) domain.TokenValidation {
	if token == "" {
		return domain.TokenValidation{Code: domain.ValidationNoToken}
	}

	s.mu.Lock()
	api := s.api
	userID := ""
	if s.creds != nil {
		userID = s.creds.User.ID
	}
	s.mu.Unlock()

	if api == nil {
		// No backend attached; nothing is known about the token.
		return domain.TokenValidation{Code: domain.ValidationError}
	}

	user, err := api.OwnerDetails(ctx, token, userID)
	if err != nil {
		if isAuthRejection(err) {
			return domain.TokenValidation{Code: domain.ValidationInvalidToken}
		}
		return domain.TokenValidation{Code: domain.ValidationError}
	}
	return domain.TokenValidation{IsValid: true, User: user}
}

// RefreshToken exchanges a refresh token for a new pair. The backend
// has no rotation endpoint yet, so this echoes the input token back as
// the new access token. Callers must not assume real rotation occurs.
func (s *SessionManager) RefreshToken(_ context.Context, refreshToken string) domain.TokenRefresh {
	if refreshToken == "" {
		return domain.TokenRefresh{Code: domain.RefreshNoToken}
	}
	return domain.TokenRefresh{
		Success: true,
		Tokens: &domain.TokenPair{
			AccessToken:  refreshToken,
			RefreshToken: refreshToken,
		},
	}
}

// Logout removes the core session keys, plus cache and preference keys
// when clearAllData is true, and resets the in-memory state. Storage
// failures are reported in the result, not raised.
func (s *SessionManager) Logout(ctx context.Context, _ string, clearAllData bool) domain.LogoutResult {
	keys := domain.SessionKeys()
	if clearAllData {
		keys = append(keys, domain.CacheKeys()...)
	}

	s.mu.Lock()
	err := s.store.MultiRemove(ctx, keys)
	if err != nil {
		s.reportLocked(err, "session.logout")
	}
	s.creds = nil
	s.state = domain.StateAnonymous
	s.mu.Unlock()

	s.notify(domain.StateAnonymous)

	if err != nil {
		return domain.LogoutResult{Err: err.Error()}
	}
	return domain.LogoutResult{Success: true}
}

// OnChange registers a state-change callback. Callbacks run after the
// transition, outside the session mutex, in registration order.
func (s *SessionManager) OnChange(fn func(domain.SessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// readStored loads and decodes the persisted record.
func (s *SessionManager) readStored(ctx context.Context) (*domain.Credentials, error) {
	raw, found, err := s.store.Get(ctx, domain.KeyOwnerCredentials)
	if err != nil {
		return nil, fmt.Errorf("reading credential record: %w", err)
	}
	if !found {
		return nil, domain.ErrNoCredentials
	}
	return domain.DecodeCredentials(raw)
}

// persist writes the composite record plus the legacy mirror keys.
// Caller must hold the mutex.
func (s *SessionManager) persist(ctx context.Context, creds domain.Credentials) error {
	raw, err := domain.EncodeCredentials(creds)
	if err != nil {
		return fmt.Errorf("encoding credential record: %w", err)
	}
	pairs := map[string]string{
		domain.KeyOwnerCredentials: raw,
		domain.KeySessionToken:     creds.AccessToken,
	}
	if creds.RefreshToken != "" {
		pairs[domain.KeyRefreshToken] = creds.RefreshToken
	}
	if err := s.store.MultiSet(ctx, pairs); err != nil {
		return fmt.Errorf("persisting credential record: %w", err)
	}
	return nil
}

// transition updates state and credentials together and notifies.
func (s *SessionManager) transition(creds *domain.Credentials, state domain.SessionState) {
	s.mu.Lock()
	s.creds = creds
	s.state = state
	s.mu.Unlock()
	s.notify(state)
}

// notify invokes registered callbacks outside the mutex.
func (s *SessionManager) notify(state domain.SessionState) {
	s.mu.Lock()
	callbacks := make([]func(domain.SessionState), len(s.onChange))
	copy(callbacks, s.onChange)
	s.mu.Unlock()
	for _, fn := range callbacks {
		fn(state)
	}
}

// report records a swallowed failure.
func (s *SessionManager) report(err error, context string, userID ...string) {
	if s.errlog != nil {
		s.errlog.LogError(err, context, userID...)
	}
}

// reportLocked is report for call sites already holding the mutex; the
// error log has its own lock, so no copy is needed, but the name keeps
// the call sites honest.
func (s *SessionManager) reportLocked(err error, context string, userID ...string) {
	if s.errlog != nil {
		s.errlog.LogError(err, context, userID...)
	}
}

// isAuthRejection reports whether an API error means the backend
// actively rejected the token, as opposed to the call failing.
func isAuthRejection(err error) bool {
	type statuser interface{ StatusCode() int }
	var st statuser
	if errors.As(err, &st) {
		code := st.StatusCode()
		return code == 401 || code == 403
	}
	return false
}
