package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homebase-labs/homebase-core/internal/adapters/driven/storage/memory"
	"github.com/homebase-labs/homebase-core/internal/core/domain"
)

// fakeAuthAPI implements driven.AuthAPI with swappable behavior.
type fakeAuthAPI struct {
	loginFn        func(ctx context.Context, email, password string) (*domain.Credentials, error)
	ownerDetailsFn func(ctx context.Context, token, userID string) (*domain.User, error)
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	if f.loginFn == nil {
		return nil, errors.New("not implemented")
	}
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthAPI) Signup(_ context.Context, _ domain.User, _ string) (*domain.Credentials, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAuthAPI) OwnerDetails(ctx context.Context, token, userID string) (*domain.User, error) {
	if f.ownerDetailsFn == nil {
		return nil, errors.New("not implemented")
	}
	return f.ownerDetailsFn(ctx, token, userID)
}

// statusError mimics a backend rejection carrying an HTTP status.
type statusError struct{ status int }

func (e *statusError) Error() string   { return fmt.Sprintf("status %d", e.status) }
func (e *statusError) StatusCode() int { return e.status }

func testCredentials() domain.Credentials {
	return domain.Credentials{
		AccessToken:  "token-abc",
		RefreshToken: "refresh-xyz",
		User: domain.User{
			ID:         "owner-1",
			FirstName:  "Dana",
			LastName:   "Okafor",
			Email:      "dana@example.com",
			PropertyID: "prop-1",
		},
	}
}

func acceptingAPI() *fakeAuthAPI {
	return &fakeAuthAPI{
		ownerDetailsFn: func(_ context.Context, _, _ string) (*domain.User, error) {
			user := testCredentials().User
			return &user, nil
		},
	}
}

func TestSetCredentialsPersistsAndSurvivesReload(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()

	first := NewSessionManager(store, acceptingAPI())
	require.NoError(t, first.SetCredentials(ctx, testCredentials()))
	assert.Equal(t, domain.StateAuthenticated, first.State())

	// A fresh manager over the same store models a process restart.
	second := NewSessionManager(store, acceptingAPI())
	second.LoadSession(ctx)

	assert.Equal(t, domain.StateAuthenticated, second.State())
	creds := second.Credentials()
	require.NotNil(t, creds)
	assert.Equal(t, "token-abc", creds.AccessToken)
	assert.Equal(t, "owner-1", creds.User.ID)
}

func TestSetCredentialsRejectsPartialRecord(t *testing.T) {
	store := memory.NewKVStore()
	session := NewSessionManager(store, acceptingAPI())

	err := session.SetCredentials(context.Background(), domain.Credentials{
		AccessToken: "token-without-user",
	})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.StateUninitialized, session.State())
	assert.Equal(t, 0, store.Len())
}

func TestSetCredentialsSwallowsPersistenceFailure(t *testing.T) {
	store := memory.NewKVStore()
	store.FailWrites = errors.New("disk full")
	errlog := NewErrorLog()
	session := NewSessionManager(store, acceptingAPI(), WithSessionErrorLog(errlog))

	err := session.SetCredentials(context.Background(), testCredentials())

	// The call succeeds and the in-memory identity changes anyway.
	require.NoError(t, err)
	assert.Equal(t, domain.StateAuthenticated, session.State())
	assert.Equal(t, "token-abc", session.AccessToken())

	entries := errlog.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "session.setCredentials", entries[0].Context)
	assert.Contains(t, entries[0].Message, "disk full")
}

func TestClearCredentialsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()
	session := NewSessionManager(store, acceptingAPI())
	require.NoError(t, session.SetCredentials(ctx, testCredentials()))

	session.ClearCredentials(ctx)
	session.ClearCredentials(ctx)

	assert.Equal(t, domain.StateAnonymous, session.State())
	assert.Nil(t, session.Credentials())
	assert.Equal(t, 0, store.Len())
}

func TestLoadSessionWithEmptyStoreIsAnonymous(t *testing.T) {
	session := NewSessionManager(memory.NewKVStore(), acceptingAPI())

	session.LoadSession(context.Background())

	assert.Equal(t, domain.StateAnonymous, session.State())
	assert.Nil(t, session.Credentials())
}

func TestLoadSessionTreatsCorruptRecordAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()
	require.NoError(t, store.Set(ctx, domain.KeyOwnerCredentials, "{not json"))
	errlog := NewErrorLog()
	session := NewSessionManager(store, acceptingAPI(), WithSessionErrorLog(errlog))

	session.LoadSession(ctx)

	assert.Equal(t, domain.StateAnonymous, session.State())
	// Corrupt records resolve silently; they are expected, not errors.
	assert.Empty(t, errlog.Entries())
}

func TestLoadSessionRefreshesProfileOnValidToken(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()
	seed := NewSessionManager(store, acceptingAPI())
	require.NoError(t, seed.SetCredentials(ctx, testCredentials()))

	api := &fakeAuthAPI{
		ownerDetailsFn: func(_ context.Context, token, userID string) (*domain.User, error) {
			assert.Equal(t, "token-abc", token)
			assert.Equal(t, "owner-1", userID)
			return &domain.User{ID: "owner-1", FirstName: "Renamed", PropertyID: "prop-1"}, nil
		},
	}
	session := NewSessionManager(store, api)
	session.LoadSession(ctx)

	creds := session.Credentials()
	require.NotNil(t, creds)
	assert.Equal(t, "Renamed", creds.User.FirstName)
}

func TestLoadSessionPolicyOnRejectedToken(t *testing.T) {
	rejecting := func() *fakeAuthAPI {
		return &fakeAuthAPI{
			ownerDetailsFn: func(_ context.Context, _, _ string) (*domain.User, error) {
				return nil, &statusError{status: 401}
			},
		}
	}

	t.Run("optimistic keeps stale credentials", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewKVStore()
		seed := NewSessionManager(store, acceptingAPI())
		require.NoError(t, seed.SetCredentials(ctx, testCredentials()))

		session := NewSessionManager(store, rejecting(),
			WithValidationPolicy(domain.PolicyOptimistic))
		session.LoadSession(ctx)

		assert.Equal(t, domain.StateAuthenticated, session.State())
		assert.Equal(t, "token-abc", session.AccessToken())
	})

	t.Run("strict drops to anonymous", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewKVStore()
		seed := NewSessionManager(store, acceptingAPI())
		require.NoError(t, seed.SetCredentials(ctx, testCredentials()))

		session := NewSessionManager(store, rejecting(),
			WithValidationPolicy(domain.PolicyStrict))
		session.LoadSession(ctx)

		assert.Equal(t, domain.StateAnonymous, session.State())
		assert.Nil(t, session.Credentials())
	})
}

func TestValidateTokenClassification(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		apiErr  error
		isValid bool
		code    domain.ValidationCode
	}{
		{name: "empty token", token: "", code: domain.ValidationNoToken},
		{name: "accepted", token: "token-abc", isValid: true},
		{name: "rejected 401", token: "token-abc", apiErr: &statusError{status: 401}, code: domain.ValidationInvalidToken},
		{name: "rejected 403", token: "token-abc", apiErr: &statusError{status: 403}, code: domain.ValidationInvalidToken},
		{name: "server error", token: "token-abc", apiErr: &statusError{status: 500}, code: domain.ValidationError},
		{name: "network failure", token: "token-abc", apiErr: errors.New("connection refused"), code: domain.ValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAuthAPI{
				ownerDetailsFn: func(_ context.Context, _, _ string) (*domain.User, error) {
					if tt.apiErr != nil {
						return nil, tt.apiErr
					}
					return &domain.User{ID: "owner-1"}, nil
				},
			}
			session := NewSessionManager(memory.NewKVStore(), api)

			result := session.ValidateToken(context.Background(), tt.token)

			assert.Equal(t, tt.isValid, result.IsValid)
			assert.Equal(t, tt.code, result.Code)
		})
	}
}

func TestRefreshTokenEchoesUntilRotationExists(t *testing.T) {
	session := NewSessionManager(memory.NewKVStore(), acceptingAPI())

	result := session.RefreshToken(context.Background(), "refresh-xyz")

	require.True(t, result.Success)
	require.NotNil(t, result.Tokens)
	assert.Equal(t, "refresh-xyz", result.Tokens.AccessToken)

	empty := session.RefreshToken(context.Background(), "")
	assert.False(t, empty.Success)
	assert.Equal(t, domain.RefreshNoToken, empty.Code)
}

func TestLogoutRemovesSessionAndOptionallyCacheKeys(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()
	require.NoError(t, store.Set(ctx, domain.KeyThemePreference, "dark"))
	require.NoError(t, store.Set(ctx, domain.KeyRoomsCache, "[]"))

	session := NewSessionManager(store, acceptingAPI())
	require.NoError(t, session.SetCredentials(ctx, testCredentials()))

	t.Run("session keys only", func(t *testing.T) {
		result := session.Logout(ctx, session.AccessToken(), false)

		assert.True(t, result.Success)
		assert.Equal(t, domain.StateAnonymous, session.State())
		_, found, err := store.Get(ctx, domain.KeyOwnerCredentials)
		require.NoError(t, err)
		assert.False(t, found)
		_, found, err = store.Get(ctx, domain.KeyThemePreference)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("clear all data", func(t *testing.T) {
		result := session.Logout(ctx, "", true)

		assert.True(t, result.Success)
		assert.Equal(t, 0, store.Len())
	})
}

func TestLogoutReportsStorageFailureWithoutRaising(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()
	session := NewSessionManager(store, acceptingAPI())
	require.NoError(t, session.SetCredentials(ctx, testCredentials()))

	store.FailWrites = errors.New("io error")
	result := session.Logout(ctx, session.AccessToken(), false)

	assert.False(t, result.Success)
	assert.Contains(t, result.Err, "io error")
	// The in-memory session still lands on anonymous.
	assert.Equal(t, domain.StateAnonymous, session.State())
}

func TestOnChangeFiresAfterEveryTransition(t *testing.T) {
	ctx := context.Background()
	session := NewSessionManager(memory.NewKVStore(), acceptingAPI())

	var mu sync.Mutex
	var seen []domain.SessionState
	session.OnChange(func(state domain.SessionState) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, state)
	})

	require.NoError(t, session.SetCredentials(ctx, testCredentials()))
	session.ClearCredentials(ctx)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []domain.SessionState{domain.StateAuthenticated, domain.StateAnonymous}, seen)
}

// A clear issued while a set's storage write is still in flight must
// leave the session anonymous: transitions serialise and the last call
// wins.
func TestRacingSetAndClearSerialise(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()
	session := NewSessionManager(store, acceptingAPI())

	setEntered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	store.OnWrite = func(string) {
		once.Do(func() {
			close(setEntered)
			<-release
		})
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = session.SetCredentials(ctx, testCredentials())
	}()

	<-setEntered
	cleared := make(chan struct{})
	go func() {
		defer close(cleared)
		// Blocks until the in-flight set commits, then clears.
		session.ClearCredentials(ctx)
	}()

	close(release)
	<-done
	<-cleared

	assert.Equal(t, domain.StateAnonymous, session.State())
	assert.Nil(t, session.Credentials())
	assert.Equal(t, 0, store.Len())
}
