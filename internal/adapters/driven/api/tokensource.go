package api

import (
	"errors"

	"golang.org/x/oauth2"
)

// TokenGetter supplies the current access token. The session manager
// implements it; the indirection avoids a construction cycle between
// the client and the session.
type TokenGetter interface {
	AccessToken() string
}

// SessionTokenSource adapts the session to oauth2.TokenSource so the
// client attaches bearer tokens without reaching into session
// internals.
type SessionTokenSource struct {
	session TokenGetter
}

// NewSessionTokenSource creates a token source over the session.
func NewSessionTokenSource(session TokenGetter) *SessionTokenSource {
	return &SessionTokenSource{session: session}
}

// Token implements oauth2.TokenSource. It fails when the session is
// anonymous; authenticated endpoints cannot be called without a token.
func (s *SessionTokenSource) Token() (*oauth2.Token, error) {
	token := s.session.AccessToken()
	if token == "" {
		return nil, errors.New("no authenticated session")
	}
	return &oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}
