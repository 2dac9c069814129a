package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driven"
)

// Ensure Client implements the session's API slice.
var _ driven.AuthAPI = (*Client)(nil)

// authResponse is the backend's answer to login and signup. The user
// object is open-shaped; unknown keys are preserved in Extra.
type authResponse struct {
	User         json.RawMessage `json:"user"`
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
}

// Login exchanges email and password for credentials.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp, withoutAuth()); err != nil {
		return nil, err
	}
	return credentialsFromAuth(resp)
}

// Signup registers a new owner account and returns credentials.
func (c *Client) Signup(ctx context.Context, user domain.User, password string) (*domain.Credentials, error) {
	body := map[string]string{
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
		"password":  password,
	}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &resp, withoutAuth()); err != nil {
		return nil, err
	}
	return credentialsFromAuth(resp)
}

// OwnerDetails fetches the profile for the given user with an explicit
// token. Used by the session manager to validate a stored token.
func (c *Client) OwnerDetails(ctx context.Context, token, userID string) (*domain.User, error) {
	var user domain.User
	path := "/users/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &user, withBearer(token)); err != nil {
		return nil, err
	}
	return &user, nil
}

// credentialsFromAuth merges the auth response into a credential
// record: required fields into the typed struct, everything else the
// backend sent into the open extension map.
func credentialsFromAuth(resp authResponse) (*domain.Credentials, error) {
	creds := domain.Credentials{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}

	if len(resp.User) > 0 {
		if err := json.Unmarshal(resp.User, &creds.User); err != nil {
			return nil, fmt.Errorf("decoding user profile: %w", err)
		}
		var all map[string]any
		if err := json.Unmarshal(resp.User, &all); err == nil {
			for _, known := range []string{"id", "firstName", "lastName", "email", "propertyId"} {
				delete(all, known)
			}
			if len(all) > 0 {
				creds.Extra = all
			}
		}
	}

	if !creds.Valid() {
		return nil, domain.ErrCorruptCredentials
	}
	return &creds, nil
}
