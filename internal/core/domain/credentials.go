package domain

import "encoding/json"

// User is the profile portion of the authenticated identity.
type User struct {
	// ID is the backend user identifier.
	ID string `json:"id"`
	// FirstName is the user's given name.
	FirstName string `json:"firstName,omitempty"`
	// LastName is the user's family name.
	LastName string `json:"lastName,omitempty"`
	// Email is the login email address.
	Email string `json:"email,omitempty"`
	// PropertyID is the property this owner account manages.
	PropertyID string `json:"propertyId,omitempty"`
}

// Credentials is the locally persisted authenticated-identity record:
// the bearer tokens plus the owner profile returned by login or signup.
//
// Credentials is either entirely absent (signed out) or present with a
// non-empty access token and user ID. Partial or corrupt records are
// treated as absent. The record is never mutated in place; it is
// replaced wholesale on every identity change.
type Credentials struct {
	// AccessToken is the bearer token attached to API calls.
	AccessToken string `json:"accessToken"`
	// RefreshToken is used to obtain new access tokens, when issued.
	RefreshToken string `json:"refreshToken,omitempty"`

	// User holds the required profile fields.
	User User `json:"user"`

	// Extra carries any additional profile attributes the backend merged
	// into the login response. The shape is open; unknown keys are kept
	// verbatim so a newer backend does not lose data through an older
	// client.
	Extra map[string]any `json:"extra,omitempty"`
}

// Valid reports whether the record satisfies the presence invariant:
// a non-empty access token and a user identifier.
func (c *Credentials) Valid() bool {
	return c != nil && c.AccessToken != "" && c.User.ID != ""
}

// HasRefreshToken reports whether a refresh token was issued.
func (c *Credentials) HasRefreshToken() bool {
	return c != nil && c.RefreshToken != ""
}

// EncodeCredentials serialises a credential record for persistence.
func EncodeCredentials(c Credentials) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeCredentials parses a persisted credential record. A record that
// does not decode, or decodes but violates the presence invariant,
// yields ErrCorruptCredentials so the caller can treat it as absent.
func DecodeCredentials(raw string) (*Credentials, error) {
	if raw == "" {
		return nil, ErrNoCredentials
	}
	var c Credentials
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, ErrCorruptCredentials
	}
	if !c.Valid() {
		return nil, ErrCorruptCredentials
	}
	return &c, nil
}
