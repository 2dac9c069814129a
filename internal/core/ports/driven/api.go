package driven

import (
	"context"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
)

// AuthAPI is the slice of the remote API the session manager needs:
// credential issuance and token validation.
type AuthAPI interface {
	// Login exchanges email and password for credentials.
	Login(ctx context.Context, email, password string) (*domain.Credentials, error)

	// Signup registers a new owner account and returns credentials.
	Signup(ctx context.Context, user domain.User, password string) (*domain.Credentials, error)

	// OwnerDetails fetches the profile for the given user using the
	// supplied access token. Used to validate a stored token.
	OwnerDetails(ctx context.Context, token, userID string) (*domain.User, error)
}

// DocumentAPI is the slice of the remote API the upload saga needs.
// Metadata creation and the raw byte transfer are separate calls that
// fail independently; the saga owns the compensation.
type DocumentAPI interface {
	// CreateDocument creates the metadata record and returns the
	// document ID plus a pre-signed upload URL.
	CreateDocument(ctx context.Context, propertyID string, meta domain.DocumentMeta) (*domain.DocumentHandle, error)

	// UploadFile PUTs raw bytes to a capability-bearing URL with the
	// file's content type. No auth header is attached.
	UploadFile(ctx context.Context, uploadURL string, content []byte, contentType string) error

	// DeleteDocument removes a metadata record. Used as the
	// compensating action when the byte transfer fails.
	DeleteDocument(ctx context.Context, propertyID, documentID string) error
}
