package driving

import (
	"context"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
)

// DocumentService runs the two-phase document upload saga.
type DocumentService interface {
	// Upload creates the metadata record, transfers the bytes to the
	// returned pre-signed URL, and compensates by deleting the record
	// when the transfer fails. Phase-one failures wrap
	// domain.ErrDocumentCreate; phase-two failures wrap
	// domain.ErrUploadFailed.
	Upload(ctx context.Context, propertyID string, meta domain.DocumentMeta, content []byte) (*domain.DocumentHandle, error)
}
