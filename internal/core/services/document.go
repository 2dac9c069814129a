package services

import (
	"context"
	"fmt"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driven"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driving"
)

// Ensure DocumentUploader implements the interface.
var _ driving.DocumentService = (*DocumentUploader)(nil)

// DocumentUploader runs the two-phase document upload as an explicit
// saga. Phase one creates the metadata record, phase two transfers the
// bytes to the pre-signed URL. The phases are not atomic: phase one can
// succeed while phase two fails, so a confirmed transfer failure
// triggers the compensating metadata delete. When compensation itself
// fails, the orphaned record is reported to the error log and the
// caller still sees the upload failure.
type DocumentUploader struct {
	api    driven.DocumentAPI
	errlog driving.ErrorReporter
}

// NewDocumentUploader creates an uploader over the given API slice.
func NewDocumentUploader(api driven.DocumentAPI, errlog driving.ErrorReporter) *DocumentUploader {
	return &DocumentUploader{api: api, errlog: errlog}
}

// Upload creates the metadata record and transfers the file bytes.
// The returned handle identifies the created record even on a phase-two
// failure, so callers can retry the transfer or surface the orphan.
func (u *DocumentUploader) Upload(
	ctx context.Context,
	propertyID string,
	meta domain.DocumentMeta,
	content []byte,
) (*domain.DocumentHandle, error) {
	handle, err := u.api.CreateDocument(ctx, propertyID, meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentCreate, err)
	}

	if err := u.api.UploadFile(ctx, handle.UploadURL, content, meta.ContentType); err != nil {
		u.compensate(ctx, propertyID, handle.DocumentID)
		return handle, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	return handle, nil
}

// compensate deletes the metadata record left behind by a failed
// transfer. A failed compensation leaves an orphan; that is recorded
// but does not change the outcome the caller sees.
func (u *DocumentUploader) compensate(ctx context.Context, propertyID, documentID string) {
	if err := u.api.DeleteDocument(ctx, propertyID, documentID); err != nil && u.errlog != nil {
		u.errlog.LogError(
			fmt.Errorf("orphaned document %s: compensation failed: %w", documentID, err),
			"document.upload.compensate",
		)
	}
}
