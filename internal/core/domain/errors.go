package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Session errors.

	// ErrNoCredentials indicates no credential record is available.
	ErrNoCredentials = errors.New("no credentials")

	// ErrCorruptCredentials indicates the persisted credential record could
	// not be decoded. Callers treat this the same as an absent record.
	ErrCorruptCredentials = errors.New("corrupt credential record")

	// Document upload errors. The two phases of an upload fail
	// independently; callers must be able to tell them apart.

	// ErrDocumentCreate indicates the document metadata record could not
	// be created (phase one of an upload).
	ErrDocumentCreate = errors.New("document metadata creation failed")

	// ErrUploadFailed indicates the raw file transfer to the pre-signed
	// URL failed (phase two of an upload). The metadata record may exist
	// as an orphan when compensation also failed.
	ErrUploadFailed = errors.New("document upload failed")
)
