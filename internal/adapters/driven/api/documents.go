package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driven"
)

// Ensure Client implements the upload saga's API slice.
var _ driven.DocumentAPI = (*Client)(nil)

// propertyHeader scopes document calls to a property.
const propertyHeader = "x-property-id"

// CreateDocument creates a document metadata record and returns the
// record ID plus a pre-signed upload URL.
func (c *Client) CreateDocument(ctx context.Context, propertyID string, meta domain.DocumentMeta) (*domain.DocumentHandle, error) {
	var handle domain.DocumentHandle
	err := c.do(ctx, http.MethodPost, "/documents", meta, &handle, withHeader(propertyHeader, propertyID))
	if err != nil {
		return nil, err
	}
	return &handle, nil
}

// GetDocument fetches a document metadata record.
func (c *Client) GetDocument(ctx context.Context, propertyID, documentID string) (*domain.Document, error) {
	var doc domain.Document
	path := "/documents/" + url.PathEscape(documentID)
	if err := c.do(ctx, http.MethodGet, path, nil, &doc, withHeader(propertyHeader, propertyID)); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateDocument replaces a document metadata record.
func (c *Client) UpdateDocument(ctx context.Context, propertyID string, doc domain.Document) (*domain.Document, error) {
	var updated domain.Document
	path := "/documents/" + url.PathEscape(doc.ID)
	if err := c.do(ctx, http.MethodPut, path, doc, &updated, withHeader(propertyHeader, propertyID)); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDocument removes a document metadata record.
func (c *Client) DeleteDocument(ctx context.Context, propertyID, documentID string) error {
	path := "/documents/" + url.PathEscape(documentID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, withHeader(propertyHeader, propertyID))
}

// UploadFile PUTs raw bytes to a capability-bearing pre-signed URL.
// The URL itself grants write access; no auth header is attached. The
// request goes straight to the storage host, outside the API base URL.
func (c *Client) UploadFile(ctx context.Context, uploadURL string, content []byte, contentType string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(content))

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("uploading file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &Error{
			Status: resp.StatusCode,
			Method: http.MethodPut,
			Path:   uploadURL,
			Body:   strings.TrimSpace(string(raw)),
		}
	}
	return nil
}
