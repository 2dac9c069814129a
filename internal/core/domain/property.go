package domain

import "time"

// Room is a rentable unit within a property.
type Room struct {
	ID         string  `json:"id,omitempty"`
	PropertyID string  `json:"propertyId,omitempty"`
	Number     string  `json:"number"`
	Type       string  `json:"type,omitempty"`
	Rent       float64 `json:"rent"`
	Capacity   int     `json:"capacity,omitempty"`
	Occupied   bool    `json:"occupied"`
}

// Tenant is an occupant record.
type Tenant struct {
	ID         string     `json:"id,omitempty"`
	PropertyID string     `json:"propertyId,omitempty"`
	RoomID     string     `json:"roomId,omitempty"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	MoveInDate *time.Time `json:"moveInDate,omitempty"`
	// NoticeGiven is set once the tenant has given notice to vacate.
	NoticeGiven bool       `json:"noticeGiven"`
	NoticeDate  *time.Time `json:"noticeDate,omitempty"`
}

// TenantNotice is the payload for recording a tenant's notice to vacate.
type TenantNotice struct {
	NoticeGiven bool       `json:"noticeGiven"`
	NoticeDate  *time.Time `json:"noticeDate,omitempty"`
	Reason      string     `json:"reason,omitempty"`
}

// TicketStatus is the lifecycle state of a maintenance ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// Ticket is a maintenance or support request.
type Ticket struct {
	ID          string       `json:"id,omitempty"`
	PropertyID  string       `json:"propertyId,omitempty"`
	RoomID      string       `json:"roomId,omitempty"`
	TenantID    string       `json:"tenantId,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TicketStatus `json:"status,omitempty"`
	Priority    string       `json:"priority,omitempty"`
	CreatedAt   *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time   `json:"updatedAt,omitempty"`
}

// TicketUpdate is the partial payload for PATCHing a ticket.
type TicketUpdate struct {
	Status      *TicketStatus `json:"status,omitempty"`
	Priority    *string       `json:"priority,omitempty"`
	Description *string       `json:"description,omitempty"`
}

// DocumentMeta describes a file before upload.
type DocumentMeta struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size,omitempty"`
}

// DocumentHandle is the backend's answer to a metadata creation call:
// the record identifier plus a capability-bearing pre-signed upload URL.
// Possession of the URL alone grants write access; no auth header is
// attached to the upload itself.
type DocumentHandle struct {
	DocumentID string `json:"document_id"`
	UploadURL  string `json:"upload_url"`
}

// Document is a stored file's metadata record.
type Document struct {
	ID          string     `json:"id"`
	PropertyID  string     `json:"propertyId,omitempty"`
	Name        string     `json:"name"`
	ContentType string     `json:"contentType,omitempty"`
	Size        int64      `json:"size,omitempty"`
	URL         string     `json:"url,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// AnalyticsReport is an analytics query result. The shape is defined by
// the backend and varies per query; it is relayed without interpretation.
type AnalyticsReport map[string]any
