package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
)

// CreateTicket opens a maintenance ticket.
func (c *Client) CreateTicket(ctx context.Context, ticket domain.Ticket) (*domain.Ticket, error) {
	var created domain.Ticket
	if err := c.do(ctx, http.MethodPost, "/tickets", ticket, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListTickets returns all tickets visible to the caller.
func (c *Client) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	if err := c.do(ctx, http.MethodGet, "/tickets", nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// UpdateTicket applies a partial update to a ticket.
func (c *Client) UpdateTicket(ctx context.Context, ticketID string, update domain.TicketUpdate) (*domain.Ticket, error) {
	var updated domain.Ticket
	path := "/tickets/" + url.PathEscape(ticketID)
	if err := c.do(ctx, http.MethodPatch, path, update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
