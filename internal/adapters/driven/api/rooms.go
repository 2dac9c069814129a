package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
)

func roomsPath(propertyID string) string {
	return "/properties/" + url.PathEscape(propertyID) + "/rooms"
}

// ListRooms returns the rooms of a property.
func (c *Client) ListRooms(ctx context.Context, propertyID string) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := c.do(ctx, http.MethodGet, roomsPath(propertyID), nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoom adds a room to a property.
func (c *Client) CreateRoom(ctx context.Context, propertyID string, room domain.Room) (*domain.Room, error) {
	var created domain.Room
	if err := c.do(ctx, http.MethodPost, roomsPath(propertyID), room, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRoom replaces a room record.
func (c *Client) UpdateRoom(ctx context.Context, propertyID, roomID string, room domain.Room) (*domain.Room, error) {
	var updated domain.Room
	path := roomsPath(propertyID) + "/" + url.PathEscape(roomID)
	if err := c.do(ctx, http.MethodPut, path, room, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRoom removes a room.
func (c *Client) DeleteRoom(ctx context.Context, propertyID, roomID string) error {
	path := roomsPath(propertyID) + "/" + url.PathEscape(roomID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
