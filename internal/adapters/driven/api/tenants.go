package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
)

// AddTenant registers a tenant.
func (c *Client) AddTenant(ctx context.Context, tenant domain.Tenant) (*domain.Tenant, error) {
	var created domain.Tenant
	if err := c.do(ctx, http.MethodPost, "/tenants", tenant, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListTenants returns all tenants visible to the caller.
func (c *Client) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	if err := c.do(ctx, http.MethodGet, "/tenants", nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// SetTenantNotice records a tenant's notice to vacate.
func (c *Client) SetTenantNotice(ctx context.Context, tenantID string, notice domain.TenantNotice) (*domain.Tenant, error) {
	var updated domain.Tenant
	path := "/tenants/" + url.PathEscape(tenantID) + "/notice"
	if err := c.do(ctx, http.MethodPatch, path, notice, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTenant removes a tenant record.
func (c *Client) DeleteTenant(ctx context.Context, tenantID string) error {
	return c.do(ctx, http.MethodDelete, "/tenants/"+url.PathEscape(tenantID), nil, nil)
}

// TenantsByRoom returns the tenants occupying one room.
func (c *Client) TenantsByRoom(ctx context.Context, propertyID, roomID string) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	path := "/tenants/property/" + url.PathEscape(propertyID) + "/room/" + url.PathEscape(roomID)
	if err := c.do(ctx, http.MethodGet, path, nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}
