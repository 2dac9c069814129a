package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
)

// DashboardAnalytics returns the dashboard summary for a date range.
// Dates are backend-format strings (YYYY-MM-DD).
func (c *Client) DashboardAnalytics(ctx context.Context, startDate, endDate string) (domain.AnalyticsReport, error) {
	return c.analytics(ctx, "/analytics/dashboard", startDate, endDate)
}

// PerformanceAnalytics returns the performance report for a date range.
func (c *Client) PerformanceAnalytics(ctx context.Context, startDate, endDate string) (domain.AnalyticsReport, error) {
	return c.analytics(ctx, "/analytics/performance", startDate, endDate)
}

func (c *Client) analytics(ctx context.Context, path, startDate, endDate string) (domain.AnalyticsReport, error) {
	query := url.Values{}
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)

	var report domain.AnalyticsReport
	if err := c.do(ctx, http.MethodGet, path+"?"+query.Encode(), nil, &report); err != nil {
		return nil, err
	}
	return report, nil
}
