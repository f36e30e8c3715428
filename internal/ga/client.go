// Package ga adapts the GA4 Data and Admin APIs to the report shapes
// used by the CLI and MCP front ends. Authentication, retries, quota,
// and wire handling belong to the Google client libraries; errors from
// them pass through unchanged.
package ga

import (
	"context"
	"fmt"

	"google.golang.org/api/analyticsadmin/v1beta"
	"google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"

	"github.com/analyticsops/ga4ctl/internal/report"
)

// Client wraps the GA4 Data API (reports) and Admin API (property
// listing) services for one set of service-account credentials.
type Client struct {
	data  *analyticsdata.Service
	admin *analyticsadmin.Service
}

// NewClient builds a client authenticated with the given service
// account key file.
func NewClient(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := analyticsdata.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("creating analytics data client: %w", err)
	}
	admin, err := analyticsadmin.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("creating analytics admin client: %w", err)
	}
	return &Client{data: data, admin: admin}, nil
}

// RunReport executes a standard (date-ranged) report query.
func (c *Client) RunReport(ctx context.Context, q report.Query) (*report.Table, error) {
	req := &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{
			{StartDate: q.DateRange.Start, EndDate: q.DateRange.End},
		},
		Metrics:    metricList(q.Metrics),
		Dimensions: dimensionList(q.Dimensions),
		Limit:      q.Limit,
		OrderBys:   orderBys(q.OrderBy),
	}

	resp, err := c.data.Properties.RunReport(propertyName(q.PropertyID), req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("running report: %w", err)
	}

	table := tableFromHeaders(resp.DimensionHeaders, resp.MetricHeaders)
	for _, row := range resp.Rows {
		table.Rows = append(table.Rows, rowValues(row.DimensionValues, row.MetricValues, resp.MetricHeaders))
	}
	table.RowCount = resp.RowCount
	return table, nil
}

// RunRealtime executes a realtime report. Realtime queries have no date
// range; the provider reports a trailing window of roughly 30 minutes.
func (c *Client) RunRealtime(ctx context.Context, q report.Query) (*report.Table, error) {
	req := &analyticsdata.RunRealtimeReportRequest{
		Metrics:    metricList(q.Metrics),
		Dimensions: dimensionList(q.Dimensions),
		Limit:      q.Limit,
	}

	resp, err := c.data.Properties.RunRealtimeReport(propertyName(q.PropertyID), req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("running realtime report: %w", err)
	}

	table := tableFromHeaders(resp.DimensionHeaders, resp.MetricHeaders)
	for _, row := range resp.Rows {
		table.Rows = append(table.Rows, rowValues(row.DimensionValues, row.MetricValues, resp.MetricHeaders))
	}
	table.RowCount = resp.RowCount
	return table, nil
}

// ListProperties returns every account/property pair the service
// account can access, via the Admin API account summaries listing.
func (c *Client) ListProperties(ctx context.Context) (*report.Table, error) {
	table := &report.Table{
		Columns: []string{"account", "accountId", "property", "propertyId"},
	}

	err := c.admin.AccountSummaries.List().Pages(ctx, func(resp *analyticsadmin.GoogleAnalyticsAdminV1betaListAccountSummariesResponse) error {
		for _, account := range resp.AccountSummaries {
			accountName := account.DisplayName
			if accountName == "" {
				accountName = account.Account
			}
			for _, prop := range account.PropertySummaries {
				propName := prop.DisplayName
				if propName == "" {
					propName = prop.Property
				}
				table.Rows = append(table.Rows, []any{
					accountName,
					resourceID(account.Account),
					propName,
					resourceID(prop.Property),
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}

	table.RowCount = int64(len(table.Rows))
	return table, nil
}

func propertyName(id string) string {
	return "properties/" + id
}
