package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	toon "github.com/toon-format/toon-go"

	"github.com/analyticsops/ga4ctl/internal/report"
	"github.com/analyticsops/ga4ctl/internal/service/query"
)

// Common input structures for tools

// RangeInput is the base input for date-ranged report tools.
type RangeInput struct {
	Days       int    `json:"days,omitempty" jsonschema:"Lookback period in calendar days ending today. Default 30."`
	PropertyID string `json:"property_id,omitempty" jsonschema:"GA4 property id. Defaults to the configured property."`
}

// LimitedRangeInput adds a row limit for breakdown reports.
type LimitedRangeInput struct {
	RangeInput
	Limit int64 `json:"limit,omitempty" jsonschema:"Maximum rows to return. Default 20."`
}

// PropertiesInput has no parameters; the listing is account-wide.
type PropertiesInput struct{}

// RealtimeInput covers the realtime report, which has no date range.
type RealtimeInput struct {
	Limit      int64  `json:"limit,omitempty" jsonschema:"Maximum rows to return. Default 10."`
	PropertyID string `json:"property_id,omitempty" jsonschema:"GA4 property id. Defaults to the configured property."`
}

// CustomInput covers free-form metric/dimension queries.
type CustomInput struct {
	Metrics    string `json:"metrics" jsonschema:"Comma-separated GA4 metric names, e.g. sessions,totalUsers. Required."`
	Dimensions string `json:"dimensions,omitempty" jsonschema:"Comma-separated GA4 dimension names, e.g. city,country."`
	Days       int    `json:"days,omitempty" jsonschema:"Lookback period in calendar days ending today. Default 30."`
	Limit      int64  `json:"limit,omitempty" jsonschema:"Maximum rows to return. Default 10."`
	PropertyID string `json:"property_id,omitempty" jsonschema:"GA4 property id. Defaults to the configured property."`
}

// TableResult is the structured shape every tool returns: uniform rows
// of named fields, not preformatted text.
type TableResult struct {
	Columns  []string         `json:"columns" toon:"columns"`
	Rows     []map[string]any `json:"rows" toon:"rows"`
	RowCount int64            `json:"row_count,omitempty" toon:"row_count,omitempty"`
}

// Helper functions

func toolResult(t *report.Table) (*mcp.CallToolResult, any, error) {
	result := TableResult{
		Columns:  t.Columns,
		Rows:     t.Records(),
		RowCount: t.RowCount,
	}
	if result.Rows == nil {
		result.Rows = []map[string]any{}
	}

	text, err := toon.Marshal(result, toon.WithIndent(2))
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(text)},
		},
	}, result, nil
}

func toolError(err error) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + err.Error()},
		},
		IsError: true,
	}, nil, nil
}

func (s *Server) run(ctx context.Context, opts query.Options) (*mcp.CallToolResult, any, error) {
	table, err := s.svc.Run(ctx, opts)
	if err != nil {
		return toolError(err)
	}
	return toolResult(table)
}

// Tool handlers

func (s *Server) handleProperties(ctx context.Context, req *mcp.CallToolRequest, input PropertiesInput) (*mcp.CallToolResult, any, error) {
	return s.run(ctx, query.Options{Report: string(report.KindProperties)})
}

func (s *Server) handleOverview(ctx context.Context, req *mcp.CallToolRequest, input RangeInput) (*mcp.CallToolResult, any, error) {
	return s.run(ctx, query.Options{
		Report:     string(report.KindOverview),
		PropertyID: input.PropertyID,
		Days:       input.Days,
	})
}

func (s *Server) handlePages(ctx context.Context, req *mcp.CallToolRequest, input LimitedRangeInput) (*mcp.CallToolResult, any, error) {
	return s.run(ctx, query.Options{
		Report:     string(report.KindPages),
		PropertyID: input.PropertyID,
		Days:       input.Days,
		Limit:      defaultLimit(input.Limit, 20),
	})
}

func (s *Server) handleSources(ctx context.Context, req *mcp.CallToolRequest, input LimitedRangeInput) (*mcp.CallToolResult, any, error) {
	return s.run(ctx, query.Options{
		Report:     string(report.KindSources),
		PropertyID: input.PropertyID,
		Days:       input.Days,
		Limit:      defaultLimit(input.Limit, 20),
	})
}

func (s *Server) handleCountries(ctx context.Context, req *mcp.CallToolRequest, input LimitedRangeInput) (*mcp.CallToolResult, any, error) {
	return s.run(ctx, query.Options{
		Report:     string(report.KindCountries),
		PropertyID: input.PropertyID,
		Days:       input.Days,
		Limit:      defaultLimit(input.Limit, 20),
	})
}

func (s *Server) handleDevices(ctx context.Context, req *mcp.CallToolRequest, input RangeInput) (*mcp.CallToolResult, any, error) {
	return s.run(ctx, query.Options{
		Report:     string(report.KindDevices),
		PropertyID: input.PropertyID,
		Days:       input.Days,
	})
}

func (s *Server) handleDaily(ctx context.Context, req *mcp.CallToolRequest, input RangeInput) (*mcp.CallToolResult, any, error) {
	return s.run(ctx, query.Options{
		Report:     string(report.KindDaily),
		PropertyID: input.PropertyID,
		Days:       input.Days,
	})
}

func (s *Server) handleRealtime(ctx context.Context, req *mcp.CallToolRequest, input RealtimeInput) (*mcp.CallToolResult, any, error) {
	return s.run(ctx, query.Options{
		Report:     string(report.KindRealtime),
		PropertyID: input.PropertyID,
		Limit:      input.Limit,
	})
}

func (s *Server) handleCustom(ctx context.Context, req *mcp.CallToolRequest, input CustomInput) (*mcp.CallToolResult, any, error) {
	return s.run(ctx, query.Options{
		Report:     string(report.KindCustom),
		PropertyID: input.PropertyID,
		Days:       input.Days,
		Limit:      input.Limit,
		Metrics:    input.Metrics,
		Dimensions: input.Dimensions,
	})
}

func defaultLimit(limit, fallback int64) int64 {
	if limit > 0 {
		return limit
	}
	return fallback
}
