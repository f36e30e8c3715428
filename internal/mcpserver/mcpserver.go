// Package mcpserver exposes every GA4 report as an MCP tool so agent
// runtimes can query analytics data directly. One tool per catalog
// entry; all of them reuse the same query pipeline as the CLI.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/analyticsops/ga4ctl/internal/config"
	"github.com/analyticsops/ga4ctl/internal/service/query"
)

// Server wraps the MCP server and registers all GA4 report tools.
type Server struct {
	server *mcp.Server
	svc    *query.Service
}

// NewServer creates an MCP server with all report tools registered.
func NewServer(version string, cfg *config.Config) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "ga4ctl",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server, svc: query.New(cfg)}
	s.registerTools()
	return s
}

// Run starts the MCP server over stdio transport. Calls are processed
// one at a time; there is no shared mutable state beyond the config.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// registerTools adds one tool per report in the catalog.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ga_properties",
		Description: describeProperties(),
	}, s.handleProperties)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ga_overview",
		Description: describeOverview(),
	}, s.handleOverview)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ga_pages",
		Description: describePages(),
	}, s.handlePages)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ga_sources",
		Description: describeSources(),
	}, s.handleSources)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ga_countries",
		Description: describeCountries(),
	}, s.handleCountries)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ga_devices",
		Description: describeDevices(),
	}, s.handleDevices)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ga_daily",
		Description: describeDaily(),
	}, s.handleDaily)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ga_realtime",
		Description: describeRealtime(),
	}, s.handleRealtime)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ga_custom",
		Description: describeCustom(),
	}, s.handleCustom)
}
