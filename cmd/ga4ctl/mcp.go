package main

import (
	"github.com/urfave/cli/v2"

	"github.com/analyticsops/ga4ctl/internal/mcpserver"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP (Model Context Protocol) server exposing GA4 reports as tools",
		Description: `Starts an MCP server over stdio transport that exposes every report
as a tool an AI assistant can invoke: ga_properties, ga_overview,
ga_pages, ga_sources, ga_countries, ga_devices, ga_daily, ga_realtime,
and ga_custom for free-form metric/dimension queries.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "ga4": {
        "command": "ga4ctl",
        "args": ["mcp"],
        "env": {
          "GA4_CREDENTIALS_PATH": "/path/to/key.json",
          "GA4_PROPERTY_ID": "123456789"
        }
      }
    }
  }`,
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	server := mcpserver.NewServer(version, cfg)
	return server.Run(c.Context)
}
