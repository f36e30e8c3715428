package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

func main() {
	app := &cli.App{
		Name:    "ga4ctl",
		Usage:   "Query Google Analytics 4 data",
		Version: version,
		Description: `ga4ctl runs predefined and custom reports against the GA4 Data API
using a service account, and renders results as a table, JSON, or CSV.

Environment:
  GA4_CREDENTIALS_PATH  path to the service account JSON key (required)
  GA4_PROPERTY_ID       default property id (optional)`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "report",
				Aliases: []string{"r"},
				Usage:   "Report type: properties, overview, pages, sources, countries, devices, daily, realtime, custom",
			},
			&cli.StringFlag{
				Name:  "property-id",
				Usage: "GA4 property id (overrides GA4_PROPERTY_ID)",
			},
			&cli.IntFlag{
				Name:  "days",
				Value: 30,
				Usage: "Lookback period in days",
			},
			&cli.StringFlag{
				Name:  "start",
				Usage: "Start date (YYYY-MM-DD), overrides --days",
			},
			&cli.StringFlag{
				Name:  "end",
				Usage: "End date (YYYY-MM-DD), defaults to today",
			},
			&cli.Int64Flag{
				Name:  "limit",
				Value: 10,
				Usage: "Max rows to return",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format: table, json, csv",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write output to file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "metrics",
				Usage: "Comma-separated metrics (custom report)",
			},
			&cli.StringFlag{
				Name:  "dimensions",
				Usage: "Comma-separated dimensions (custom report)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"GA4CTL_CONFIG"},
			},
		},
		Action: runQuery,
		Commands: []*cli.Command{
			mcpCmd(),
			configCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
