package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/analyticsops/ga4ctl/internal/output"
	"github.com/analyticsops/ga4ctl/internal/progress"
	"github.com/analyticsops/ga4ctl/internal/service/query"
)

// runQuery is the root action: resolve inputs, run exactly one report,
// render it, exit.
func runQuery(c *cli.Context) error {
	reportName := c.String("report")
	if reportName == "" {
		_ = cli.ShowAppHelp(c)
		return fmt.Errorf("--report is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	opts := query.Options{
		Report:     reportName,
		PropertyID: c.String("property-id"),
		Start:      c.String("start"),
		End:        c.String("end"),
		Metrics:    c.String("metrics"),
		Dimensions: c.String("dimensions"),
	}
	// Only explicit flags override the configured/catalog defaults.
	if c.IsSet("days") {
		opts.Days = c.Int("days")
	}
	if c.IsSet("limit") {
		opts.Limit = c.Int64("limit")
	}

	format := c.String("output")
	if !c.IsSet("output") && cfg.Defaults.Output != "" {
		format = cfg.Defaults.Output
	}

	spinner := progress.NewSpinner("Querying GA4...")
	table, err := query.New(cfg).Run(c.Context, opts)
	spinner.FinishSuccess()
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.ParseFormat(format), c.String("out"), true)
	if err != nil {
		return err
	}
	defer formatter.Close()

	return formatter.Output(table)
}
