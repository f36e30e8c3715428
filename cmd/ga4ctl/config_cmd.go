package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml"
	"github.com/urfave/cli/v2"

	"github.com/analyticsops/ga4ctl/internal/config"
)

// loadConfig builds the process configuration: defaults, then optional
// config file, then environment.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(), nil
}

func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: runConfigShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate credentials and property configuration",
				Action: runConfigValidate,
			},
		},
	}
}

func runConfigShow(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	content, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Print(string(content))
	return nil
}

func runConfigValidate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		color.Red("Configuration invalid:")
		fmt.Printf("  - %s\n", err)
		return err
	}

	if err := cfg.CheckCredentials(); err != nil {
		return err
	}
	color.Green("Credentials file found: %s", cfg.CredentialsPath)

	if cfg.PropertyID == "" {
		color.Yellow("No default property id; every query will need --property-id")
	} else {
		color.Green("Default property: %s", cfg.PropertyID)
	}
	return nil
}
