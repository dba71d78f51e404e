package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "aeviactl",
		Usage:   "operator tool for the Aevia legacy service",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "base URL of the legacy service",
				Value:   "http://localhost:8080",
				EnvVars: []string{"AEVIA_API_URL"},
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "service token for operator routes",
				EnvVars: []string{"AEVIA_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "config file used by `token issue`",
				EnvVars: []string{"AEVIA_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			tokenCmd,
			legacyCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
