package main

import (
	"os"

	"github.com/arthur-debert/outfit/internal/cli"
	"github.com/arthur-debert/outfit/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Honor --format for the error too, best effort; flag parsing may
		// itself be what failed.
		format := ui.FormatAuto
		if raw, flagErr := rootCmd.PersistentFlags().GetString("format"); flagErr == nil {
			if parsed, parseErr := ui.ParseFormat(raw); parseErr == nil {
				format = parsed
			}
		}

		if renderer, rErr := ui.NewRenderer(format, os.Stderr); rErr == nil {
			_ = renderer.RenderError(err)
		}
		os.Exit(1)
	}
}
