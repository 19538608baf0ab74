package main

import (
	"os"

	"retheme/cli"
	"retheme/internal/ui"
	"retheme/retheme"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		// cli already printed the usage message.
		os.Exit(1)
	}

	app := retheme.New(cfg)
	if err := app.Run(); err != nil {
		ui.Error("Error: %v", err)
		os.Exit(1)
	}
}
