package retheme

import (
	"fmt"

	"retheme/cli"
	"retheme/internal/fs"
	"retheme/internal/rewrite"
	"retheme/internal/ui"
)

// App orchestrates a single migration run.
type App struct {
	cfg *cli.Config
}

// New creates a new App instance.
func New(cfg *cli.Config) *App {
	return &App{cfg: cfg}
}

// Run loads the target file, applies the migration, and writes it back in
// place. In dry-run mode the result goes to stdout and the file is untouched.
func (a *App) Run() error {
	content, err := fs.Load(a.cfg.FilePath)
	if err != nil {
		return err
	}

	result := rewrite.Apply(content)

	if a.cfg.DryRun {
		fmt.Print(result)
		ui.Warning("Dry run: %s was not modified.", a.cfg.FilePath)
		return nil
	}

	if err := fs.Save(a.cfg.FilePath, result); err != nil {
		return err
	}

	ui.Done("✅ Refactored: %s", a.cfg.FilePath)
	return nil
}
