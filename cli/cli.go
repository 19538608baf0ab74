package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds the command-line flag and argument values.
type Config struct {
	FilePath string
	DryRun   bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	pflag.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Print the rewritten content to stdout instead of overwriting the file.")

	pflag.Usage = func() {
		fmt.Println("Usage: retheme <filepath>")
		fmt.Println("\nMigrate a screen file from the static Colors import to the useTheme hook.")
		fmt.Println("\nExample: retheme app/screens/HomeScreen.tsx")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if pflag.NArg() < 1 {
		pflag.Usage()
		return nil, fmt.Errorf("error: missing <filepath> argument")
	}

	cfg.FilePath = pflag.Arg(0)
	return cfg, nil
}
