package cli_test

import (
	"os"
	"testing"

	"retheme/cli"
)

func TestParseFlagsWithoutArgument(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"retheme"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg, err := cli.ParseFlags()
	if err == nil {
		t.Fatal("expected an error when no filepath is given, got nil")
	}
	if cfg != nil {
		t.Errorf("expected nil config on usage error, got %+v", cfg)
	}
}
