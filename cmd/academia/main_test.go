package main

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/urfave/cli/v3"

	"github.com/five82/academia/internal/app"
)

func TestOptionsFromCommand(t *testing.T) {
	var got app.Options
	cmd := newCommand()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		got = optionsFromCommand(c)
		return nil
	}

	args := []string{"academia",
		"--config", "/tmp/academia.toml",
		"--prefs", "/tmp/prefs.toml",
		"--log-file", "/tmp/academia.log",
		"--api-url", "http://localhost:8080",
		"--theme", "Nightfox",
		"--debug",
	}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := app.Options{
		ConfigPath: "/tmp/academia.toml",
		PrefsPath:  "/tmp/prefs.toml",
		LogFile:    "/tmp/academia.log",
		APIURL:     "http://localhost:8080",
		Theme:      "Nightfox",
		Debug:      true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsFromCommand_Defaults(t *testing.T) {
	var got app.Options
	cmd := newCommand()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		got = optionsFromCommand(c)
		return nil
	}
	if err := cmd.Run(context.Background(), []string{"academia"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff(app.Options{}, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}
