package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/five82/academia/internal/app"
	"github.com/five82/academia/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "academia: %v\n", err)
		return 1
	}
	return 0
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "academia",
		Usage:   "Browse and search the Open Library catalog from the terminal",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default ~/.config/academia/config.toml)",
			},
			&cli.StringFlag{
				Name:  "prefs",
				Usage: "Path to preferences file (default ~/.config/academia/prefs.toml)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write logs to this file instead of the configured one",
			},
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "Open Library base URL",
				Sources: cli.EnvVars("ACADEMIA_API_URL"),
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: fmt.Sprintf("Starting theme (%v)", ui.ThemeNames()),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("ACADEMIA_DEBUG"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return app.Run(ctx, optionsFromCommand(cmd))
		},
	}
}

func optionsFromCommand(cmd *cli.Command) app.Options {
	return app.Options{
		ConfigPath: cmd.String("config"),
		PrefsPath:  cmd.String("prefs"),
		LogFile:    cmd.String("log-file"),
		APIURL:     cmd.String("api-url"),
		Theme:      cmd.String("theme"),
		Debug:      cmd.Bool("debug"),
	}
}
