package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/five82/academia/internal/catalog"
	"github.com/five82/academia/internal/config"
	"github.com/five82/academia/internal/logging"
	"github.com/five82/academia/internal/openlibrary"
	"github.com/five82/academia/internal/prefs"
	"github.com/five82/academia/internal/ui"
)

// Options configure the academia application. Empty fields keep the value
// from the config file or its default.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/academia/prefs.toml
	LogFile    string
	APIURL     string
	Theme      string
	Debug      bool
}

// Run boots the academia TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	uiOpts, closer, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	uiOpts.Logger.Info("academia starting", "brand", uiOpts.Brand, "theme", uiOpts.ThemeName)
	err = ui.Run(uiOpts)
	if err != nil {
		uiOpts.Logger.Error("ui stopped", "error", err)
		return fmt.Errorf("run ui: %w", err)
	}
	uiOpts.Logger.Info("academia stopped")
	return nil
}

// setup loads configuration and preferences and builds the catalog services.
// The returned closer releases the log file.
func setup(ctx context.Context, opts Options) (ui.Options, io.Closer, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(opts.LogFile); v != "" {
		expanded, err := config.ExpandPath(v)
		if err != nil {
			return ui.Options{}, nil, fmt.Errorf("resolve log file: %w", err)
		}
		cfg.LogFile = expanded
	}

	logger, closer, err := logging.Open(cfg.LogFile, opts.Debug)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("init logging: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("prefs unreadable, using defaults", "path", opts.PrefsPath, "error", err)
	}
	theme := userPrefs.Theme
	if v := strings.TrimSpace(opts.Theme); v != "" {
		theme = v
	}

	client, err := openlibrary.NewClient(cfg.APIURL, cfg.UserAgent, cfg.RequestTimeout)
	if err != nil {
		closer.Close()
		return ui.Options{}, nil, fmt.Errorf("init catalog client: %w", err)
	}

	logger.Debug("config loaded",
		"api", cfg.APIURL,
		"search_limit", cfg.SearchLimit,
		"timeout", cfg.RequestTimeout,
		"theme", theme,
	)

	return ui.Options{
		Context:   ctx,
		Searcher:  catalog.NewSearcher(client, cfg.SearchLimit),
		Describer: catalog.NewEnricher(client),
		Logger:    logger,
		Brand:     cfg.Brand,
		ThemeName: theme,
		PrefsPath: opts.PrefsPath,
		WorkURL:   client.WorkPageURL,
	}, closer, nil
}
