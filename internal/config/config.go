package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings academia reads at startup.
type Config struct {
	APIURL         string
	SearchLimit    int
	UserAgent      string
	RequestTimeout time.Duration
	LogFile        string
	Brand          string
}

const (
	defaultConfigPath  = "~/.config/academia/config.toml"
	defaultAPIURL      = "https://openlibrary.org"
	defaultSearchLimit = 30
	maxSearchLimit     = 100 // largest page Open Library's search returns
	defaultLogFile     = "~/.local/state/academia/academia.log"
	defaultBrand       = "Academia Library"
)

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:      defaultAPIURL,
		SearchLimit: defaultSearchLimit,
		LogFile:     mustExpand(defaultLogFile),
		Brand:       defaultBrand,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		SearchLimit    int    `toml:"search_limit"`
		UserAgent      string `toml:"user_agent"`
		RequestTimeout string `toml:"request_timeout"`
		LogFile        string `toml:"log_file"`
		Brand          string `toml:"brand"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if raw.SearchLimit > 0 {
		cfg.SearchLimit = min(raw.SearchLimit, maxSearchLimit)
	}
	cfg.UserAgent = strings.TrimSpace(raw.UserAgent)

	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if timeout < 0 {
			return Config{}, fmt.Errorf("parse request_timeout: negative duration %q", v)
		}
		cfg.RequestTimeout = timeout
	}

	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Brand); v != "" {
		cfg.Brand = v
	}

	return cfg, nil
}

// ExpandPath resolves a leading "~" and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
