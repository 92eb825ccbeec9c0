package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.SearchLimit != defaultSearchLimit {
		t.Fatalf("SearchLimit = %d, want %d", cfg.SearchLimit, defaultSearchLimit)
	}
	if cfg.RequestTimeout != 0 {
		t.Fatalf("RequestTimeout = %v, want 0", cfg.RequestTimeout)
	}
	if cfg.Brand != defaultBrand {
		t.Fatalf("Brand = %q, want %q", cfg.Brand, defaultBrand)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "academia")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`brand = "Night Shelf"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Brand != "Night Shelf" {
		t.Fatalf("Brand = %q, want %q", cfg.Brand, "Night Shelf")
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "  http://127.0.0.1:8080  "
search_limit = 12
user_agent = " academia-test/1.0 "
request_timeout = " 15s "
log_file = "  ~/logs/academia.log  "
brand = " Reading Room "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://127.0.0.1:8080" {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, "http://127.0.0.1:8080")
	}
	if cfg.SearchLimit != 12 {
		t.Fatalf("SearchLimit = %d, want 12", cfg.SearchLimit)
	}
	if cfg.UserAgent != "academia-test/1.0" {
		t.Fatalf("UserAgent = %q, want %q", cfg.UserAgent, "academia-test/1.0")
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("RequestTimeout = %v, want 15s", cfg.RequestTimeout)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "academia.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.Brand != "Reading Room" {
		t.Fatalf("Brand = %q, want %q", cfg.Brand, "Reading Room")
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "   "
search_limit = 0
brand = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.SearchLimit != defaultSearchLimit {
		t.Fatalf("SearchLimit = %d, want %d", cfg.SearchLimit, defaultSearchLimit)
	}
	if cfg.Brand != defaultBrand {
		t.Fatalf("Brand = %q, want %q", cfg.Brand, defaultBrand)
	}
}

func TestLoad_SearchLimitIsCapped(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("search_limit = 5000\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SearchLimit != maxSearchLimit {
		t.Fatalf("SearchLimit = %d, want %d", cfg.SearchLimit, maxSearchLimit)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidTimeoutFails(t *testing.T) {
	for _, value := range []string{"soon", "-5s"} {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(`request_timeout = "`+value+`"`), 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), "request_timeout") {
			t.Fatalf("Load(%q) error = %v, want request_timeout error", value, err)
		}
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
