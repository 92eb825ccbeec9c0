package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/academia/internal/prefs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestSetup_UsesConfigAndPrefs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"docs": []map[string]any{{"key": "/works/OL1W", "title": "Dune", "author_name": []string{"Frank Herbert"}}},
		})
	}))
	defer srv.Close()

	logFile := filepath.Join(home, "logs", "academia.log")
	configPath := filepath.Join(home, "config.toml")
	writeFile(t, configPath, "api_url = \""+srv.URL+"\"\nbrand = \"Reading Room\"\nlog_file = \""+logFile+"\"\n")

	prefsPath := filepath.Join(home, "prefs.toml")
	if err := prefs.Save(prefsPath, prefs.Prefs{Theme: "Kanagawa"}); err != nil {
		t.Fatalf("prefs.Save: %v", err)
	}

	opts, closer, err := setup(context.Background(), Options{ConfigPath: configPath, PrefsPath: prefsPath})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer closer.Close()

	if opts.Brand != "Reading Room" {
		t.Fatalf("Brand = %q, want %q", opts.Brand, "Reading Room")
	}
	if opts.ThemeName != "Kanagawa" {
		t.Fatalf("ThemeName = %q, want %q", opts.ThemeName, "Kanagawa")
	}
	if opts.PrefsPath != prefsPath {
		t.Fatalf("PrefsPath = %q, want %q", opts.PrefsPath, prefsPath)
	}

	books, err := opts.Searcher.Search(context.Background(), "dune")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotQuery != "dune" {
		t.Fatalf("query = %q, want %q", gotQuery, "dune")
	}
	if len(books) != 1 || books[0].Title != "Dune" {
		t.Fatalf("books = %+v, want Dune", books)
	}

	if got := opts.WorkURL("/works/OL1W"); !strings.HasPrefix(got, srv.URL) || !strings.HasSuffix(got, "/works/OL1W") {
		t.Fatalf("WorkURL = %q, want under %q", got, srv.URL)
	}

	opts.Logger.Info("startup check")
	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestSetup_FlagsOverrideConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configPath := filepath.Join(home, "config.toml")
	writeFile(t, configPath, "api_url = \"http://127.0.0.1:1\"\n")

	logFile := filepath.Join(home, "override.log")
	opts, closer, err := setup(context.Background(), Options{
		ConfigPath: configPath,
		PrefsPath:  filepath.Join(home, "prefs.toml"),
		LogFile:    logFile,
		APIURL:     "https://books.example.org",
		Theme:      "Nightfox",
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer closer.Close()

	if opts.ThemeName != "Nightfox" {
		t.Fatalf("ThemeName = %q, want %q", opts.ThemeName, "Nightfox")
	}
	if got := opts.WorkURL("OL1W"); got != "https://books.example.org/works/OL1W" {
		t.Fatalf("WorkURL = %q, want %q", got, "https://books.example.org/works/OL1W")
	}
	opts.Logger.Info("startup check")
	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("override log file not created: %v", err)
	}
}

func TestSetup_BadConfigFails(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configPath := filepath.Join(home, "config.toml")
	writeFile(t, configPath, "request_timeout = \"soon\"\n")

	_, _, err := setup(context.Background(), Options{ConfigPath: configPath})
	if err == nil {
		t.Fatalf("setup error = nil, want config error")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Fatalf("error = %q, want load config context", err)
	}
}

func TestSetup_BadPrefsFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsPath := filepath.Join(home, "prefs.toml")
	writeFile(t, prefsPath, "theme = [")

	opts, closer, err := setup(context.Background(), Options{
		ConfigPath: filepath.Join(home, "missing.toml"),
		PrefsPath:  prefsPath,
		LogFile:    filepath.Join(home, "academia.log"),
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer closer.Close()

	if opts.ThemeName != prefs.DefaultTheme {
		t.Fatalf("ThemeName = %q, want %q", opts.ThemeName, prefs.DefaultTheme)
	}
}
