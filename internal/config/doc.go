// Package config loads academia's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/academia/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	api_url = "https://openlibrary.org"
//	search_limit = 30
//	user_agent = "academia/0.1 (me@example.com)"
//	request_timeout = "15s"
//	log_file = "~/.local/state/academia/academia.log"
//	brand = "Academia Library"
//
// Every field is optional. request_timeout takes a Go duration string; when
// unset, requests are bounded only by the program context. Tilde expansion
// is applied to log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, TOML
// syntax errors and malformed durations. A missing file is not an error.
package config
