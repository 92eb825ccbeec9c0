// Package app is the composition root for academia.
//
// # Overview
//
// Run wires configuration, preferences, logging and the Open Library client
// together and hands the result to the ui package:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          Read ~/.config/academia/config.toml
//	       ├─────> logging.Open()         File logger (the terminal is the TUI's)
//	       ├─────> prefs.Load()           Saved theme
//	       ├─────> openlibrary.NewClient()
//	       ├─────> catalog.NewSearcher()  Search + relevance filter
//	       ├─────> catalog.NewEnricher()  Description lookups
//	       └─────> ui.Run()               Start TUI (blocks)
//
// # Error Handling
//
// A malformed config file, an unusable API URL or an unwritable log file
// stops startup and is returned from Run. An unreadable prefs file is logged
// and the default theme is used. Once the UI is running no catalog error is
// fatal; the UI degrades to empty results or placeholder text.
//
// # Options
//
// Options mirror the command line flags. Non-empty values take precedence over
// the config file:
//
//   - ConfigPath: config file (default ~/.config/academia/config.toml)
//   - PrefsPath: preferences file (default ~/.config/academia/prefs.toml)
//   - LogFile: log destination
//   - APIURL: Open Library base URL
//   - Theme: starting theme, not persisted until cycled
//   - Debug: enable debug logging
package app
