// Package state holds the interactive state of the book browser.
//
// # Overview
//
// Three types cooperate:
//
//   - Flag: an observable boolean with synchronous subscribers
//   - Browser: the search, results and detail state machine
//   - Shell: the frame that owns the "show featured" flag
//
// The Browser never performs I/O. Submit hands back a Request for the caller
// to execute, and the finished search is fed back through Resolve. Detail
// enrichment works the same way with Open and ApplyDescription.
//
// # Views
//
//	Featured --Submit--> Searching --Resolve--> Results
//	   ^                                          |
//	   +-------- BackToFeatured / flag true ------+
//
// The detail modal is an overlay on any view.
//
// # Featured Flag
//
// Shell sets the flag false after a search completes and true when the user
// goes home or back. The browser subscribes to the flag and restores the
// featured list whenever it becomes true.
//
// # Concurrency
//
// Nothing here is locked. All calls happen on the Bubble Tea update loop;
// network work runs in commands and reports back through messages.
package state
