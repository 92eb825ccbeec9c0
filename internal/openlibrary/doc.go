// Package openlibrary provides an HTTP client for the public Open Library API.
//
// # Overview
//
// The client covers the two read-only endpoints the application needs:
//
//   - GET /search.json?q=<query>&limit=<n>: full-text catalog search
//   - GET /works/<id>.json: extended record for a single work
//
// Every call issues exactly one request. There is no caching, retry or rate
// limiting; a request is bounded by its context and the optional client
// timeout.
//
// # Usage
//
//	client, err := openlibrary.NewClient(openlibrary.DefaultBaseURL, "", 0)
//	if err != nil {
//		return err
//	}
//	resp, err := client.Search(ctx, "dune", 30)
//
// # Lenient Decoding
//
// Catalog entries are loosely typed. [Doc] decodes each field on its own so a
// malformed optional field becomes absent instead of failing the response.
// Work descriptions arrive either as a plain string or as a typed text
// object; [Description] normalizes both into a single tagged value.
//
// Non-2xx responses wrap [ErrStatus].
package openlibrary
