// Package catalog holds the book records shown by the browser, the featured
// sample list, and the search and enrichment operations that produce them.
package catalog

import (
	"strings"

	"github.com/five82/academia/internal/openlibrary"
)

// SynthesizedPrefix marks ids generated for search docs that arrived without
// a catalog key. Such ids never address a remote resource.
const SynthesizedPrefix = "book-"

// Book is a single displayable record, either featured or from a search.
type Book struct {
	ID               string
	Title            string
	Authors          []string
	FirstPublishYear int
	Subjects         []string
	ISBNs            []string
	CoverID          int
	CoverURL         string
	Description      string
}

// Synthesized reports whether the id was generated locally.
func (b Book) Synthesized() bool {
	return strings.HasPrefix(b.ID, SynthesizedPrefix)
}

// ImageURL returns the cover image for the requested size. A cover id wins
// over a literal cover URL; a literal URL is rewritten from its large variant
// to the requested size. An empty string means no image exists.
func (b Book) ImageURL(size openlibrary.CoverSize) string {
	if size == "" {
		size = openlibrary.CoverMedium
	}
	if b.CoverID > 0 {
		return openlibrary.CoverURL(b.CoverID, size)
	}
	if b.CoverURL != "" {
		return strings.Replace(b.CoverURL, "-L.jpg", "-"+string(size)+".jpg", 1)
	}
	return ""
}

// WithDescription returns a copy of b carrying text as its description.
func (b Book) WithDescription(text string) Book {
	b.Description = text
	return b
}
