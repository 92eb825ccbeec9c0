package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/five82/academia/internal/openlibrary"
)

// Description placeholders shown in the detail view.
const (
	NoDescription          = "No description available."
	DescriptionUnavailable = "Description not available."
)

// ErrEnrich wraps every failure returned by Enricher.Describe.
var ErrEnrich = errors.New("description fetch failed")

// NeedsEnrichment reports whether a book's description must be fetched
// before it can be shown. Featured books and synthesized ids never qualify.
func NeedsEnrichment(b Book) bool {
	return b.Description == "" && b.ID != "" && !b.Synthesized()
}

// Enricher fetches work descriptions on demand.
type Enricher struct {
	api openlibrary.Catalog
}

// NewEnricher returns an Enricher backed by api.
func NewEnricher(api openlibrary.Catalog) *Enricher {
	return &Enricher{api: api}
}

// Describe returns the description text for b. A work without a description
// yields NoDescription. On failure the returned text is DescriptionUnavailable
// and the error is non-nil; callers display the text either way.
func (e *Enricher) Describe(ctx context.Context, b Book) (string, error) {
	if e == nil || e.api == nil {
		return DescriptionUnavailable, fmt.Errorf("%w: no catalog configured", ErrEnrich)
	}
	work, err := e.api.FetchWork(ctx, b.ID)
	if err != nil {
		return DescriptionUnavailable, fmt.Errorf("%w: %s: %w", ErrEnrich, b.ID, err)
	}
	text, ok := work.Description.Text()
	if !ok {
		return NoDescription, nil
	}
	return text, nil
}
