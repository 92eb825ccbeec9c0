package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/five82/academia/internal/openlibrary"
)

// DefaultSearchLimit caps the number of docs requested per search.
const DefaultSearchLimit = 30

// ErrSearch wraps every failure returned by Searcher.Search.
var ErrSearch = errors.New("catalog search failed")

// Searcher runs catalog searches and turns the raw docs into relevant books.
type Searcher struct {
	api   openlibrary.Catalog
	limit int
}

// NewSearcher returns a Searcher backed by api. A non-positive limit uses
// DefaultSearchLimit.
func NewSearcher(api openlibrary.Catalog, limit int) *Searcher {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return &Searcher{api: api, limit: limit}
}

// Search queries the catalog once and returns the books whose title or an
// author contains the query. An empty query returns nothing without a request.
func (s *Searcher) Search(ctx context.Context, query string) ([]Book, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	if s == nil || s.api == nil {
		return nil, fmt.Errorf("%w: no catalog configured", ErrSearch)
	}
	resp, err := s.api.Search(ctx, q, s.limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}
	books := make([]Book, 0, len(resp.Docs))
	for i, doc := range resp.Docs {
		books = append(books, FromDoc(doc, i))
	}
	return FilterRelevant(books, q), nil
}

// FromDoc maps a search doc to a Book. Docs without a key get a synthesized
// id derived from their position in the response.
func FromDoc(doc openlibrary.Doc, index int) Book {
	id := doc.Key
	if id == "" {
		id = SynthesizedPrefix + strconv.Itoa(index)
	}
	return Book{
		ID:               id,
		Title:            doc.Title,
		Authors:          doc.AuthorName,
		FirstPublishYear: doc.FirstPublishYear,
		Subjects:         doc.Subject,
		ISBNs:            doc.ISBN,
		CoverID:          doc.CoverID,
	}
}

// FilterRelevant keeps books whose title or any author contains query,
// compared case-insensitively. Order is preserved.
func FilterRelevant(books []Book, query string) []Book {
	needle := strings.ToLower(query)
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if matches(b, needle) {
			out = append(out, b)
		}
	}
	return out
}

func matches(b Book, needle string) bool {
	if strings.Contains(strings.ToLower(b.Title), needle) {
		return true
	}
	for _, author := range b.Authors {
		if strings.Contains(strings.ToLower(author), needle) {
			return true
		}
	}
	return false
}
