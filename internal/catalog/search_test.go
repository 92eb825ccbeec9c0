package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/academia/internal/openlibrary"
)

type fakeCatalog struct {
	searches []string
	limits   []int
	fetches  []string

	resp openlibrary.SearchResponse
	work openlibrary.Work
	err  error
}

func (f *fakeCatalog) Search(_ context.Context, query string, limit int) (openlibrary.SearchResponse, error) {
	f.searches = append(f.searches, query)
	f.limits = append(f.limits, limit)
	return f.resp, f.err
}

func (f *fakeCatalog) FetchWork(_ context.Context, key string) (openlibrary.Work, error) {
	f.fetches = append(f.fetches, key)
	return f.work, f.err
}

func TestSearcher_EmptyQueryIssuesNoRequest(t *testing.T) {
	api := &fakeCatalog{}
	s := NewSearcher(api, 0)

	books, err := s.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if books != nil {
		t.Fatalf("Search = %v, want nil", books)
	}
	if len(api.searches) != 0 {
		t.Fatalf("requests = %d, want 0", len(api.searches))
	}
}

func TestSearcher_MapsAndFiltersDocs(t *testing.T) {
	api := &fakeCatalog{resp: openlibrary.SearchResponse{
		NumFound: 4,
		Docs: []openlibrary.Doc{
			{Key: "/works/OL1W", Title: "Dune", AuthorName: []string{"Frank Herbert"}, FirstPublishYear: 1965, CoverID: 11},
			{Title: "Dune Messiah", AuthorName: []string{"Frank Herbert"}},
			{Key: "/works/OL3W", Title: "Unrelated", AuthorName: []string{"Someone Else"}},
			{Key: "/works/OL4W", Title: "Essays", AuthorName: []string{"A. DUNE Scholar"}},
		},
	}}
	s := NewSearcher(api, 0)

	books, err := s.Search(context.Background(), "  dune ")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(api.searches) != 1 || api.searches[0] != "dune" {
		t.Fatalf("searches = %q, want [dune]", api.searches)
	}
	if api.limits[0] != DefaultSearchLimit {
		t.Fatalf("limit = %d, want %d", api.limits[0], DefaultSearchLimit)
	}

	want := []Book{
		{ID: "/works/OL1W", Title: "Dune", Authors: []string{"Frank Herbert"}, FirstPublishYear: 1965, CoverID: 11},
		{ID: "book-1", Title: "Dune Messiah", Authors: []string{"Frank Herbert"}},
		{ID: "/works/OL4W", Title: "Essays", Authors: []string{"A. DUNE Scholar"}},
	}
	if diff := cmp.Diff(want, books); diff != "" {
		t.Fatalf("Search mismatch (-want +got):\n%s", diff)
	}
	for _, b := range books {
		if b.Description != "" {
			t.Fatalf("book %q has description %q, want empty", b.ID, b.Description)
		}
	}
}

func TestSearcher_ZeroMatchesIsEmptyNotError(t *testing.T) {
	api := &fakeCatalog{resp: openlibrary.SearchResponse{
		Docs: []openlibrary.Doc{{Key: "/works/OL1W", Title: "Something"}},
	}}
	books, err := NewSearcher(api, 5).Search(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("Search = %v, want empty", books)
	}
	if api.limits[0] != 5 {
		t.Fatalf("limit = %d, want 5", api.limits[0])
	}
}

func TestSearcher_WrapsFailure(t *testing.T) {
	api := &fakeCatalog{err: errors.New("connection refused")}
	books, err := NewSearcher(api, 0).Search(context.Background(), "dune")
	if !errors.Is(err, ErrSearch) {
		t.Fatalf("error = %v, want ErrSearch", err)
	}
	if books != nil {
		t.Fatalf("Search = %v, want nil on failure", books)
	}
}

func TestFilterRelevant_CaseInsensitive(t *testing.T) {
	books := []Book{
		{ID: "a", Title: "The HOBBIT"},
		{ID: "b", Title: "Other", Authors: []string{"x", "Hobbiton Press"}},
		{ID: "c", Title: "Other"},
	}
	got := FilterRelevant(books, "hobbit")
	ids := make([]string, 0, len(got))
	for _, b := range got {
		ids = append(ids, b.ID)
	}
	if diff := cmp.Diff([]string{"a", "b"}, ids); diff != "" {
		t.Fatalf("FilterRelevant mismatch (-want +got):\n%s", diff)
	}
}
