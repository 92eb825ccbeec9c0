package openlibrary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "openlibrary.org" {
		t.Fatalf("url = %q, want https://openlibrary.org", u.String())
	}

	u, err = parseBaseURL("example.com:8080")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "example.com:8080" {
		t.Fatalf("url = %q, want https://example.com:8080", u.String())
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_SearchEncodesQueryAndLimit(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	var gotQuery, gotLimit, gotUserAgent, gotRawQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.json" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		gotQuery = r.URL.Query().Get("q")
		gotLimit = r.URL.Query().Get("limit")
		gotRawQuery = r.URL.RawQuery
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"numFound":2,"docs":[
			{"key":"/works/OL1W","title":"The Great Gatsby","author_name":["F. Scott Fitzgerald"],"first_publish_year":1925,"cover_i":42},
			{"key":"/works/OL2W","title":"Gatsby Notes"}
		]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	resp, err := c.Search(ctx, "great gatsby & co", 30)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("requests = %d, want 1", hits.Load())
	}
	if gotQuery != "great gatsby & co" {
		t.Fatalf("q = %q, want %q", gotQuery, "great gatsby & co")
	}
	if strings.Contains(gotRawQuery, " ") || strings.Contains(gotRawQuery, "& co") {
		t.Fatalf("raw query %q is not URL-encoded", gotRawQuery)
	}
	if gotLimit != "30" {
		t.Fatalf("limit = %q, want 30", gotLimit)
	}
	if !strings.HasPrefix(gotUserAgent, "academia/") {
		t.Fatalf("User-Agent = %q, want academia/*", gotUserAgent)
	}
	if resp.NumFound != 2 || len(resp.Docs) != 2 {
		t.Fatalf("Search = %#v, want 2 docs", resp)
	}
	first := resp.Docs[0]
	if first.Key != "/works/OL1W" || first.CoverID != 42 || first.FirstPublishYear != 1925 {
		t.Fatalf("first doc = %#v", first)
	}
	if len(first.AuthorName) != 1 || first.AuthorName[0] != "F. Scott Fitzgerald" {
		t.Fatalf("AuthorName = %v", first.AuthorName)
	}
}

func TestClient_FetchWorkStripsNamespace(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"key":"/works/OL45804W","title":"Fantastic Mr Fox","description":{"type":"/type/text","value":"A fox."}}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "test/1.0", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	work, err := c.FetchWork(context.Background(), "/works/OL45804W")
	if err != nil {
		t.Fatalf("FetchWork returned error: %v", err)
	}
	if gotPath != "/works/OL45804W.json" {
		t.Fatalf("path = %q, want /works/OL45804W.json", gotPath)
	}
	text, ok := work.Description.Text()
	if !ok || text != "A fox." {
		t.Fatalf("Description.Text() = %q, %v, want %q, true", text, ok, "A fox.")
	}
}

func TestClient_FetchWorkRequiresKey(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", "", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchWork(context.Background(), "  "); err == nil {
		t.Fatalf("FetchWork returned nil error, want error")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/works/OL1W.json":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Search(context.Background(), "x", 30)
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("Search error = %v, want decode response error", err)
	}

	_, err = c.FetchWork(context.Background(), "OL1W")
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchWork error = %v, want status 500 error", err)
	}
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("FetchWork error = %v, want it to wrap ErrStatus", err)
	}
}

func TestWorkPageURL(t *testing.T) {
	c, err := NewClient("https://openlibrary.org", "", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if got := c.WorkPageURL("/works/OL1W"); got != "https://openlibrary.org/works/OL1W" {
		t.Fatalf("WorkPageURL = %q", got)
	}
	if got := c.WorkPageURL(""); got != "" {
		t.Fatalf("WorkPageURL(empty) = %q, want empty", got)
	}
}
