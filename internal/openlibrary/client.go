package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Catalog defines the read-only Open Library operations the application uses.
// This interface is implemented by *Client and can be used for testing.
type Catalog interface {
	Search(ctx context.Context, query string, limit int) (SearchResponse, error)
	FetchWork(ctx context.Context, key string) (Work, error)
}

// Ensure Client implements Catalog at compile time.
var _ Catalog = (*Client)(nil)

// ErrStatus is wrapped by every error caused by a non-2xx response.
var ErrStatus = errors.New("unexpected response status")

// Client talks to the Open Library HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL   = "https://openlibrary.org"
	defaultUserAgent = "academia/0.1"
	worksPrefix      = "/works/"
)

// NewClient builds a Client for baseURL. A zero timeout leaves requests
// bounded only by their context.
func NewClient(baseURL, userAgent string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}, nil
}

// Search queries /search.json for up to limit documents.
func (c *Client) Search(ctx context.Context, query string, limit int) (SearchResponse, error) {
	if c == nil {
		return SearchResponse{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("q", query)
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	rel := &url.URL{Path: "/search.json", RawQuery: values.Encode()}
	var payload SearchResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return SearchResponse{}, err
	}
	return payload, nil
}

// FetchWork retrieves the extended record for a work. The key may be given
// either bare ("OL45804W") or path-style ("/works/OL45804W").
func (c *Client) FetchWork(ctx context.Context, key string) (Work, error) {
	if c == nil {
		return Work{}, fmt.Errorf("client is nil")
	}
	id := WorkID(key)
	if id == "" {
		return Work{}, fmt.Errorf("work key required")
	}
	rel := &url.URL{Path: worksPrefix + id + ".json"}
	var payload Work
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return Work{}, err
	}
	return payload, nil
}

// WorkPageURL returns the human-facing page for a work.
func (c *Client) WorkPageURL(key string) string {
	if c == nil {
		return ""
	}
	id := WorkID(key)
	if id == "" {
		return ""
	}
	return c.baseURL.ResolveReference(&url.URL{Path: worksPrefix + id}).String()
}

// WorkID strips the namespace prefix from a work key.
func WorkID(key string) string {
	return strings.TrimPrefix(strings.TrimSpace(key), worksPrefix)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d: %w", rel.Path, resp.StatusCode, ErrStatus)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", baseURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", baseURL)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
