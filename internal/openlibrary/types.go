package openlibrary

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CoversBaseURL hosts cover images keyed by numeric cover id.
const CoversBaseURL = "https://covers.openlibrary.org"

// PlaceholderCoverURL is shown when a record has no cover id.
const PlaceholderCoverURL = "https://via.placeholder.com/128x192?text=No+Cover"

// CoverSize selects one of the pre-rendered cover sizes.
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

// CoverURL returns the image URL for coverID, or the placeholder when the
// id is absent.
func CoverURL(coverID int, size CoverSize) string {
	if coverID <= 0 {
		return PlaceholderCoverURL
	}
	if size == "" {
		size = CoverMedium
	}
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", CoversBaseURL, coverID, size)
}

// SearchResponse mirrors the payload returned by /search.json.
type SearchResponse struct {
	NumFound int   `json:"numFound"`
	Docs     []Doc `json:"docs"`
}

// Doc is one raw catalog entry from a search response.
type Doc struct {
	Key              string
	Title            string
	AuthorName       []string
	FirstPublishYear int
	Subject          []string
	ISBN             []string
	CoverID          int
}

// UnmarshalJSON decodes each field independently. Optional fields that are
// missing or carry the wrong JSON type are left at their zero value instead
// of failing the whole search response.
func (d *Doc) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = Doc{
		Key:              field[string](raw, "key"),
		Title:            field[string](raw, "title"),
		AuthorName:       field[[]string](raw, "author_name"),
		FirstPublishYear: field[int](raw, "first_publish_year"),
		Subject:          field[[]string](raw, "subject"),
		ISBN:             field[[]string](raw, "isbn"),
		CoverID:          field[int](raw, "cover_i"),
	}
	return nil
}

func field[T any](raw map[string]json.RawMessage, name string) T {
	var value T
	msg, ok := raw[name]
	if !ok {
		return value
	}
	if err := json.Unmarshal(msg, &value); err != nil {
		var zero T
		return zero
	}
	return value
}

// Work mirrors the subset of /works/<id>.json the application reads.
type Work struct {
	Key         string      `json:"key"`
	Title       string      `json:"title"`
	Description Description `json:"description"`
}

// DescriptionKind tags which wire shape a description arrived in.
type DescriptionKind int

const (
	DescriptionAbsent DescriptionKind = iota
	DescriptionText                   // "description": "..."
	DescriptionTyped                  // "description": {"type": "/type/text", "value": "..."}
)

// Description is the normalized form of the work description field, which
// the API sends either as a plain string or as a typed text object.
type Description struct {
	Kind  DescriptionKind
	Type  string
	Value string
}

// UnmarshalJSON normalizes both wire shapes. Any other shape is treated as
// absent.
func (d *Description) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*d = Description{}
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*d = Description{Kind: DescriptionText, Value: text}
	case '{':
		var obj map[string]any
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		value, ok := obj["value"].(string)
		if !ok {
			return nil
		}
		typ, _ := obj["type"].(string)
		*d = Description{Kind: DescriptionTyped, Type: typ, Value: value}
	}
	return nil
}

// Text returns the description text and whether a non-empty one is present.
func (d Description) Text() (string, bool) {
	if d.Kind == DescriptionAbsent || d.Value == "" {
		return "", false
	}
	return d.Value, true
}
