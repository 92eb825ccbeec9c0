package catalog

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// Display defaults for records with missing fields.
const (
	DefaultGenre  = "Fiction"
	UnknownAuthor = "Unknown Author"
	UnknownYear   = "Unknown"
)

var (
	linkPattern         = regexp.MustCompile(`\(https?://[^)]+\)`)
	sourceMarkerPattern = regexp.MustCompile(`(?i)\[\[source\]\]`)
	sourceLinkPattern   = regexp.MustCompile(`(?i)\(\[source\]\[.*?\]\)`)
	markupPattern       = regexp.MustCompile(`(?i)</?(a|b|i|u|p|br|hr|em|strong|span|div|ul|ol|li|h[1-6]|blockquote|sup|sub|small|cite)(\s+[a-z-]+\s*=\s*("[^"]*"|'[^']*'))*\s*/?>`)

	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Genre derives a display genre from the first subject: anything after "("
// or "," is dropped and each space-separated word is capitalized.
func Genre(subjects []string) string {
	if len(subjects) == 0 {
		return DefaultGenre
	}
	subject := subjects[0]
	if i := strings.Index(subject, "("); i >= 0 {
		subject = subject[:i]
	}
	if i := strings.Index(subject, ","); i >= 0 {
		subject = subject[:i]
	}
	subject = strings.TrimSpace(subject)

	words := strings.Split(subject, " ")
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// CleanDescription strips inline reference links and source markers from
// catalog description text. Markup is removed only when the text contains
// real HTML elements; a bare "<" or ">" in plain text is kept.
func CleanDescription(text string) string {
	if text == "" {
		return ""
	}
	text = linkPattern.ReplaceAllString(text, "")
	text = sourceMarkerPattern.ReplaceAllString(text, "")
	text = sourceLinkPattern.ReplaceAllString(text, "")
	if markupPattern.MatchString(text) {
		text = html.UnescapeString(textSanitizer().Sanitize(text))
	}
	return strings.TrimSpace(text)
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// AuthorLine joins author names for display.
func AuthorLine(authors []string) string {
	line := strings.Join(authors, ", ")
	if line == "" {
		return UnknownAuthor
	}
	return line
}

// YearLabel formats a first-publish year, 0 meaning unknown.
func YearLabel(year int) string {
	if year == 0 {
		return UnknownYear
	}
	return strconv.Itoa(year)
}
