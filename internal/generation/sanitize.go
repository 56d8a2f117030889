package generation

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans generated text before it is handed to a renderer.
type Sanitizer interface {
	Sanitize(s string) string
}

// MarkupStripper removes any HTML markup from generated text and returns
// plain text. Entities are decoded before stripping, so entity-encoded tags
// are removed too. Afterwards only the quote and ampersand escapes added by
// the strict policy are reversed; angle brackets stay escaped.
type MarkupStripper struct {
	policy *bluemonday.Policy
}

var policyEscapes = strings.NewReplacer("&#39;", "'", "&#34;", `"`, "&amp;", "&")

// NewMarkupStripper creates a MarkupStripper backed by bluemonday's strict policy.
func NewMarkupStripper() *MarkupStripper {
	return &MarkupStripper{policy: bluemonday.StrictPolicy()}
}

// Sanitize implements Sanitizer.
func (m *MarkupStripper) Sanitize(s string) string {
	return strings.TrimSpace(policyEscapes.Replace(m.policy.Sanitize(html.UnescapeString(s))))
}

// PlainText only trims surrounding whitespace.
type PlainText struct{}

// Sanitize implements Sanitizer.
func (PlainText) Sanitize(s string) string {
	return strings.TrimSpace(s)
}
