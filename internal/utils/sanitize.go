package utils

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup outside the editor's allow-list from post and
// comment bodies.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"b", "i", "em", "strong", "a", "p", "h2", "figure",
		"table", "tbody", "tr", "td", "blockquote", "ul", "li", "ol", "oembed",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("url").OnElements("oembed")
	p.AllowAttrs("class").Globally()

	p.AllowStyles("text-align").MatchingEnum("left", "center", "right", "justify").OnElements("p")
	p.AllowStyles("color").Matching(regexp.MustCompile(`^#[0-9a-fA-F]{3,6}$`)).Globally()
	p.AllowStyles("font-weight").MatchingEnum("bold").Globally()

	p.AllowURLSchemes("http", "https")
	p.RequireParseableURLs(true)

	return &Sanitizer{policy: p}
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
