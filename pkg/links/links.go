package links

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Error messages surfaced to the client on malformed hyperlinks.
const (
	ErrBadScheme  = "Invalid hyperlink format. URLs must start with http:// or https://."
	ErrEmptyParts = "Hyperlink text and URL must not be empty."
)

var (
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\s)]+)\)`)
	anyPattern  = regexp.MustCompile(`\[([^\]]*)\]\(([^\s)]*)\)`)
)

// Result carries the rendered markup plus any validation failures found in
// the source text. HTML is always populated; invalid links are simply left
// unrendered.
type Result struct {
	HTML   string
	Valid  bool
	Errors []string
}

var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowStandardURLs()
	return p
}()

// Parse turns markdown-style [text](url) links into sanitized anchors.
// Only http and https URLs render; anything else is reported as an error.
func Parse(text string) Result {
	res := Result{Valid: true}

	sawBadScheme := false
	sawEmpty := false
	for _, m := range anyPattern.FindAllStringSubmatch(text, -1) {
		label, url := m[1], m[2]
		if label == "" || url == "" {
			sawEmpty = true
			continue
		}
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			sawBadScheme = true
		}
	}
	if sawBadScheme {
		res.Valid = false
		res.Errors = append(res.Errors, ErrBadScheme)
	}
	if sawEmpty {
		res.Valid = false
		res.Errors = append(res.Errors, ErrEmptyParts)
	}

	rendered := linkPattern.ReplaceAllString(text,
		`<a href="$2" target="_blank" rel="noopener noreferrer">$1</a>`)
	res.HTML = policy.Sanitize(rendered)
	return res
}
