package jobsearch

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// StripHTML flattens HTML job descriptions to plain text so the matcher
// tokenizes words instead of markup. Input that fails to parse is returned
// unchanged; a markup-flavored description is better than an empty one.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	text := doc.Text()
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}
