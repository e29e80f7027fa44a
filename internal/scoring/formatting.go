package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	minWordCount = 300
	maxWordCount = 2000
)

var leadingBulletPattern = regexp.MustCompile(`(?m)^\s*[-*]\s`)

// computeFormattingScore checks ATS-friendly structure: the expected
// sections, a reasonable length, and bullet usage. Starts at 100 and deducts
// per issue, floored at 0; the returned issues feed the suggestion list.
func computeFormattingScore(parsed *types.ParsedResume) (int, []string) {
	score := 100
	var issues []string

	if !parsed.HasSection(types.SectionExperience) {
		score -= 20
		issues = append(issues, "add a clearly labeled work experience section")
	}
	if !parsed.HasSection(types.SectionEducation) {
		score -= 15
		issues = append(issues, "add an education section")
	}
	if !parsed.HasSection(types.SectionSkills) {
		score -= 15
		issues = append(issues, "add a dedicated skills section")
	}

	words := len(strings.Fields(parsed.RawText))
	if words < minWordCount {
		score -= 10
		issues = append(issues, "resume looks too short; aim for at least 300 words")
	} else if words > maxWordCount {
		score -= 10
		issues = append(issues, "resume looks too long; trim it below 2000 words")
	}

	if !hasBulletMarkers(parsed.RawText) {
		score -= 10
		issues = append(issues, "use bullet points to list accomplishments")
	}

	if score < 0 {
		score = 0
	}
	return score, issues
}

// hasBulletMarkers reports whether the text uses bullet characters anywhere
// or dash/asterisk markers at the start of a line.
func hasBulletMarkers(text string) bool {
	if strings.ContainsAny(text, "•●○") {
		return true
	}
	return leadingBulletPattern.MatchString(text)
}
