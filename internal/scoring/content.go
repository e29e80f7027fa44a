package scoring

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocab"
)

// minStrongMetricCount is the number of quantified achievements below which
// a smaller deduction still applies.
const minStrongMetricCount = 3

// computeContentScore checks the substance of the resume: reachable contact
// details, quantified achievements, action verbs, and a profile link. Starts
// at 100 and deducts per issue, floored at 0.
func computeContentScore(parsed *types.ParsedResume, v *vocab.Vocabulary) (int, []string) {
	score := 100
	var issues []string

	if parsed.Contact.Email == "" {
		score -= 20
		issues = append(issues, "add an email address so recruiters can reach you")
	}
	if parsed.Contact.Phone == "" {
		score -= 10
		issues = append(issues, "add a phone number")
	}
	if parsed.Contact.Name == "" {
		score -= 10
		issues = append(issues, "put your name on the first line")
	}

	switch n := len(parsed.Metrics); {
	case n == 0:
		score -= 20
		issues = append(issues, "quantify your achievements with numbers, percentages, or dollar amounts")
	case n < minStrongMetricCount:
		score -= 10
		issues = append(issues, "add more quantified achievements; aim for at least three")
	}

	if !containsActionVerb(parsed.RawText, v.ActionVerbs) {
		score -= 15
		issues = append(issues, "start accomplishment bullets with action verbs like led, developed, or improved")
	}

	if !parsed.Contact.HasProfileLink {
		score -= 5
		issues = append(issues, "add a LinkedIn or portfolio link")
	}

	if score < 0 {
		score = 0
	}
	return score, issues
}

func containsActionVerb(text string, verbs []string) bool {
	lower := strings.ToLower(text)
	for _, verb := range verbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}
