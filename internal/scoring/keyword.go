package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocab"
)

// neutralKeywordScore is returned when the target list is empty: with nothing
// to match against, the resume is neither rewarded nor penalized.
const neutralKeywordScore = 50

// maxMissingKeywords caps how many missing terms are reported back.
const maxMissingKeywords = 10

// keywordResult is the keyword sub-score plus the term-level evidence
// surfaced in the API response.
type keywordResult struct {
	Score   int
	Matched []string
	Missing []string
}

// computeKeywordScore measures keyword coverage. With a job description the
// targets are the vocabulary terms literally present in it; without one they
// are the generic industry target list. The score is the matched fraction of
// targets, rounded to a percentage.
func computeKeywordScore(parsed *types.ParsedResume, jobDescription string, v *vocab.Vocabulary) keywordResult {
	targets := targetTerms(jobDescription, v)
	if len(targets) == 0 {
		return keywordResult{Score: neutralKeywordScore}
	}

	var matched, missing []string
	for _, term := range targets {
		if parsed.HasKeyword(term) {
			matched = append(matched, term)
		} else {
			missing = append(missing, term)
		}
	}
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}

	score := int(math.Round(float64(len(matched)) / float64(len(targets)) * 100))
	return keywordResult{Score: score, Matched: matched, Missing: missing}
}

func targetTerms(jobDescription string, v *vocab.Vocabulary) []string {
	if strings.TrimSpace(jobDescription) == "" {
		return v.TargetKeywords
	}
	jd := strings.ToLower(jobDescription)
	var targets []string
	for _, term := range v.TechKeywords {
		if strings.Contains(jd, term) {
			targets = append(targets, term)
		}
	}
	return targets
}
