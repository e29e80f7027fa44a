// Package scoring computes ATS compatibility scores for parsed resumes.
// Scoring is pure: same parsed resume and job description in, same score
// out, with no I/O anywhere in the package.
package scoring

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocab"
)

// Sub-score weights for the overall score. They sum to 1.0; content weighs
// heaviest because substance beats formatting for ATS ranking.
const (
	keywordWeight    = 0.30
	formattingWeight = 0.25
	contentWeight    = 0.45
)

// Score evaluates a parsed resume against ATS heuristics. jobDescription is
// optional; when present the keyword sub-score targets terms found in it.
// A nil vocabulary falls back to the embedded default.
func Score(parsed *types.ParsedResume, jobDescription string, v *vocab.Vocabulary) types.ATSScore {
	if v == nil {
		v = vocab.Default()
	}

	kw := computeKeywordScore(parsed, jobDescription, v)
	formatting, formattingIssues := computeFormattingScore(parsed)
	content, contentIssues := computeContentScore(parsed, v)

	overall := int(math.Round(
		float64(kw.Score)*keywordWeight +
			float64(formatting)*formattingWeight +
			float64(content)*contentWeight))

	return types.ATSScore{
		OverallScore:    overall,
		KeywordScore:    kw.Score,
		FormattingScore: formatting,
		ContentScore:    content,
		Suggestions:     buildSuggestions(kw, formattingIssues, contentIssues, overall),
		MatchedKeywords: kw.Matched,
		MissingKeywords: kw.Missing,
	}
}
