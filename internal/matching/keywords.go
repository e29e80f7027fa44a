package matching

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocab"
)

// minTokenLength drops noise words the stop list misses.
const minTokenLength = 3

// keywordMatches is the term-matching strategy used when comparing resume
// keywords to job keywords: exact equality or containment in either
// direction, so "javascript" satisfies a job asking for "java" and
// vice versa. Swap this function to change the strategy everywhere.
func keywordMatches(resumeTerm, jobTerm string) bool {
	return resumeTerm == jobTerm ||
		strings.Contains(resumeTerm, jobTerm) ||
		strings.Contains(jobTerm, resumeTerm)
}

// profileKeywords tokenizes the free-text profile fields into a deduplicated
// lowercase keyword list.
func profileKeywords(profile types.ResumeProfile, stop map[string]bool) []string {
	combined := strings.Join([]string{
		profile.Skills,
		profile.Languages,
		profile.Strengths,
		profile.Summary,
	}, " ")
	return tokenize(combined, stop)
}

// jobKeywords derives a job's keyword list from its title and description
// tokens, plus any vocabulary tech terms literally present in either. The
// vocabulary pass recovers multi-word terms like "machine learning" that
// tokenizing splits apart.
func jobKeywords(job types.Job, v *vocab.Vocabulary, stop map[string]bool) []string {
	text := job.Title + " " + job.Description
	keywords := tokenize(text, stop)

	seen := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		seen[k] = true
	}

	lower := strings.ToLower(text)
	for _, term := range v.TechKeywords {
		if !seen[term] && strings.Contains(lower, term) {
			seen[term] = true
			keywords = append(keywords, term)
		}
	}
	return keywords
}

// tokenize lowercases text, splits it on non-token runes, and drops stop
// words and short tokens. Order of first occurrence is preserved.
func tokenize(text string, stop map[string]bool) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})

	seen := make(map[string]bool, len(fields))
	var tokens []string
	for _, f := range fields {
		if len(f) < minTokenLength || stop[f] || seen[f] {
			continue
		}
		seen[f] = true
		tokens = append(tokens, f)
	}
	return tokens
}
