package scoring

import (
	"fmt"
	"strings"
)

// Suggestion assembly order: keyword advice first, then formatting issues,
// then content issues, then one closing assessment chosen by overall band.
const (
	keywordAdviceThreshold = 70
	maxSuggestedKeywords   = 5

	strongOverallBand   = 80
	moderateOverallBand = 60
)

func buildSuggestions(kw keywordResult, formattingIssues, contentIssues []string, overall int) []string {
	var suggestions []string

	if kw.Score < keywordAdviceThreshold && len(kw.Missing) > 0 {
		shown := kw.Missing
		if len(shown) > maxSuggestedKeywords {
			shown = shown[:maxSuggestedKeywords]
		}
		suggestions = append(suggestions,
			fmt.Sprintf("Improve keyword coverage: consider adding %s", strings.Join(shown, ", ")))
	}

	for _, issue := range formattingIssues {
		suggestions = append(suggestions, "Formatting: "+issue)
	}
	for _, issue := range contentIssues {
		suggestions = append(suggestions, "Content: "+issue)
	}

	switch {
	case overall >= strongOverallBand:
		suggestions = append(suggestions, "Your resume is well optimized for ATS systems")
	case overall >= moderateOverallBand:
		suggestions = append(suggestions, "Your resume is decent but has room for improvement")
	default:
		suggestions = append(suggestions, "Your resume needs significant work to pass ATS screening")
	}

	return suggestions
}
