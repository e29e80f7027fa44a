package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxPolishedSuggestions bounds how many rewritten suggestions we accept
// back from the model.
const maxPolishedSuggestions = 10

// BuildSuggestionPrompt renders the polish prompt for a computed score.
// The model only rewrites existing findings; it is told not to invent new
// ones so the advice stays anchored to the deterministic analysis.
func BuildSuggestionPrompt(score types.ATSScore) string {
	var sb strings.Builder
	sb.WriteString("You are a resume coach. Rewrite the following ATS analysis findings as short, specific, encouraging suggestions.\n")
	sb.WriteString("Rules: keep every finding, do not invent new findings, one suggestion per finding, plain language.\n")
	sb.WriteString("Return a JSON array of strings and nothing else.\n\n")
	fmt.Fprintf(&sb, "Overall score: %d/100 (keywords %d, formatting %d, content %d)\n\n", score.OverallScore, score.KeywordScore, score.FormattingScore, score.ContentScore)
	sb.WriteString("Findings:\n")
	for _, s := range score.Suggestions {
		sb.WriteString("- ")
		sb.WriteString(s)
		sb.WriteString("\n")
	}
	return sb.String()
}

// PolishSuggestions asks the model to rewrite heuristic suggestions. On any
// failure the caller should keep the original suggestions; this function
// never returns a partially useful list alongside an error.
func PolishSuggestions(ctx context.Context, client Client, score types.ATSScore) ([]string, error) {
	if len(score.Suggestions) == 0 {
		return nil, fmt.Errorf("no suggestions to polish")
	}

	raw, err := client.GenerateJSON(ctx, BuildSuggestionPrompt(score), TierLite)
	if err != nil {
		return nil, err
	}

	var polished []string
	if err := json.Unmarshal([]byte(raw), &polished); err != nil {
		return nil, fmt.Errorf("failed to parse polished suggestions: %w (content: %s)", err, raw)
	}

	cleaned := make([]string, 0, len(polished))
	for _, s := range polished {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		cleaned = append(cleaned, s)
		if len(cleaned) == maxPolishedSuggestions {
			break
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("model returned no usable suggestions")
	}
	return cleaned, nil
}
