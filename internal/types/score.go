package types

// ATSScore is the result of scoring one resume against ATS heuristics.
// All scores are integers in [0, 100]. Persisted one-per-resume with
// latest-wins upsert semantics; the scorer itself never touches storage.
type ATSScore struct {
	OverallScore    int      `json:"overall_score"`
	KeywordScore    int      `json:"keyword_score"`
	FormattingScore int      `json:"formatting_score"`
	ContentScore    int      `json:"content_score"`
	Suggestions     []string `json:"suggestions"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}
