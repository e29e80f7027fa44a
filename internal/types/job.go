package types

// Job is a job posting supplied by the external job-search collaborator.
// The shape mirrors the search API's fixed response format; the matcher
// treats it as read-only.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Salary       *float64 `json:"salary,omitempty"`
	PostedDate   string   `json:"posted_date,omitempty"`
	ContractType string   `json:"contract_type,omitempty"`
	URL          string   `json:"url,omitempty"`
	Category     string   `json:"category,omitempty"`
}

// JobMatch pairs a job with its computed compatibility against one resume.
type JobMatch struct {
	Job             Job      `json:"job"`
	MatchScore      int      `json:"match_score"`
	MatchReasons    []string `json:"match_reasons"`
	KeywordMatches  []string `json:"keyword_matches"`
	MissingKeywords []string `json:"missing_keywords"`
}

// ResumeProfile is the matcher's view of a resume: the free-text fields the
// keyword extractor tokenizes, location hints, and an optional previously
// computed ATS overall score used as a bonus term.
type ResumeProfile struct {
	Skills    string `json:"skills,omitempty"`
	Languages string `json:"languages,omitempty"`
	Strengths string `json:"strengths,omitempty"`
	Summary   string `json:"summary,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	ATSScore  *int   `json:"ats_score,omitempty"`
}
