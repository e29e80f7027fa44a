package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest is the JSON body for resume analysis when the caller sends
// raw text instead of an uploaded file. JobDescription is optional; when set,
// the keyword sub-score targets terms found in it.
type AnalyzeRequest struct {
	Text           string `json:"text" validate:"required,min=1"`
	JobDescription string `json:"job_description,omitempty"`
}

// MatchRequest is the JSON body for job matching. Jobs may be supplied inline;
// otherwise Search drives a job-search API call.
type MatchRequest struct {
	Profile ResumeProfile    `json:"profile" validate:"required"`
	Jobs    []Job            `json:"jobs,omitempty"`
	Search  *JobSearchParams `json:"search,omitempty"`
}

// JobSearchParams are the query parameters forwarded to the job-search API.
type JobSearchParams struct {
	Query    string `json:"query" validate:"required,min=1"`
	Location string `json:"location,omitempty"`
	Pages    int    `json:"pages,omitempty" validate:"omitempty,min=1,max=5"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Search != nil {
		return validate.Struct(r.Search)
	}
	return nil
}
