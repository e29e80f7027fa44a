package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/jobsearch"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/server/middleware"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxUploadSize bounds resume uploads (10 MB).
const maxUploadSize = 10 << 20

// maxReturnedMatches bounds the match list in responses.
const maxReturnedMatches = 20

// maxRecommendations bounds the highlighted top matches.
const maxRecommendations = 3

// AnalyzeResponse is the response for POST /resumes/{id}/analyze.
type AnalyzeResponse struct {
	ResumeID uuid.UUID      `json:"resume_id"`
	Score    types.ATSScore    `json:"score"`
	Sections []string          `json:"sections"`
	Contact  types.ContactInfo `json:"contact"`
}

// MatchResponse is the response for POST /resumes/{id}/matches.
type MatchResponse struct {
	ResumeID        uuid.UUID        `json:"resume_id"`
	Matches         []types.JobMatch `json:"matches"`
	Recommendations []types.JobMatch `json:"recommendations"`
	Message         string           `json:"message,omitempty"`
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleAnalyzeResume handles POST /resumes/{id}/analyze. The resume arrives
// either as a multipart upload (field "resume", optional "job_description")
// or as a JSON body with raw text.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	resumeID, ok := parseResumeID(w, r)
	if !ok {
		return
	}
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}

	text, jobDescription, ok := s.readResumeText(w, r)
	if !ok {
		return
	}

	parsed := parsing.Parse(parsing.CleanText(text), s.vocabulary)
	score := scoring.Score(parsed, jobDescription, s.vocabulary)

	if s.llmClient != nil {
		polished, err := llm.PolishSuggestions(r.Context(), s.llmClient, score)
		if err != nil {
			// Heuristic suggestions are already usable; polish is best effort.
			log.Printf("suggestion polish failed: %v", err)
		} else {
			score.Suggestions = polished
		}
	}

	if err := s.scores.UpsertResumeScore(r.Context(), resumeID, userID, score); err != nil {
		log.Printf("failed to store score for resume %s: %v", resumeID, err)
		errorResponse(w, http.StatusInternalServerError, "failed to store analysis result")
		return
	}

	sections := make([]string, 0, len(parsed.Sections))
	for _, section := range parsed.Sections {
		sections = append(sections, string(section.Kind))
	}

	jsonResponse(w, http.StatusOK, AnalyzeResponse{
		ResumeID: resumeID,
		Score:    score,
		Sections: sections,
		Contact:  parsed.Contact,
	})
}

// readResumeText extracts the resume text and optional job description from
// the request. Writes an error response and returns ok=false on failure.
func (s *Server) readResumeText(w http.ResponseWriter, r *http.Request) (text, jobDescription string, ok bool) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			errorResponse(w, http.StatusBadRequest, "invalid multipart form")
			return "", "", false
		}

		file, header, err := r.FormFile("resume")
		if err != nil {
			errorResponse(w, http.StatusBadRequest, "resume file is required")
			return "", "", false
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
		if err != nil {
			errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
			return "", "", false
		}

		text, err = extract.Text(data, extract.DetectFormat(header.Filename))
		if err != nil {
			var unsupported *extract.UnsupportedFormatError
			if errors.As(err, &unsupported) {
				errorResponse(w, http.StatusBadRequest, unsupported.Error())
				return "", "", false
			}
			var extraction *extract.ExtractionError
			if errors.As(err, &extraction) {
				errorResponse(w, http.StatusUnprocessableEntity, extraction.Error())
				return "", "", false
			}
			errorResponse(w, http.StatusInternalServerError, "failed to extract resume text")
			return "", "", false
		}

		return text, r.FormValue("job_description"), true
	}

	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return "", "", false
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return "", "", false
	}
	return req.Text, req.JobDescription, true
}

// handleGetResumeScore handles GET /resumes/{id}/score.
func (s *Server) handleGetResumeScore(w http.ResponseWriter, r *http.Request) {
	resumeID, ok := parseResumeID(w, r)
	if !ok {
		return
	}

	stored, err := s.scores.GetResumeScore(r.Context(), resumeID)
	if err != nil {
		log.Printf("failed to load score for resume %s: %v", resumeID, err)
		errorResponse(w, http.StatusInternalServerError, "failed to load stored score")
		return
	}
	if stored == nil {
		errorResponse(w, http.StatusNotFound, ErrResumeNotAnalyzed.Error())
		return
	}

	jsonResponse(w, http.StatusOK, stored)
}

// handleMatchJobs handles POST /resumes/{id}/matches. Jobs come inline or
// from the upstream job-search API; an upstream outage degrades to an empty
// match list rather than an error.
func (s *Server) handleMatchJobs(w http.ResponseWriter, r *http.Request) {
	resumeID, ok := parseResumeID(w, r)
	if !ok {
		return
	}

	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	jobs := req.Jobs
	if len(jobs) == 0 {
		if req.Search == nil {
			errorResponse(w, http.StatusBadRequest, "either jobs or search parameters must be provided")
			return
		}
		if s.jobs == nil {
			errorResponse(w, http.StatusServiceUnavailable, "job search is not configured")
			return
		}

		var err error
		jobs, err = s.jobs.Search(r.Context(), *req.Search)
		if err != nil {
			var upstream *jobsearch.UpstreamError
			if errors.As(err, &upstream) {
				log.Printf("job search failed for resume %s: %v", resumeID, err)
				jsonResponse(w, http.StatusOK, MatchResponse{
					ResumeID:        resumeID,
					Matches:         []types.JobMatch{},
					Recommendations: []types.JobMatch{},
					Message:         "job search is temporarily unavailable; please retry later",
				})
				return
			}
			errorResponse(w, http.StatusInternalServerError, "job search failed")
			return
		}
	}

	matches := matching.MatchResumeToJobs(req.Profile, jobs, s.vocabulary)
	if len(matches) > maxReturnedMatches {
		matches = matches[:maxReturnedMatches]
	}

	recommendations := matches
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	if err := s.scores.ReplaceJobMatches(r.Context(), resumeID, matches); err != nil {
		log.Printf("failed to store matches for resume %s: %v", resumeID, err)
		errorResponse(w, http.StatusInternalServerError, "failed to store match results")
		return
	}

	jsonResponse(w, http.StatusOK, MatchResponse{
		ResumeID:        resumeID,
		Matches:         matches,
		Recommendations: recommendations,
	})
}

// parseResumeID parses the {id} path segment as a UUID. Writes an error
// response and returns ok=false on failure.
func parseResumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return uuid.Nil, false
	}
	return resumeID, true
}

// authenticatedUserID reads the user ID set by the auth middleware.
func authenticatedUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		errorResponse(w, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	return userID, true
}
