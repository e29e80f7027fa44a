package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ResumeScore is a stored scoring result for one resume. Exactly one row per
// resume is kept; re-analysis overwrites it.
type ResumeScore struct {
	ResumeID  uuid.UUID      `json:"resume_id"`
	UserID    uuid.UUID      `json:"user_id"`
	Score     types.ATSScore `json:"score"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// UpsertResumeScore stores a scoring result with latest-wins semantics.
func (db *DB) UpsertResumeScore(ctx context.Context, resumeID, userID uuid.UUID, score types.ATSScore) error {
	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_scores (resume_id, user_id, overall_score, score)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (resume_id) DO UPDATE SET user_id = $2, overall_score = $3, score = $4, updated_at = NOW()`,
		resumeID, userID, score.OverallScore, scoreJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume score: %w", err)
	}
	return nil
}

// GetResumeScore retrieves the stored score for a resume. Returns nil when
// the resume has never been analyzed.
func (db *DB) GetResumeScore(ctx context.Context, resumeID uuid.UUID) (*ResumeScore, error) {
	var stored ResumeScore
	var scoreJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT resume_id, user_id, score, updated_at
		 FROM resume_scores WHERE resume_id = $1`,
		resumeID,
	).Scan(&stored.ResumeID, &stored.UserID, &scoreJSON, &stored.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume score: %w", err)
	}

	if err := json.Unmarshal(scoreJSON, &stored.Score); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored score: %w", err)
	}
	return &stored, nil
}
