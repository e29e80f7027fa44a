package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ReplaceJobMatches stores the latest match run for a resume, replacing any
// previous run inside one transaction so readers never see a mixed set.
func (db *DB) ReplaceJobMatches(ctx context.Context, resumeID uuid.UUID, matches []types.JobMatch) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM job_matches WHERE resume_id = $1`, resumeID); err != nil {
		return fmt.Errorf("failed to clear previous matches: %w", err)
	}

	for rank, match := range matches {
		matchJSON, err := json.Marshal(match)
		if err != nil {
			return fmt.Errorf("failed to marshal match: %w", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO job_matches (resume_id, job_id, rank, match_score, match)
			 VALUES ($1, $2, $3, $4, $5)`,
			resumeID, match.Job.ID, rank+1, match.MatchScore, matchJSON,
		)
		if err != nil {
			return fmt.Errorf("failed to save match for job %s: %w", match.Job.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit matches: %w", err)
	}
	return nil
}

// ListJobMatches retrieves the stored matches for a resume in rank order.
func (db *DB) ListJobMatches(ctx context.Context, resumeID uuid.UUID, limit int) ([]types.JobMatch, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT match FROM job_matches
		 WHERE resume_id = $1 ORDER BY rank ASC LIMIT $2`,
		resumeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []types.JobMatch
	for rows.Next() {
		var matchJSON []byte
		if err := rows.Scan(&matchJSON); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		var match types.JobMatch
		if err := json.Unmarshal(matchJSON, &match); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored match: %w", err)
		}
		matches = append(matches, match)
	}
	return matches, nil
}
