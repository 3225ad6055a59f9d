package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/careerengine/careerengine/internal/skillmodel"
)

// ResultStore persists GapAnalysisResult rows in the dual-format §6 (e)
// requires: legacy list columns for callers that haven't migrated to the
// canonical blob, plus the canonical analysis_json + analysis_version.
type ResultStore struct{ db *sql.DB }

// NewResultStore builds a ResultStore.
func NewResultStore(db *sql.DB) *ResultStore { return &ResultStore{db: db} }

// Insert persists result under the given processing run, returning the
// generated row ID. GapAnalysisResult rows are created once and never
// mutated (§3 lifecycle summary).
func (s *ResultStore) Insert(ctx context.Context, processingRunID string, result skillmodel.GapAnalysisResult) (string, error) {
	canonical, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("store: marshal canonical result: %w", err)
	}
	matched, err := json.Marshal(result.MatchedSkills)
	if err != nil {
		return "", fmt.Errorf("store: marshal matched skills: %w", err)
	}
	missing, err := json.Marshal(result.MissingSkills)
	if err != nil {
		return "", fmt.Errorf("store: marshal missing skills: %w", err)
	}
	resumeSkills, err := json.Marshal(result.ResumeSkills)
	if err != nil {
		return "", fmt.Errorf("store: marshal resume skills: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO gap_analysis_results (
			id, processing_run_id, resume_id, job_id, score,
			matched_skills, missing_skills, resume_skills,
			analysis_json, analysis_version, markdown_report
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		id, processingRunID, result.Context.ResumeID, result.Context.JobID, result.Metrics.Score,
		matched, missing, resumeSkills,
		canonical, result.Version, result.MarkdownReport,
	)
	if err != nil {
		return "", fmt.Errorf("store: insert gap analysis result: %w", err)
	}
	return id, nil
}

// GetByID reloads the canonical result by its row ID, used for P8
// version-stability round-trip checks.
func (s *ResultStore) GetByID(ctx context.Context, id string) (*skillmodel.GapAnalysisResult, error) {
	var canonical []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT analysis_json FROM gap_analysis_results WHERE id = $1`, id,
	).Scan(&canonical)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get gap analysis result: %w", err)
	}
	var result skillmodel.GapAnalysisResult
	if err := json.Unmarshal(canonical, &result); err != nil {
		return nil, fmt.Errorf("store: unmarshal canonical result: %w", err)
	}
	return &result, nil
}
