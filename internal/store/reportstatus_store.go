package store

import (
	"context"
	"database/sql"
	"fmt"
)

// ReportStatusPhase is the two-state lifecycle of a ReportStatus row (§3).
type ReportStatusPhase string

const (
	ReportStatusGenerating ReportStatusPhase = "generating"
	ReportStatusReady      ReportStatusPhase = "ready"
)

// ReportStatusStore upserts the per-(user, job) ReportStatus row (§3, §6
// (e)). The transition to ready MUST happen after the GapAnalysisResult
// commit (§5 ordering guarantee); callers are responsible for sequencing
// these calls correctly.
type ReportStatusStore struct{ db *sql.DB }

// NewReportStatusStore builds a ReportStatusStore.
func NewReportStatusStore(db *sql.DB) *ReportStatusStore {
	return &ReportStatusStore{db: db}
}

// SetGenerating upserts the row to "generating", called at submission.
func (s *ReportStatusStore) SetGenerating(ctx context.Context, userID, jobID string) error {
	return s.upsert(ctx, userID, jobID, ReportStatusGenerating)
}

// SetReady upserts the row to "ready", called after the GapAnalysisResult
// commit succeeds.
func (s *ReportStatusStore) SetReady(ctx context.Context, userID, jobID string) error {
	return s.upsert(ctx, userID, jobID, ReportStatusReady)
}

// Clear removes the status row on analysis failure (§7 propagation
// policy: "the orchestrator captures and clears ReportStatus").
func (s *ReportStatusStore) Clear(ctx context.Context, userID, jobID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM report_status WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return fmt.Errorf("store: clear report status: %w", err)
	}
	return nil
}

func (s *ReportStatusStore) upsert(ctx context.Context, userID, jobID string, phase ReportStatusPhase) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO report_status (user_id, job_id, status, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, job_id) DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()`,
		userID, jobID, string(phase),
	)
	if err != nil {
		return fmt.Errorf("store: upsert report status: %w", err)
	}
	return nil
}

// Get returns the current phase for (userID, jobID), or false if absent.
func (s *ReportStatusStore) Get(ctx context.Context, userID, jobID string) (ReportStatusPhase, bool, error) {
	var phase string
	err := s.db.QueryRowContext(ctx, `
		SELECT status FROM report_status WHERE user_id = $1 AND job_id = $2`, userID, jobID,
	).Scan(&phase)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: get report status: %w", err)
	}
	return ReportStatusPhase(phase), true, nil
}
