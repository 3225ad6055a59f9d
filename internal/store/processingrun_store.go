package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// ProcessingRun is one row per analysis execution (§3). Created at the
// start of analysis; immutable after commit, except for the one
// post-mapping update that enriches it with the effective configuration.
type ProcessingRun struct {
	ID                 string
	UserID             string
	JobID              string
	ModelID            string
	EmbeddingModel     string
	CodeVersion        string
	TaxonomySnapshotTag string
	ConfigSnapshot     []byte // JSON, populated post-mapping
}

// ProcessingRunStore implements the ProcessingRun half of collaborator
// (e), §6.
type ProcessingRunStore struct{ db *sql.DB }

// NewProcessingRunStore builds a ProcessingRunStore.
func NewProcessingRunStore(db *sql.DB) *ProcessingRunStore {
	return &ProcessingRunStore{db: db}
}

// Create inserts a new ProcessingRun row, generating its ID client-side,
// and returns it.
func (s *ProcessingRunStore) Create(ctx context.Context, run ProcessingRun) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO processing_runs (id, user_id, job_id, model_id, embedding_model, code_version, taxonomy_snapshot_tag)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, run.UserID, run.JobID, run.ModelID, run.EmbeddingModel, run.CodeVersion, run.TaxonomySnapshotTag,
	)
	if err != nil {
		return "", fmt.Errorf("store: create processing run: %w", err)
	}
	return id, nil
}

// EnrichWithConfig attaches the effective configuration snapshot captured
// after the mapper stage runs (§3 lifecycle summary).
func (s *ProcessingRunStore) EnrichWithConfig(ctx context.Context, runID string, configSnapshot []byte) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE processing_runs SET config_snapshot = $2 WHERE id = $1`,
		runID, configSnapshot,
	)
	if err != nil {
		return fmt.Errorf("store: enrich processing run: %w", err)
	}
	return nil
}
