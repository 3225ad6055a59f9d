package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/careerengine/careerengine/internal/extractioncache"
)

// ExtractionCacheStore implements extractioncache.Store: Get is a plain
// SELECT and takes no row lock; INSERT...ON CONFLICT DO NOTHING on the
// unique key lets exactly one concurrent inserter claim a key and a
// losing one detect the race and retry its own lookup (§4.4, §6 (e)).
type ExtractionCacheStore struct{ db *sql.DB }

// NewExtractionCacheStore builds an ExtractionCacheStore.
func NewExtractionCacheStore(db *sql.DB) *ExtractionCacheStore {
	return &ExtractionCacheStore{db: db}
}

func (s *ExtractionCacheStore) Get(ctx context.Context, key extractioncache.Key) (*extractioncache.Row, bool, error) {
	var row extractioncache.Row
	var resultJSON, diagnostics []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT status, COALESCE(result_json, '{}'::jsonb), COALESCE(diagnostics, '{}'::jsonb)
		FROM extraction_cache
		WHERE doc_type = $1 AND text_sha256 = $2 AND extractor_version = $3
		  AND model_id = $4 AND prompt_version = $5`,
		key.DocType, key.TextSHA256, key.ExtractorVersion, key.ModelID, key.PromptVersion,
	).Scan(&row.Status, &resultJSON, &diagnostics)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: extraction cache get: %w", err)
	}
	row.ResultJSON = resultJSON
	row.Diagnostics = diagnostics
	return &row, true, nil
}

func (s *ExtractionCacheStore) TryInsertRunning(ctx context.Context, key extractioncache.Key) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO extraction_cache (doc_type, text_sha256, extractor_version, model_id, prompt_version, status)
		VALUES ($1, $2, $3, $4, $5, 'running')
		ON CONFLICT (doc_type, text_sha256, extractor_version, model_id, prompt_version) DO NOTHING`,
		key.DocType, key.TextSHA256, key.ExtractorVersion, key.ModelID, key.PromptVersion,
	)
	if err != nil {
		return false, fmt.Errorf("store: extraction cache insert: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("store: extraction cache rows affected: %w", err)
	}
	return affected == 1, nil
}

func (s *ExtractionCacheStore) MarkReady(ctx context.Context, key extractioncache.Key, resultJSON, diagnostics []byte) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE extraction_cache
		SET status = 'ready', result_json = $6, diagnostics = $7, updated_at = NOW()
		WHERE doc_type = $1 AND text_sha256 = $2 AND extractor_version = $3
		  AND model_id = $4 AND prompt_version = $5`,
		key.DocType, key.TextSHA256, key.ExtractorVersion, key.ModelID, key.PromptVersion,
		resultJSON, diagnostics,
	)
	if err != nil {
		return fmt.Errorf("store: extraction cache mark ready: %w", err)
	}
	return nil
}

func (s *ExtractionCacheStore) MarkFailed(ctx context.Context, key extractioncache.Key) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM extraction_cache
		WHERE doc_type = $1 AND text_sha256 = $2 AND extractor_version = $3
		  AND model_id = $4 AND prompt_version = $5 AND status = 'running'`,
		key.DocType, key.TextSHA256, key.ExtractorVersion, key.ModelID, key.PromptVersion,
	)
	if err != nil {
		return fmt.Errorf("store: extraction cache mark failed: %w", err)
	}
	return nil
}
