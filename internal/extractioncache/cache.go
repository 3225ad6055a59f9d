// Package extractioncache implements the ExtractionCache component (§4.4):
// content-hash-keyed memoization of extraction output, idempotent and
// concurrency-safe. In-process collapsing of identical concurrent calls
// uses golang.org/x/sync/singleflight; across processes, the Store's
// insert-if-absent on the unique key lets exactly one caller claim a
// key. No row lock is held while a compute runs.
package extractioncache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/careerengine/careerengine/internal/apperrors"
	"github.com/careerengine/careerengine/internal/clock"
)

// Status is the ExtractionCache row's lifecycle state (§3).
type Status string

const (
	StatusRunning Status = "running"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// DocType distinguishes which kind of document was extracted.
type DocType string

const (
	DocResume DocType = "resume"
	DocJD     DocType = "jd"
)

// Key is the unique ExtractionCache key tuple (§3, §4.4).
type Key struct {
	DocType          DocType
	TextSHA256       string
	ExtractorVersion string
	ModelID          string
	PromptVersion    string
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s:%s:%s", k.DocType, k.TextSHA256, k.ExtractorVersion, k.ModelID, k.PromptVersion)
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize lowercases, trims, and collapses runs of whitespace, without
// touching semantically significant punctuation (§4.4).
func Normalize(text string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(strings.ToLower(text)), " ")
}

// NewKey computes the content-hash key for a document.
func NewKey(docType DocType, text, extractorVersion, modelID, promptVersion string) Key {
	sum := sha256.Sum256([]byte(Normalize(text)))
	return Key{
		DocType:          docType,
		TextSHA256:       hex.EncodeToString(sum[:]),
		ExtractorVersion: extractorVersion,
		ModelID:          modelID,
		PromptVersion:    promptVersion,
	}
}

// Row is one ExtractionCache record.
type Row struct {
	Status      Status
	ResultJSON  []byte
	Diagnostics []byte
}

// Store is the persistence collaborator's ExtractionCache surface
// (external interface (e), §6). Cross-process exclusion rests on
// TryInsertRunning: for a given key at most one caller gets inserted ==
// true while the row exists.
type Store interface {
	Get(ctx context.Context, key Key) (*Row, bool, error)
	TryInsertRunning(ctx context.Context, key Key) (inserted bool, err error)
	MarkReady(ctx context.Context, key Key, resultJSON, diagnostics []byte) error
	MarkFailed(ctx context.Context, key Key) error
}

// ComputeFunc runs the actual extraction; its result is what gets cached.
type ComputeFunc func(ctx context.Context) (resultJSON, diagnostics []byte, err error)

// Cache implements get_or_compute (§4.4).
type Cache struct {
	store      Store
	group      singleflight.Group
	joinWindow time.Duration
	clock      clock.Clock
}

// New builds a Cache. joinWindow is the short wait (recommended 2-3s, §4.4
// step 3) applied when a concurrent compute is already running.
func New(store Store, joinWindow time.Duration, clk clock.Clock) *Cache {
	if joinWindow <= 0 {
		joinWindow = 2500 * time.Millisecond
	}
	return &Cache{store: store, joinWindow: joinWindow, clock: clk}
}

// GetOrCompute implements §4.4's algorithm. At most one compute is ever in
// flight for a given key at any moment (§4.4 invariant, §8 P1): the
// in-process singleflight.Group collapses concurrent callers within this
// process, and the Store's TryInsertRunning lets only one caller claim the
// key across processes.
func (c *Cache) GetOrCompute(ctx context.Context, key Key, compute ComputeFunc) ([]byte, error) {
	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		return c.getOrComputeLocked(ctx, key, compute)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

const maxRaceRetries = 5

func (c *Cache) getOrComputeLocked(ctx context.Context, key Key, compute ComputeFunc) ([]byte, error) {
	for attempt := 0; attempt < maxRaceRetries; attempt++ {
		row, found, err := c.store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("%w: cache lookup: %v", apperrors.ErrPersistenceFailed, err)
		}

		if found {
			switch row.Status {
			case StatusReady:
				return row.ResultJSON, nil
			case StatusRunning:
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(c.joinWindow):
				}
				row, found, err = c.store.Get(ctx, key)
				if err != nil {
					return nil, fmt.Errorf("%w: cache re-read: %v", apperrors.ErrPersistenceFailed, err)
				}
				if found && row.Status == StatusReady {
					return row.ResultJSON, nil
				}
				return nil, apperrors.ErrExtractionPending
			case StatusFailed:
				// fall through to re-attempt: treat as missing
			}
		}

		inserted, err := c.store.TryInsertRunning(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("%w: cache insert: %v", apperrors.ErrPersistenceFailed, err)
		}
		if !inserted {
			continue // another thread raced us; restart from the lookup
		}

		result, diagnostics, computeErr := compute(ctx)
		if computeErr != nil {
			if err := c.store.MarkFailed(ctx, key); err != nil {
				return nil, fmt.Errorf("%w: mark failed: %v", apperrors.ErrPersistenceFailed, err)
			}
			return nil, computeErr
		}
		if err := c.store.MarkReady(ctx, key, result, diagnostics); err != nil {
			return nil, fmt.Errorf("%w: mark ready: %v", apperrors.ErrPersistenceFailed, err)
		}
		return result, nil
	}
	return nil, fmt.Errorf("%w: exhausted race retries for key %s", apperrors.ErrPersistenceFailed, key)
}
