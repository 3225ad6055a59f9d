package extractioncache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerengine/careerengine/internal/apperrors"
	"github.com/careerengine/careerengine/internal/clock"
)

type memoryStore struct {
	mu   sync.Mutex
	rows map[string]*Row
}

func newMemoryStore() *memoryStore { return &memoryStore{rows: map[string]*Row{}} }

func (m *memoryStore) Get(_ context.Context, key Key) (*Row, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[key.String()]
	if !ok {
		return nil, false, nil
	}
	cp := *row
	return &cp, true, nil
}

func (m *memoryStore) TryInsertRunning(_ context.Context, key Key) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.rows[key.String()]; exists {
		return false, nil
	}
	m.rows[key.String()] = &Row{Status: StatusRunning}
	return true, nil
}

func (m *memoryStore) MarkReady(_ context.Context, key Key, resultJSON, diagnostics []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[key.String()] = &Row{Status: StatusReady, ResultJSON: resultJSON, Diagnostics: diagnostics}
	return nil
}

func (m *memoryStore) MarkFailed(_ context.Context, key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, key.String())
	return nil
}

func TestGetOrCompute_ComputesOnceForConcurrentCallers(t *testing.T) {
	store := newMemoryStore()
	cache := New(store, 50*time.Millisecond, clock.Real{})

	var invocations int64
	compute := func(ctx context.Context) ([]byte, []byte, error) {
		atomic.AddInt64(&invocations, 1)
		time.Sleep(20 * time.Millisecond)
		return []byte(`{"skills":[]}`), nil, nil
	}

	key := NewKey(DocResume, "Five years of Python.", "1", "claude", "1")

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := cache.GetOrCompute(context.Background(), key, compute)
			require.NoError(t, err)
			results[i] = out
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), invocations, "exactly one compute invocation for concurrent identical requests")
	for _, r := range results {
		assert.Equal(t, `{"skills":[]}`, string(r))
	}
}

func TestGetOrCompute_ReturnsPendingWhenRunningBeyondJoinWindow(t *testing.T) {
	store := newMemoryStore()
	_, _ = store.TryInsertRunning(context.Background(), Key{DocType: DocJD, TextSHA256: "x"})
	cache := New(store, 10*time.Millisecond, clock.Real{})

	_, err := cache.GetOrCompute(context.Background(), Key{DocType: DocJD, TextSHA256: "x"}, func(ctx context.Context) ([]byte, []byte, error) {
		t.Fatal("compute must not run when another row is already running")
		return nil, nil, nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrExtractionPending))
}

func TestGetOrCompute_PropagatesComputeFailureAndMarksFailed(t *testing.T) {
	store := newMemoryStore()
	cache := New(store, 10*time.Millisecond, clock.Real{})
	key := NewKey(DocResume, "text", "1", "m", "1")

	wantErr := errors.New("llm exploded")
	_, err := cache.GetOrCompute(context.Background(), key, func(ctx context.Context) ([]byte, []byte, error) {
		return nil, nil, wantErr
	})
	require.ErrorIs(t, err, wantErr)

	row, found, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, found, "failed rows are removed so a later call re-attempts")
	_ = row
}
