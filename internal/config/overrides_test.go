package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithOverrides_UnknownKeyIgnored(t *testing.T) {
	base := Default()
	next, err := base.WithOverrides(map[string]any{"nonsense.key": 42})
	require.NoError(t, err)
	assert.Equal(t, base, next)
}

func TestWithOverrides_TypeMismatchReturnsInvalidOverride(t *testing.T) {
	base := Default()
	_, err := base.WithOverrides(map[string]any{"match_strategy.topk": "not-a-number"})
	require.Error(t, err)
	var invalid *InvalidOverride
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "match_strategy.topk", invalid.Key)
}

func TestWithOverrides_DoesNotMutateReceiver(t *testing.T) {
	base := Default()
	_, err := base.WithOverrides(map[string]any{"match_strategy.topk": 18})
	require.NoError(t, err)
	assert.Equal(t, 10, base.MatchStrategy.TopK, "base config must remain unchanged")
}

func TestWithOverrides_AppliesRecognizedKeys(t *testing.T) {
	base := Default()
	next, err := base.WithOverrides(map[string]any{
		"match_strategy.strategy": "static",
		"score_weights.level_grace": 0.5,
		"extraction.mode": "current",
	})
	require.NoError(t, err)
	assert.Equal(t, "static", next.MatchStrategy.Strategy)
	assert.Equal(t, 0.5, next.ScoreWeights.LevelGrace)
	assert.Equal(t, "current", next.Extraction.Mode)
}
