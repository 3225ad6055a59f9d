package extractor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordExtractor_FindsKnownSkillsWithDefaultLevel(t *testing.T) {
	k := NewKeywordExtractor()
	out, err := k.Extract(context.Background(), "5 years of Python; built React apps.", false)
	require.NoError(t, err)

	byToken := map[string]bool{}
	for _, s := range out.Skills {
		byToken[s.SurfaceToken] = true
		assert.LessOrEqual(t, s.Level.Confidence, 0.5)
		assert.Empty(t, s.Evidence, "test mode must produce no evidence spans")
	}
	assert.True(t, byToken["python"])
	assert.True(t, byToken["react"])
}

func TestKeywordExtractor_MarksNiceToHaveOnJobDescriptions(t *testing.T) {
	k := NewKeywordExtractor()
	out, err := k.Extract(context.Background(), "Required: Python. Nice to have: Kubernetes experience.", true)
	require.NoError(t, err)

	var sawKubernetes bool
	for _, s := range out.Skills {
		if s.SurfaceToken == "kubernetes" {
			sawKubernetes = true
			assert.True(t, s.NiceToHave)
		}
		if s.SurfaceToken == "python" {
			assert.False(t, s.NiceToHave)
		}
	}
	assert.True(t, sawKubernetes)
}

func TestKeywordExtractor_IgnoresSkillWordsInsideLargerWords(t *testing.T) {
	k := NewKeywordExtractor()
	out, err := k.Extract(context.Background(), "Javascript and JavaScript frameworks only, no r involved really.", false)
	require.NoError(t, err)
	for _, s := range out.Skills {
		assert.NotEqual(t, "r", s.SurfaceToken, "bare 'r' must not match inside 'really'")
	}
}
