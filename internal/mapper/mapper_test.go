package mapper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerengine/careerengine/internal/config"
	"github.com/careerengine/careerengine/internal/skillmodel"
	"github.com/careerengine/careerengine/internal/taxonomy"
	"github.com/careerengine/careerengine/internal/vectorindex"
)

// fixedIndex returns a scripted set of hits regardless of the query text,
// optionally tracking how many times Query was called.
type fixedIndex struct {
	hits  []vectorindex.ScoredNode
	calls int
}

func (f *fixedIndex) Query(_ context.Context, _ string, k int, _ vectorindex.Filter) ([]vectorindex.ScoredNode, error) {
	f.calls++
	if k < len(f.hits) {
		return f.hits[:k], nil
	}
	return f.hits, nil
}

func node(id, name string, aliases ...string) *taxonomy.SkillNode {
	return &taxonomy.SkillNode{ID: id, CanonicalName: name, Aliases: aliases, Type: taxonomy.SkillTypeSkill}
}

func TestMapOne_AcceptsClearLeader(t *testing.T) {
	idx := &fixedIndex{hits: []vectorindex.ScoredNode{
		{Node: node("go-lang", "Go"), Score: 0.95},
		{Node: node("python", "Python"), Score: 0.40},
	}}
	m := New(idx, nil)
	cfg := config.Default()

	hit, diag, err := m.mapOne(context.Background(), "Go", taxonomy.SkillTypeSkill, skillmodel.SourceResume, "I write Go every day.", cfg)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "go-lang", hit.Node.ID)
	assert.False(t, diag.Unmapped)
	assert.Equal(t, 1, diag.Iterations, "only Go survives the literal guard, below MinHits, so exactly one increase_topk retry runs before Go is accepted")
}

func TestMapOne_BoundedRetries(t *testing.T) {
	// A single hit just above the resume floor sits below MinHits, so the
	// gate retries with a larger topk — verifies the loop still
	// terminates within the bound (P6: bounded work).
	idx := &fixedIndex{hits: []vectorindex.ScoredNode{
		{Node: node("skill-a", "Skill A"), Score: 0.31},
	}}
	m := New(idx, nil)
	cfg := config.Default()

	hit, diag, err := m.mapOne(context.Background(), "ambiguous token", taxonomy.SkillTypeSkill, skillmodel.SourceResume, "", cfg)
	require.NoError(t, err)
	assert.LessOrEqual(t, diag.Iterations, cfg.CRAG.MaxRetries+1)
	if hit != nil {
		assert.Equal(t, "skill-a", hit.Node.ID)
	}
}

func TestMapOne_IncreaseTopkFiresAtMostOnce(t *testing.T) {
	// Always below MinHits, so the gate would keep bumping topk on every
	// iteration without a fired-once guard (§4.5 gate table: each action
	// at most once per token).
	idx := &fixedIndex{hits: []vectorindex.ScoredNode{
		{Node: node("skill-a", "Skill A"), Score: 0.31},
	}}
	m := New(idx, nil)
	cfg := config.Default()

	_, diag, err := m.mapOne(context.Background(), "ambiguous token", taxonomy.SkillTypeSkill, skillmodel.SourceResume, "", cfg)
	require.NoError(t, err)

	increaseTopkCount := 0
	for _, a := range diag.Actions {
		if a.Action == "increase_topk" {
			increaseTopkCount++
		}
	}
	assert.LessOrEqual(t, increaseTopkCount, 1, "increase_topk must fire at most once per token")
}

func TestMapOne_LiteralGuardRejectsUnmentionedCandidate(t *testing.T) {
	idx := &fixedIndex{hits: []vectorindex.ScoredNode{
		{Node: node("rust", "Rust"), Score: 0.92},
	}}
	m := New(idx, nil)
	cfg := config.Default()
	cfg.MatchStrategy.LexicalGuard = true

	hit, diag, err := m.mapOne(context.Background(), "Rust", taxonomy.SkillTypeSkill, skillmodel.SourceResume, "Experienced with Go and Python.", cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, diag.AcceptedCount, "candidate never mentioned in source text should be rejected by the literal guard")
	_ = hit
}

func TestMapOne_LiteralGuardAcceptsMentionedCandidate(t *testing.T) {
	idx := &fixedIndex{hits: []vectorindex.ScoredNode{
		{Node: node("rust", "Rust"), Score: 0.92},
	}}
	m := New(idx, nil)
	cfg := config.Default()
	cfg.MatchStrategy.LexicalGuard = true

	hit, _, err := m.mapOne(context.Background(), "Rust", taxonomy.SkillTypeSkill, skillmodel.SourceResume, "Five years of Rust programming.", cfg)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "rust", hit.Node.ID)
}

func TestPassesLiteralGuard_WordBoundary(t *testing.T) {
	n := node("r-lang", "R")
	assert.False(t, passesLiteralGuard(n, "javascript developer"), "substring 'r' inside 'javascript' must not count")
	assert.True(t, passesLiteralGuard(n, "proficient in R programming"))
}

func TestPickBest_TieBreakByEditDistanceThenID(t *testing.T) {
	hits := []vectorindex.ScoredNode{
		{Node: node("b-skill", "Golang"), Score: 0.9},
		{Node: node("a-skill", "Go"), Score: 0.9},
	}
	best := pickBest(hits, "Go")
	assert.Equal(t, "a-skill", best.Node.ID, "exact name match should win the edit-distance tie-break")
}

func TestMapTokens_PopulatesDiagnosticsAndGateSummary(t *testing.T) {
	idx := &fixedIndex{hits: []vectorindex.ScoredNode{
		{Node: node("go-lang", "Go"), Score: 0.95},
	}}
	m := New(idx, nil)
	cfg := config.Default()

	skills := []skillmodel.ExtractedSkill{
		{SurfaceToken: "Go", Level: skillmodel.LevelSnapshot{Label: skillmodel.LevelProficient, Score: 3}},
	}
	mapped, err := m.MapTokens(context.Background(), skills, skillmodel.SourceResume, "Go developer.", cfg)
	require.NoError(t, err)
	require.Len(t, mapped, 1)
	assert.Equal(t, "go-lang", mapped[0].SkillID)
	require.NotNil(t, mapped[0].CandidateLevel)

	diag := m.GetLastMappingDiagnostics()
	assert.Equal(t, 1, diag.GateSummary.TotalTokens)
	assert.Contains(t, diag.SkillDiagnostics, "Go")
}

// erroringIndex always fails, simulating a tripped circuit breaker
// (vectorindex.RemoteIndex surfacing vectorindex.ErrUnavailable).
type erroringIndex struct{}

func (erroringIndex) Query(context.Context, string, int, vectorindex.Filter) ([]vectorindex.ScoredNode, error) {
	return nil, vectorindex.ErrUnavailable
}

func TestMapTokens_PropagatesVectorIndexUnavailable(t *testing.T) {
	m := New(erroringIndex{}, nil)
	cfg := config.Default()

	skills := []skillmodel.ExtractedSkill{
		{SurfaceToken: "Go", Level: skillmodel.LevelSnapshot{Label: skillmodel.LevelProficient, Score: 3}},
	}
	mapped, err := m.MapTokens(context.Background(), skills, skillmodel.SourceResume, "Go developer.", cfg)
	assert.Nil(t, mapped)
	assert.ErrorIs(t, err, vectorindex.ErrUnavailable, "a transient index fault must propagate, not fold into an unmapped token")
}
