// Package mapper implements the Mapper component (§4.5): taxonomy mapping
// of extracted skill/task tokens via vector nearest-neighbor search under
// the adaptive "CRAG-style" confidence gate. The literal-text guard reuses
// internal/taxonomy's normalization and edit-distance helpers so both
// packages fold text identically.
package mapper

import (
	"context"
	"sort"
	"sync"

	"github.com/careerengine/careerengine/internal/config"
	"github.com/careerengine/careerengine/internal/skillmodel"
	"github.com/careerengine/careerengine/internal/taxonomy"
	"github.com/careerengine/careerengine/internal/vectorindex"
)

// Mapper maps ExtractedSkills onto taxonomy nodes.
type Mapper struct {
	index vectorindex.Index
	tax   *taxonomy.Taxonomy

	mu       sync.Mutex
	lastDiag skillmodel.Diagnostics
}

// New builds a Mapper over the given vector index and taxonomy.
func New(index vectorindex.Index, tax *taxonomy.Taxonomy) *Mapper {
	return &Mapper{index: index, tax: tax}
}

// recipe identifies which retrieval approach a per-token attempt used;
// "task_first" is the one named switch target in §4.5 step 6.
type recipe string

const (
	recipeDefault   recipe = "default"
	recipeTaskFirst recipe = "task_first"
)

// perTokenState threads the gate's mutable retry state through the
// bounded loop described in §4.5 step 6 — each action field may fire at
// most once per token.
type perTokenState struct {
	topk           int
	floor          float64
	topkIncreased  bool
	recipeSwitched bool
	recipe         recipe
	floorNudges    int
}

// MapTokens maps non-task extracted skills (§4.5 map_tokens). A transient
// vector-index fault aborts the call and returns vectorindex.ErrUnavailable
// rather than folding it into an ordinary unmapped token.
func (m *Mapper) MapTokens(ctx context.Context, skills []skillmodel.ExtractedSkill, source skillmodel.SourceType, sourceText string, cfg config.Config) ([]skillmodel.MappedSkill, error) {
	return m.mapAll(ctx, skills, taxonomy.SkillTypeSkill, source, sourceText, cfg)
}

// MapTasks maps task-type extracted items (§4.5 map_tasks). Same fault
// semantics as MapTokens.
func (m *Mapper) MapTasks(ctx context.Context, skills []skillmodel.ExtractedSkill, source skillmodel.SourceType, sourceText string, cfg config.Config) ([]skillmodel.MappedSkill, error) {
	return m.mapAll(ctx, skills, taxonomy.SkillTypeTask, source, sourceText, cfg)
}

// GetLastMappingDiagnostics returns the Diagnostics assembled by the most
// recent mapAll call (§4.5 get_last_mapping_diagnostics).
func (m *Mapper) GetLastMappingDiagnostics() skillmodel.Diagnostics {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastDiag
}

func (m *Mapper) mapAll(ctx context.Context, skills []skillmodel.ExtractedSkill, skillType taxonomy.SkillType, source skillmodel.SourceType, sourceText string, cfg config.Config) ([]skillmodel.MappedSkill, error) {
	var mapped []skillmodel.MappedSkill
	tokenDiags := make(map[string]skillmodel.TokenDiagnostics, len(skills))
	summary := skillmodel.GateSummary{TotalTokens: len(skills)}

	for _, es := range skills {
		hit, diag, err := m.mapOne(ctx, es.SurfaceToken, skillType, source, sourceText, cfg)
		if err != nil {
			m.mu.Lock()
			m.lastDiag = skillmodel.Diagnostics{
				SkillDiagnostics: tokenDiags,
				GateSummary:      summary,
				CutoffStrategy:   cfg.MatchStrategy.Strategy,
			}
			m.mu.Unlock()
			return nil, err
		}
		tokenDiags[es.SurfaceToken] = diag
		for _, a := range diag.Actions {
			switch a.Action {
			case "increase_topk":
				summary.TopkBumps++
			case "switch_recipe":
				summary.RecipeSwitches++
			case "nudge_floor":
				summary.FloorNudges++
			case "conservative_fallback":
				summary.ConservativeFallbacks++
			}
		}
		if hit == nil {
			summary.UnmappedTokens++
			continue
		}

		level := es.Level
		ms := skillmodel.MappedSkill{
			SkillID:       hit.Node.ID,
			CanonicalName: hit.Node.CanonicalName,
			SkillType:     string(hit.Node.EffectiveType()),
			SurfaceToken:  es.SurfaceToken,
			Similarity:    hit.Score,
			Source:        source,
			HotTech:       hit.Node.HotTech,
			InDemand:      hit.Node.InDemand,
		}
		if source == skillmodel.SourceJD {
			ms.RequiredLevel = &level
		} else {
			ms.CandidateLevel = &level
		}
		mapped = append(mapped, ms)
	}

	m.mu.Lock()
	m.lastDiag = skillmodel.Diagnostics{
		SkillDiagnostics: tokenDiags,
		GateSummary:      summary,
		CutoffStrategy:   cfg.MatchStrategy.Strategy,
	}
	m.mu.Unlock()

	return mapped, nil
}

// floorAndQFor returns the source-type-specific floor/quantile defaults
// named in §4.5 step 2.
func floorAndQFor(skillType taxonomy.SkillType, source skillmodel.SourceType, cfg config.Config) (floor, q float64) {
	if skillType == taxonomy.SkillTypeTask {
		return cfg.MatchStrategy.TaskFloor, cfg.MatchStrategy.TaskQ
	}
	if source == skillmodel.SourceJD {
		return cfg.MatchStrategy.JDFloor, cfg.MatchStrategy.JDQ
	}
	return cfg.MatchStrategy.ResumeFloor, cfg.MatchStrategy.ResumeQ
}

// mapOne runs the full per-token CRAG-gated retrieval loop (§4.5 steps
// 1-6) for a single token. A vector-index fault (e.g. vectorindex.ErrUnavailable
// from a tripped circuit breaker) is returned as an error and is never
// folded into diag.Unmapped — the two conditions must stay distinguishable
// so a transient outage can propagate as a fault instead of a silent miss.
func (m *Mapper) mapOne(ctx context.Context, token string, skillType taxonomy.SkillType, source skillmodel.SourceType, sourceText string, cfg config.Config) (*vectorindex.ScoredNode, skillmodel.TokenDiagnostics, error) {
	floor, q := floorAndQFor(skillType, source, cfg)

	state := &perTokenState{
		topk:   cfg.MatchStrategy.TopK,
		floor:  floor,
		recipe: recipeDefault,
	}

	diag := skillmodel.TokenDiagnostics{Token: token}

	var accepted []vectorindex.ScoredNode
	var iterations int

	for iterations = 0; iterations <= cfg.CRAG.MaxRetries; iterations++ {
		queryType := skillType
		if state.recipe == recipeTaskFirst {
			queryType = taxonomy.SkillTypeTask
		}

		hits, err := m.index.Query(ctx, token, state.topk, vectorindex.Filter{SkillType: queryType})
		if err != nil {
			return nil, diag, err
		}

		cutoff := cutoffFor(cfg.MatchStrategy.Strategy, hits, state.floor, q)

		var kept []vectorindex.ScoredNode
		rejectedByGuard := 0
		for _, h := range hits {
			if h.Score < cutoff {
				continue
			}
			if cfg.MatchStrategy.LexicalGuard && !passesLiteralGuard(h.Node, sourceText) {
				rejectedByGuard++
				continue
			}
			kept = append(kept, h)
		}
		accepted = kept

		acceptedCount := len(kept)
		margin := topMargin(kept)
		totalConsidered := acceptedCount + rejectedByGuard
		literalRejectRate := 0.0
		if totalConsidered > 0 {
			literalRejectRate = float64(rejectedByGuard) / float64(totalConsidered)
		}

		diag.AcceptedCount = acceptedCount
		diag.Margin = margin
		diag.LiteralRejectRate = literalRejectRate

		if acceptedCount < cfg.CRAG.MinHits && state.topk < cfg.CRAG.MaxTopK && !state.topkIncreased {
			bumped := state.topk + cfg.CRAG.BumpTopKBy
			if bumped > cfg.CRAG.MaxTopK {
				bumped = cfg.CRAG.MaxTopK
			}
			if bumped != state.topk {
				state.topkIncreased = true
				diag.Actions = append(diag.Actions, skillmodel.GateAction{Action: "increase_topk", TopkIncreasedBy: bumped - state.topk})
				state.topk = bumped
				continue
			}
		}

		if margin < cfg.CRAG.MinMargin && cfg.CRAG.AllowRecipeSwitch && !state.recipeSwitched && skillType == taxonomy.SkillTypeSkill {
			state.recipeSwitched = true
			state.recipe = recipeTaskFirst
			diag.Actions = append(diag.Actions, skillmodel.GateAction{Action: "switch_recipe", Recipe: string(recipeTaskFirst)})
			continue
		}

		if literalRejectRate > 0.5 && state.floorNudges < 1 {
			state.floorNudges++
			nudged := state.floor - 0.05
			if nudged < 0 {
				nudged = 0
			}
			if nudged != state.floor {
				diag.Actions = append(diag.Actions, skillmodel.GateAction{Action: "nudge_floor", FloorNudge: nudged - state.floor})
				state.floor = nudged
				continue
			}
		}

		break
	}

	diag.Iterations = iterations

	if len(accepted) > 0 {
		best := pickBest(accepted, token)
		return &best, diag, nil
	}

	// The gate stopped before the hard bound with nothing accepted: the
	// token is unmapped and the conservative fallback does not apply.
	if iterations <= cfg.CRAG.MaxRetries {
		diag.Unmapped = true
		return nil, diag, nil
	}

	// Hard bound exhausted: conservative fallback (§4.5 step 6 "Hard
	// bound"): accept top-1 if it clears the floor, else unmapped.
	hits, err := m.index.Query(ctx, token, state.topk, vectorindex.Filter{SkillType: skillType})
	if err != nil {
		return nil, diag, err
	}
	if len(hits) > 0 && hits[0].Score >= state.floor {
		diag.Actions = append(diag.Actions, skillmodel.GateAction{Action: "conservative_fallback"})
		best := hits[0]
		return &best, diag, nil
	}

	diag.Unmapped = true
	return nil, diag, nil
}

func topMargin(hits []vectorindex.ScoredNode) float64 {
	if len(hits) < 2 {
		return 1.0 // a single hit (or none) has no competing neighbor
	}
	sorted := append([]vectorindex.ScoredNode(nil), hits...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
	return sorted[0].Score - sorted[1].Score
}

// pickBest applies the tie-break rule of §4.5: ties on score prefer
// smaller Levenshtein distance to the token, then lexicographic ID.
func pickBest(hits []vectorindex.ScoredNode, token string) vectorindex.ScoredNode {
	sorted := append([]vectorindex.ScoredNode(nil), hits...)
	normToken := taxonomy.Normalise(token)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		di := taxonomy.LevenshteinDistance(normToken, taxonomy.Normalise(sorted[i].Node.CanonicalName))
		dj := taxonomy.LevenshteinDistance(normToken, taxonomy.Normalise(sorted[j].Node.CanonicalName))
		if di != dj {
			return di < dj
		}
		return sorted[i].Node.ID < sorted[j].Node.ID
	})
	return sorted[0]
}

// cutoffFor computes the cutoff score per §4.5 step 2.
func cutoffFor(strategy string, hits []vectorindex.ScoredNode, floor, q float64) float64 {
	if strategy != "quantile" || len(hits) == 0 {
		return floor
	}
	scores := make([]float64, len(hits))
	for i, h := range hits {
		scores[i] = h.Score
	}
	sort.Float64s(scores)
	idx := int(q * float64(len(scores)-1))
	quantileScore := scores[idx]
	if quantileScore > floor {
		return quantileScore
	}
	return floor
}

// passesLiteralGuard implements §4.5 step 4: reject a candidate when
// neither its canonical name nor any alias appears as a token-bounded,
// case-insensitive substring of sourceText.
func passesLiteralGuard(node *taxonomy.SkillNode, sourceText string) bool {
	if sourceText == "" {
		return true
	}
	hay := taxonomy.Normalise(sourceText)
	names := append([]string{node.CanonicalName}, node.Aliases...)
	for _, n := range names {
		if taxonomy.ContainsWordBoundary(hay, taxonomy.Normalise(n)) {
			return true
		}
	}
	return false
}
