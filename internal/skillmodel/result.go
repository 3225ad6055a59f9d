package skillmodel

// ResultVersion is the semantic version stamped onto every GapAnalysisResult
// (§3, §8 P8). Consumers of analysis_json must check this before
// interpreting shape.
const ResultVersion = "1.0.0"

// MatchStatus discriminates a matched skill's qualification state.
type MatchStatus string

const (
	StatusMeetsOrExceeds MatchStatus = "meets_or_exceeds"
	StatusUnderqualified MatchStatus = "underqualified"
	StatusResumeOnly     MatchStatus = "resume_only"
)

// MatchedSkill is one entry of GapAnalysisResult.MatchedSkills.
type MatchedSkill struct {
	SkillID       string        `json:"skill_id"`
	CanonicalName string        `json:"canonical_name"`
	CandidateLevel LevelSnapshot `json:"candidate_level"`
	RequiredLevel  LevelSnapshot `json:"required_level"`
	LevelDelta     float64       `json:"level_delta"`
	Status         MatchStatus   `json:"status"`
	HotTech        bool          `json:"hot_tech,omitempty"`
	InDemand       bool          `json:"in_demand,omitempty"`
}

// MissingSkill is one entry of GapAnalysisResult.MissingSkills: a required
// job skill absent from the resume side.
type MissingSkill struct {
	SkillID       string      `json:"skill_id"`
	CanonicalName string      `json:"canonical_name"`
	RequiredLevel LevelSnapshot `json:"required_level"`
	HotTech       bool        `json:"hot_tech,omitempty"`
	InDemand      bool        `json:"in_demand,omitempty"`
	Status        MatchStatus `json:"status"`
}

// ResumeSkill is one entry of GapAnalysisResult.ResumeSkills: the full
// resume-detected superset, independent of whether the job required it.
type ResumeSkill struct {
	SkillID        string        `json:"skill_id"`
	CanonicalName  string        `json:"canonical_name"`
	CandidateLevel LevelSnapshot `json:"candidate_level"`
	Status         MatchStatus   `json:"status"`
}

// GateAction records one CRAG-gate retry decision for diagnostics (§4.5
// step 6, §8 S5).
type GateAction struct {
	Action       string  `json:"action"` // increase_topk | switch_recipe | nudge_floor | conservative_fallback
	TopkIncreasedBy int  `json:"topk_increased_by,omitempty"`
	FloorNudge   float64 `json:"floor_nudge,omitempty"`
	Recipe       string  `json:"recipe,omitempty"`
}

// TokenDiagnostics captures the per-token mapping trace for one extracted
// skill/task token.
type TokenDiagnostics struct {
	Token           string       `json:"token"`
	AcceptedSkillID string       `json:"accepted_skill_id,omitempty"`
	Iterations      int          `json:"iterations"`
	AcceptedCount   int          `json:"accepted_count"`
	Margin          float64      `json:"margin"`
	LiteralRejectRate float64    `json:"literal_reject_rate"`
	Actions         []GateAction `json:"actions,omitempty"`
	Unmapped        bool         `json:"unmapped,omitempty"`
}

// GateSummary aggregates gate actions across an entire mapping call (§4.5,
// glossary "Gate summary").
type GateSummary struct {
	TotalTokens      int `json:"total_tokens"`
	UnmappedTokens   int `json:"unmapped_tokens"`
	TopkBumps        int `json:"topk_bumps"`
	RecipeSwitches   int `json:"recipe_switches"`
	FloorNudges      int `json:"floor_nudges"`
	ConservativeFallbacks int `json:"conservative_fallbacks"`
}

// Diagnostics is attached to every GapAnalysisResult: per-token mapping
// metadata, gate actions, and timing.
type Diagnostics struct {
	SkillDiagnostics map[string]TokenDiagnostics `json:"skill_diagnostics,omitempty"`
	GateSummary      GateSummary                 `json:"gate_summary"`
	CutoffStrategy   string                      `json:"cutoff_strategy,omitempty"`
	AverageCutoff    float64                     `json:"average_cutoff,omitempty"`
	ExtractionMs     int64                       `json:"extraction_ms,omitempty"`
	MappingMs        int64                       `json:"mapping_ms,omitempty"`
	ComparisonMs     int64                       `json:"comparison_ms,omitempty"`
	TotalMs          int64                       `json:"total_ms,omitempty"`
}

// Context records the identifying and configuration context a
// GapAnalysisResult was produced under.
type Context struct {
	ResumeID            string         `json:"resume_id"`
	JobID               string         `json:"job_id"`
	JobTitle             string        `json:"job_title,omitempty"`
	Company              string        `json:"company,omitempty"`
	ConfigSnapshot       map[string]any `json:"config_snapshot,omitempty"`
	TaxonomySnapshotTag  string         `json:"taxonomy_snapshot_tag,omitempty"`
}

// Metrics holds the scalar outcome of the comparison.
type Metrics struct {
	Score float64 `json:"score"`
}

// GapAnalysisResult is the canonical, versioned persisted comparison
// result (§3). MatchedSkills, MissingSkills, and ResumeSkills are disjoint
// per skill identifier except that ResumeSkills is a superset of the
// resume-side identifiers also appearing in MatchedSkills (§3 invariants,
// §8 P2).
type GapAnalysisResult struct {
	Version string `json:"version"`

	Context Context `json:"context"`
	Metrics Metrics `json:"metrics"`

	MatchedSkills []MatchedSkill `json:"matched_skills"`
	MissingSkills []MissingSkill `json:"missing_skills"`
	ResumeSkills  []ResumeSkill  `json:"resume_skills"`

	Diagnostics Diagnostics    `json:"diagnostics"`
	Extras      map[string]any `json:"extras,omitempty"`

	MarkdownReport string `json:"markdown_report,omitempty"`
}
