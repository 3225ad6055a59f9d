package skillmodel

// EvidenceSpan is a single offset pair into the source text substantiating
// a level inference, paired with the text fragment it points at.
type EvidenceSpan struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// Valid reports whether the span's offsets fall within a text of the
// given length and are non-degenerate. Invalid spans are dropped silently
// per §4.3.
func (e EvidenceSpan) Valid(textLen int) bool {
	return e.Start >= 0 && e.End > e.Start && e.End <= textLen
}

// ExtractedSkill is a single skill or task mention detected in text by the
// Extractor, before taxonomy mapping.
type ExtractedSkill struct {
	// SurfaceToken is the raw mention as it appeared in the source text.
	SurfaceToken string `json:"surface_token"`

	// IsTask marks this as a responsibility/activity rather than a named
	// skill; tasks are mapped against the taxonomy's task partition.
	IsTask bool `json:"is_task,omitempty"`

	Level LevelSnapshot `json:"level"`

	// NiceToHave applies only to job-description extractions (§4.3).
	NiceToHave bool `json:"nice_to_have,omitempty"`

	Evidence []EvidenceSpan `json:"evidence,omitempty"`
}

// ExtractionOutput is the Extractor's full result for one document.
type ExtractionOutput struct {
	Skills           []ExtractedSkill `json:"skills"`
	Responsibilities []string         `json:"responsibilities"`
}

// SourceType distinguishes which side of the comparison a mapped skill or
// extraction came from.
type SourceType string

const (
	SourceResume SourceType = "resume"
	SourceJD     SourceType = "jd"
)

// MappedSkill is the Mapper's output: a taxonomy reference attached to the
// level snapshot carried over from extraction.
type MappedSkill struct {
	SkillID       string     `json:"skill_id"`
	CanonicalName string     `json:"canonical_name"`
	SkillType     string     `json:"skill_type"` // "skill" or "task"
	SurfaceToken  string     `json:"surface_token"`
	Similarity    float64    `json:"similarity"`
	Source        SourceType `json:"source"`

	// Exactly one of these is populated depending on Source.
	CandidateLevel *LevelSnapshot `json:"candidate_level,omitempty"`
	RequiredLevel  *LevelSnapshot `json:"required_level,omitempty"`

	HotTech  bool `json:"hot_tech,omitempty"`
	InDemand bool `json:"in_demand,omitempty"`
}

// Level returns whichever of CandidateLevel/RequiredLevel is set.
func (m MappedSkill) Level() LevelSnapshot {
	if m.CandidateLevel != nil {
		return *m.CandidateLevel
	}
	if m.RequiredLevel != nil {
		return *m.RequiredLevel
	}
	return LevelSnapshot{}
}
