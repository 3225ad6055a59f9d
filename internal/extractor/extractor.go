// Package extractor implements the Extractor component (§4.3): turning
// free text into structured skills with inferred proficiency levels and
// evidence. Two implementations exist, selected once at engine
// construction rather than as a runtime fallback (§9 design note):
// LLMExtractor for production use, and KeywordExtractor as the
// deterministic test-mode matcher.
package extractor

import (
	"context"

	"github.com/careerengine/careerengine/internal/skillmodel"
)

// Extractor converts a document's text into structured skills and
// responsibilities.
type Extractor interface {
	Extract(ctx context.Context, text string, isJobDescription bool) (skillmodel.ExtractionOutput, error)
}

// applyEvidenceGuard drops evidence spans whose offsets are invalid for
// textLen, per §4.3 "when invalid, drop them silently".
func applyEvidenceGuard(skills []skillmodel.ExtractedSkill, textLen int) []skillmodel.ExtractedSkill {
	for i := range skills {
		var kept []skillmodel.EvidenceSpan
		for _, span := range skills[i].Evidence {
			if span.Valid(textLen) {
				kept = append(kept, span)
			}
		}
		skills[i].Evidence = kept
	}
	return skills
}

// applyLevelDefaults fills in the §4.3 default level for any skill whose
// level the model omitted, honoring the nice-to-have score cap when
// capNiceToHave is enabled.
func applyLevelDefaults(skills []skillmodel.ExtractedSkill, capNiceToHave bool) []skillmodel.ExtractedSkill {
	for i := range skills {
		if skills[i].Level.IsKnown() {
			continue
		}
		def := skillmodel.DefaultLevel()
		if capNiceToHave && skills[i].NiceToHave && def.Score > 2.0 {
			def.Score = 2.0
		}
		skills[i].Level = def
	}
	return skills
}
