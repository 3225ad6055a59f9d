// Package gapanalysis implements the Analyzer component (§4.6): it
// compares a resume's mapped skills against a job's mapped skills and
// produces the canonical, versioned GapAnalysisResult.
package gapanalysis

import "github.com/careerengine/careerengine/internal/skillmodel"

// Input bundles everything Compare needs beyond the two mapped-skill
// lists: the identifying context to stamp onto the result and the
// mapping-stage diagnostics to carry through (§4.6 step 6).
type Input struct {
	ResumeMapped []skillmodel.MappedSkill
	JobMapped    []skillmodel.MappedSkill

	Context     skillmodel.Context
	Diagnostics skillmodel.Diagnostics

	// LevelGrace is the tolerance below which a level_delta still counts
	// as meets_or_exceeds (§4.6 step 3; default 0.25, see
	// config.ScoreWeightsConfig.LevelGrace).
	LevelGrace float64
}
