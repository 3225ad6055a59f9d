package gapanalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerengine/careerengine/internal/skillmodel"
)

func snapshot(label skillmodel.Level, score float64) skillmodel.LevelSnapshot {
	return skillmodel.LevelSnapshot{Label: label, Score: score, Confidence: 0.8}
}

func TestCompare_MatchedAndMissingPartition(t *testing.T) {
	resume := []skillmodel.MappedSkill{
		{SkillID: "go", CanonicalName: "Go", SkillType: "skill", CandidateLevel: ptr(snapshot(skillmodel.LevelProficient, 3))},
	}
	job := []skillmodel.MappedSkill{
		{SkillID: "go", CanonicalName: "Go", SkillType: "skill", RequiredLevel: ptr(snapshot(skillmodel.LevelWorking, 2))},
		{SkillID: "rust", CanonicalName: "Rust", SkillType: "skill", RequiredLevel: ptr(snapshot(skillmodel.LevelWorking, 2)), HotTech: true},
	}

	result := New().Compare(Input{ResumeMapped: resume, JobMapped: job})

	require.Len(t, result.MatchedSkills, 1)
	assert.Equal(t, "go", result.MatchedSkills[0].SkillID)
	assert.Equal(t, skillmodel.StatusMeetsOrExceeds, result.MatchedSkills[0].Status)
	assert.Equal(t, 0.0, result.MatchedSkills[0].LevelDelta)

	require.Len(t, result.MissingSkills, 1)
	assert.Equal(t, "rust", result.MissingSkills[0].SkillID)
	assert.True(t, result.MissingSkills[0].HotTech)

	require.Len(t, result.ResumeSkills, 1)
	assert.Equal(t, skillmodel.StatusResumeOnly, result.ResumeSkills[0].Status,
		"resume_skills status must always be resume_only, independent of match status")
	assert.Equal(t, "1.0.0", result.Version)
}

func TestCompare_UnderqualifiedWhenDeltaExceedsGrace(t *testing.T) {
	resume := []skillmodel.MappedSkill{
		{SkillID: "go", CanonicalName: "Go", SkillType: "skill", CandidateLevel: ptr(snapshot(skillmodel.LevelBasic, 1))},
	}
	job := []skillmodel.MappedSkill{
		{SkillID: "go", CanonicalName: "Go", SkillType: "skill", RequiredLevel: ptr(snapshot(skillmodel.LevelAdvanced, 4))},
	}

	result := New().Compare(Input{ResumeMapped: resume, JobMapped: job, LevelGrace: 0.25})
	require.Len(t, result.MatchedSkills, 1)
	assert.Equal(t, skillmodel.StatusUnderqualified, result.MatchedSkills[0].Status)
	assert.Equal(t, 3.0, result.MatchedSkills[0].LevelDelta)
}

func TestCompare_WithinGraceStillMeetsOrExceeds(t *testing.T) {
	resume := []skillmodel.MappedSkill{
		{SkillID: "go", CanonicalName: "Go", SkillType: "skill", CandidateLevel: ptr(snapshot(skillmodel.LevelWorking, 2))},
	}
	job := []skillmodel.MappedSkill{
		{SkillID: "go", CanonicalName: "Go", SkillType: "skill", RequiredLevel: ptr(snapshot(skillmodel.LevelWorking, 2.2))},
	}

	result := New().Compare(Input{ResumeMapped: resume, JobMapped: job, LevelGrace: 0.25})
	require.Len(t, result.MatchedSkills, 1)
	assert.Equal(t, skillmodel.StatusMeetsOrExceeds, result.MatchedSkills[0].Status)
}

func TestCompare_TasksExcludedFromCoverage(t *testing.T) {
	resume := []skillmodel.MappedSkill{
		{SkillID: "lead", CanonicalName: "Lead a team", SkillType: "task"},
	}
	job := []skillmodel.MappedSkill{
		{SkillID: "lead", CanonicalName: "Lead a team", SkillType: "task"},
		{SkillID: "go", CanonicalName: "Go", SkillType: "skill", RequiredLevel: ptr(snapshot(skillmodel.LevelWorking, 2))},
	}

	result := New().Compare(Input{ResumeMapped: resume, JobMapped: job})
	assert.Empty(t, result.MatchedSkills)
	require.Len(t, result.MissingSkills, 1)
	assert.Equal(t, "go", result.MissingSkills[0].SkillID)
}

func TestCompare_ScoreBoundedAndRounded(t *testing.T) {
	job := []skillmodel.MappedSkill{
		{SkillID: "a", CanonicalName: "A", SkillType: "skill", RequiredLevel: ptr(snapshot(skillmodel.LevelWorking, 2))},
		{SkillID: "b", CanonicalName: "B", SkillType: "skill", RequiredLevel: ptr(snapshot(skillmodel.LevelWorking, 2))},
		{SkillID: "c", CanonicalName: "C", SkillType: "skill", RequiredLevel: ptr(snapshot(skillmodel.LevelWorking, 2))},
	}
	resume := []skillmodel.MappedSkill{
		{SkillID: "a", CanonicalName: "A", SkillType: "skill", CandidateLevel: ptr(snapshot(skillmodel.LevelWorking, 2))},
	}

	result := New().Compare(Input{ResumeMapped: resume, JobMapped: job})
	assert.GreaterOrEqual(t, result.Metrics.Score, 0.0)
	assert.LessOrEqual(t, result.Metrics.Score, 10.0)
	assert.InDelta(t, 3.33, result.Metrics.Score, 0.01)
}

func TestCompare_EmptyInputsProduceZeroScoreNotNaN(t *testing.T) {
	result := New().Compare(Input{})
	assert.Equal(t, 0.0, result.Metrics.Score)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestCompare_TieBreakOrdersUnderqualifiedFirstThenByDelta(t *testing.T) {
	resume := []skillmodel.MappedSkill{
		{SkillID: "a", CanonicalName: "A", SkillType: "skill", CandidateLevel: ptr(snapshot(skillmodel.LevelWorking, 2))},
		{SkillID: "b", CanonicalName: "B", SkillType: "skill", CandidateLevel: ptr(snapshot(skillmodel.LevelBasic, 1))},
		{SkillID: "c", CanonicalName: "C", SkillType: "skill", CandidateLevel: ptr(snapshot(skillmodel.LevelAdvanced, 4))},
	}
	job := []skillmodel.MappedSkill{
		{SkillID: "a", CanonicalName: "A", SkillType: "skill", RequiredLevel: ptr(snapshot(skillmodel.LevelWorking, 2))},
		{SkillID: "b", CanonicalName: "B", SkillType: "skill", RequiredLevel: ptr(snapshot(skillmodel.LevelAdvanced, 4))},
		{SkillID: "c", CanonicalName: "C", SkillType: "skill", RequiredLevel: ptr(snapshot(skillmodel.LevelWorking, 2))},
	}

	result := New().Compare(Input{ResumeMapped: resume, JobMapped: job})
	require.Len(t, result.MatchedSkills, 3)
	assert.Equal(t, "b", result.MatchedSkills[0].SkillID, "underqualified entries sort first")
	assert.Equal(t, skillmodel.StatusUnderqualified, result.MatchedSkills[0].Status)
}

func ptr(s skillmodel.LevelSnapshot) *skillmodel.LevelSnapshot { return &s }
