package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careerengine/careerengine/internal/skillmodel"
)

func TestMarkdown_OmitsEmptySections(t *testing.T) {
	result := skillmodel.GapAnalysisResult{Metrics: skillmodel.Metrics{Score: 7.5}}
	out := Markdown(result)
	assert.Contains(t, out, "# Skill Gap Analysis")
	assert.Contains(t, out, "7.50")
	assert.NotContains(t, out, "## Missing required skills")
	assert.NotContains(t, out, "## Underqualified required skills")
	assert.NotContains(t, out, "## Skills meeting requirements")
	assert.NotContains(t, out, "## Full resume skill list")
}

func TestMarkdown_MissingSkillsMarkHotTech(t *testing.T) {
	result := skillmodel.GapAnalysisResult{
		MissingSkills: []skillmodel.MissingSkill{
			{CanonicalName: "Kubernetes", HotTech: true, RequiredLevel: skillmodel.LevelSnapshot{Label: skillmodel.LevelWorking, Score: 2}},
		},
	}
	out := Markdown(result)
	assert.Contains(t, out, "Kubernetes 🔥")
}

func TestMarkdown_SectionOrder(t *testing.T) {
	result := skillmodel.GapAnalysisResult{
		MissingSkills: []skillmodel.MissingSkill{{CanonicalName: "Rust"}},
		MatchedSkills: []skillmodel.MatchedSkill{
			{CanonicalName: "Go", Status: skillmodel.StatusUnderqualified},
			{CanonicalName: "Python", Status: skillmodel.StatusMeetsOrExceeds},
		},
		ResumeSkills: []skillmodel.ResumeSkill{{CanonicalName: "Python"}},
	}
	out := Markdown(result)
	missingIdx := strings.Index(out, "Missing required")
	underIdx := strings.Index(out, "Underqualified")
	meetIdx := strings.Index(out, "meeting requirements")
	resumeIdx := strings.Index(out, "Full resume skill list")
	assert.True(t, missingIdx < underIdx)
	assert.True(t, underIdx < meetIdx)
	assert.True(t, meetIdx < resumeIdx)
}
