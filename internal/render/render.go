// Package render implements the Renderer component (§4.7): a pure
// function that emits a stable markdown report from a GapAnalysisResult.
// It performs no I/O; its output is recorded on the persisted row for
// display.
package render

import (
	"fmt"
	"strings"

	"github.com/careerengine/careerengine/internal/skillmodel"
)

const hotTechMarker = "🔥"

// Markdown renders the five ordered sections of §4.7, omitting any
// section whose backing list is empty.
func Markdown(result skillmodel.GapAnalysisResult) string {
	var b strings.Builder

	writeTitle(&b, result)
	writeMissing(&b, result.MissingSkills)
	writeUnderqualified(&b, result.MatchedSkills)
	writeMeeting(&b, result.MatchedSkills)
	writeResumeSkills(&b, result.ResumeSkills)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeTitle(b *strings.Builder, result skillmodel.GapAnalysisResult) {
	title := "Skill Gap Analysis"
	if result.Context.JobTitle != "" {
		title = fmt.Sprintf("Skill Gap Analysis: %s", result.Context.JobTitle)
	}
	fmt.Fprintf(b, "# %s\n\n", title)
	fmt.Fprintf(b, "Overall match: %.2f / 10\n\n", result.Metrics.Score)
}

func writeMissing(b *strings.Builder, missing []skillmodel.MissingSkill) {
	if len(missing) == 0 {
		return
	}
	b.WriteString("## Missing required skills\n\n")
	for _, m := range missing {
		name := m.CanonicalName
		if m.HotTech {
			name = fmt.Sprintf("%s %s", name, hotTechMarker)
		}
		fmt.Fprintf(b, "- %s (required: %s)\n", name, levelLabel(m.RequiredLevel))
	}
	b.WriteString("\n")
}

func writeUnderqualified(b *strings.Builder, matched []skillmodel.MatchedSkill) {
	var rows []skillmodel.MatchedSkill
	for _, m := range matched {
		if m.Status == skillmodel.StatusUnderqualified {
			rows = append(rows, m)
		}
	}
	if len(rows) == 0 {
		return
	}
	b.WriteString("## Underqualified required skills\n\n")
	for _, m := range rows {
		name := m.CanonicalName
		if m.HotTech {
			name = fmt.Sprintf("%s %s", name, hotTechMarker)
		}
		fmt.Fprintf(b, "- %s: candidate %s vs required %s (gap %.2f)\n",
			name, levelLabel(m.CandidateLevel), levelLabel(m.RequiredLevel), m.LevelDelta)
	}
	b.WriteString("\n")
}

func writeMeeting(b *strings.Builder, matched []skillmodel.MatchedSkill) {
	var rows []skillmodel.MatchedSkill
	for _, m := range matched {
		if m.Status == skillmodel.StatusMeetsOrExceeds {
			rows = append(rows, m)
		}
	}
	if len(rows) == 0 {
		return
	}
	b.WriteString("## Skills meeting requirements\n\n")
	for _, m := range rows {
		fmt.Fprintf(b, "- %s: candidate %s, required %s\n", m.CanonicalName, levelLabel(m.CandidateLevel), levelLabel(m.RequiredLevel))
	}
	b.WriteString("\n")
}

func writeResumeSkills(b *strings.Builder, resume []skillmodel.ResumeSkill) {
	if len(resume) == 0 {
		return
	}
	b.WriteString("## Full resume skill list\n\n")
	for _, r := range resume {
		fmt.Fprintf(b, "- %s: %s\n", r.CanonicalName, levelLabel(r.CandidateLevel))
	}
	b.WriteString("\n")
}

func levelLabel(l skillmodel.LevelSnapshot) string {
	if !l.IsKnown() {
		return "unknown"
	}
	return string(l.Label)
}
