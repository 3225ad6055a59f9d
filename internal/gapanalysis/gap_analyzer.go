package gapanalysis

import (
	"math"
	"sort"

	"github.com/careerengine/careerengine/internal/skillmodel"
	"github.com/careerengine/careerengine/internal/taxonomy"
)

// defaultLevelGrace is used when Input.LevelGrace is zero (§4.6 step 3).
const defaultLevelGrace = 0.25

// Analyzer implements Compare (§4.6).
type Analyzer struct{}

// New builds an Analyzer. It carries no state: Compare is a pure function
// of its Input.
func New() *Analyzer { return &Analyzer{} }

// Compare produces the canonical GapAnalysisResult from two MappedSkill
// lists (§4.6).
func (a *Analyzer) Compare(in Input) skillmodel.GapAnalysisResult {
	grace := in.LevelGrace
	if grace == 0 {
		grace = defaultLevelGrace
	}

	resumeSkills := filterSkillType(in.ResumeMapped)
	jobSkills := filterSkillType(in.JobMapped)

	resumeByID := make(map[string]skillmodel.MappedSkill, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeByID[s.SkillID] = s
	}

	var matched []skillmodel.MatchedSkill
	var missing []skillmodel.MissingSkill

	for _, job := range jobSkills {
		if resume, ok := resumeByID[job.SkillID]; ok {
			required := job.Level()
			candidate := resume.Level()
			delta := skillmodel.LevelDelta(required, candidate)
			status := skillmodel.StatusMeetsOrExceeds
			if delta > grace {
				status = skillmodel.StatusUnderqualified
			}
			matched = append(matched, skillmodel.MatchedSkill{
				SkillID:        job.SkillID,
				CanonicalName:  job.CanonicalName,
				CandidateLevel: candidate,
				RequiredLevel:  required,
				LevelDelta:     delta,
				Status:         status,
				HotTech:        job.HotTech,
				InDemand:       job.InDemand,
			})
			continue
		}
		missing = append(missing, skillmodel.MissingSkill{
			SkillID:       job.SkillID,
			CanonicalName: job.CanonicalName,
			RequiredLevel: job.Level(),
			HotTech:       job.HotTech,
			InDemand:      job.InDemand,
			Status:        skillmodel.StatusUnderqualified,
		})
	}

	sortMatched(matched)
	sortMissing(missing)

	total := math.Max(1, float64(len(matched)+len(missing)))
	coverage := (float64(len(matched)) / total) * 10
	score := roundTo2(clamp(coverage, 0, 10))

	resumeList := make([]skillmodel.ResumeSkill, 0, len(resumeSkills))
	for _, r := range resumeSkills {
		resumeList = append(resumeList, skillmodel.ResumeSkill{
			SkillID:        r.SkillID,
			CanonicalName:  r.CanonicalName,
			CandidateLevel: r.Level(),
			Status:         skillmodel.StatusResumeOnly,
		})
	}
	sort.SliceStable(resumeList, func(i, j int) bool {
		return resumeList[i].CanonicalName < resumeList[j].CanonicalName
	})

	context := in.Context
	if context.ConfigSnapshot == nil {
		context.ConfigSnapshot = map[string]any{}
	}
	context.ConfigSnapshot["level_grace"] = grace

	return skillmodel.GapAnalysisResult{
		Version:       skillmodel.ResultVersion,
		Context:       context,
		Metrics:       skillmodel.Metrics{Score: score},
		MatchedSkills: matched,
		MissingSkills: missing,
		ResumeSkills:  resumeList,
		Diagnostics:   in.Diagnostics,
	}
}

// filterSkillType keeps only skill_type == "skill" entries (§4.6 step 1);
// tasks are excluded from coverage but remain in the mapper's diagnostics.
func filterSkillType(skills []skillmodel.MappedSkill) []skillmodel.MappedSkill {
	out := make([]skillmodel.MappedSkill, 0, len(skills))
	for _, s := range skills {
		if s.SkillType == string(taxonomy.SkillTypeSkill) {
			out = append(out, s)
		}
	}
	return out
}

// sortMatched applies the §4.6 tie-break: underqualified first, then by
// level_delta descending, then hot_tech/in_demand true first, then name.
func sortMatched(matched []skillmodel.MatchedSkill) {
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.Status != b.Status {
			return a.Status == skillmodel.StatusUnderqualified
		}
		if a.LevelDelta != b.LevelDelta {
			return a.LevelDelta > b.LevelDelta
		}
		if a.HotTech != b.HotTech {
			return a.HotTech
		}
		if a.InDemand != b.InDemand {
			return a.InDemand
		}
		return a.CanonicalName < b.CanonicalName
	})
}

// sortMissing applies the §4.6 tie-break: hot_tech first, then in_demand
// first, then name.
func sortMissing(missing []skillmodel.MissingSkill) {
	sort.SliceStable(missing, func(i, j int) bool {
		a, b := missing[i], missing[j]
		if a.HotTech != b.HotTech {
			return a.HotTech
		}
		if a.InDemand != b.InDemand {
			return a.InDemand
		}
		return a.CanonicalName < b.CanonicalName
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
