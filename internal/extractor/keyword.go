package extractor

import (
	"context"
	"regexp"
	"strings"

	"github.com/careerengine/careerengine/internal/skillmodel"
)

// KeywordExtractor is the deterministic test-mode matcher (§4.3): no LLM
// call, no evidence spans, confidence capped at 0.5. Selected explicitly
// at engine construction when llm.test_mode is set — never as an
// implicit runtime fallback (§9). The LLM client's availability is not
// probed; an unreachable client does not select this extractor.
type KeywordExtractor struct{}

func NewKeywordExtractor() *KeywordExtractor { return &KeywordExtractor{} }

var (
	separatorRe  = regexp.MustCompile(`[,;/|•\n]+`)
	niceToHaveRe = regexp.MustCompile(`(?i)nice[- ]to[- ]have|preferred|bonus`)
)

func (k *KeywordExtractor) Extract(_ context.Context, text string, isJobDescription bool) (skillmodel.ExtractionOutput, error) {
	lower := strings.ToLower(text)

	var skills []skillmodel.ExtractedSkill
	seen := make(map[string]bool)

	addMatches := func(vocab map[string]bool) {
		for term := range vocab {
			if !containsWordBoundary(lower, term) {
				continue
			}
			if seen[term] {
				continue
			}
			seen[term] = true

			niceToHave := false
			if isJobDescription {
				niceToHave = nearNiceToHaveMarker(lower, term)
			}

			skills = append(skills, skillmodel.ExtractedSkill{
				SurfaceToken: term,
				NiceToHave:   niceToHave,
				Level: skillmodel.LevelSnapshot{
					Label:      skillmodel.LevelWorking,
					Score:      2.0,
					Confidence: 0.5,
				},
			})
		}
	}

	addMatches(technicalSkills)
	addMatches(softSkills)

	responsibilities := extractResponsibilitySentences(text)

	return skillmodel.ExtractionOutput{
		Skills:           applyEvidenceGuard(skills, len(text)),
		Responsibilities: responsibilities,
	}, nil
}

func containsWordBoundary(haystack, term string) bool {
	idx := strings.Index(haystack, term)
	if idx < 0 {
		return false
	}
	before := idx == 0 || !isWordRune(rune(haystack[idx-1]))
	afterIdx := idx + len(term)
	after := afterIdx >= len(haystack) || !isWordRune(rune(haystack[afterIdx]))
	return before && after
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func nearNiceToHaveMarker(lowerText, term string) bool {
	idx := strings.Index(lowerText, term)
	if idx < 0 {
		return false
	}
	windowStart := idx - 80
	if windowStart < 0 {
		windowStart = 0
	}
	if cut := strings.LastIndexAny(lowerText[windowStart:idx], ".\n"); cut >= 0 {
		windowStart += cut + 1
	}
	windowEnd := idx + len(term) + 80
	if windowEnd > len(lowerText) {
		windowEnd = len(lowerText)
	}
	if cut := strings.IndexAny(lowerText[idx+len(term):windowEnd], ".\n"); cut >= 0 {
		windowEnd = idx + len(term) + cut
	}
	return niceToHaveRe.MatchString(lowerText[windowStart:windowEnd])
}

var sentenceBoundaryRe = regexp.MustCompile(`[.\n]+`)

// extractResponsibilitySentences performs a crude sentence split,
// retaining sentences that start with an action verb typical of a
// responsibility bullet ("led", "built", "designed", ...).
func extractResponsibilitySentences(text string) []string {
	verbs := []string{"led", "built", "designed", "architected", "implemented",
		"managed", "developed", "launched", "owned", "drove", "scaled", "mentored"}

	var out []string
	for _, sentence := range sentenceBoundaryRe.Split(text, -1) {
		s := strings.TrimSpace(sentence)
		if s == "" {
			continue
		}
		lower := strings.ToLower(s)
		for _, v := range verbs {
			if strings.HasPrefix(lower, v+" ") {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
