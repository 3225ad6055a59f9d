package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/careerengine/careerengine/internal/apperrors"
	"github.com/careerengine/careerengine/internal/llmclient"
	"github.com/careerengine/careerengine/internal/skillmodel"
)

const maxReaskAttempts = 3

// LLMExtractor implements Extractor against a real language-model client,
// per §4.3: all_in_one (preferred, single call) or current (legacy,
// two calls), with up to 3 reask retries on malformed/schema-invalid
// JSON.
type LLMExtractor struct {
	client        llmclient.Client
	mode          string // "all_in_one" | "current"
	timeout       time.Duration
	capNiceToHave bool
}

// NewLLMExtractor builds an LLMExtractor. mode should be one of
// "all_in_one" or "current" (§6 extraction.mode).
func NewLLMExtractor(client llmclient.Client, mode string, timeout time.Duration, capNiceToHave bool) *LLMExtractor {
	return &LLMExtractor{client: client, mode: mode, timeout: timeout, capNiceToHave: capNiceToHave}
}

func (e *LLMExtractor) Extract(ctx context.Context, text string, isJobDescription bool) (skillmodel.ExtractionOutput, error) {
	if e.mode == "current" {
		return e.extractTwoCall(ctx, text, isJobDescription)
	}
	return e.extractAllInOne(ctx, text, isJobDescription)
}

func (e *LLMExtractor) extractAllInOne(ctx context.Context, text string, isJobDescription bool) (skillmodel.ExtractionOutput, error) {
	raw, err := e.callWithReask(ctx, allInOnePrompt(text, isJobDescription), skillsSchema)
	if err != nil {
		return skillmodel.ExtractionOutput{}, err
	}
	return toExtractionOutput(raw, text, e.capNiceToHave), nil
}

func (e *LLMExtractor) extractTwoCall(ctx context.Context, text string, isJobDescription bool) (skillmodel.ExtractionOutput, error) {
	skillsRaw, err := e.callWithReask(ctx, skillsOnlyPrompt(text, isJobDescription), skillsSchema)
	if err != nil {
		return skillmodel.ExtractionOutput{}, err
	}
	respRaw, err := e.callWithReask(ctx, responsibilitiesPrompt(text), responsibilitiesSchema)
	if err != nil {
		return skillmodel.ExtractionOutput{}, err
	}
	skillsRaw.Responsibilities = respRaw.Responsibilities
	return toExtractionOutput(skillsRaw, text, e.capNiceToHave), nil
}

// callWithReask issues the LLM call, validating the response against
// schema and retrying up to maxReaskAttempts times with an explicit
// correction prompt on failure (§4.3).
func (e *LLMExtractor) callWithReask(ctx context.Context, prompt, schema string) (rawExtraction, error) {
	schemaLoader := gojsonschema.NewStringLoader(schema)

	var lastErr error
	currentPrompt := prompt
	for attempt := 0; attempt <= maxReaskAttempts; attempt++ {
		text, err := e.client.Complete(ctx, currentPrompt, schema, e.timeout)
		if err != nil {
			lastErr = err
			currentPrompt = reaskPrompt(prompt, err.Error())
			continue
		}

		result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(text))
		if err != nil {
			lastErr = fmt.Errorf("schema validation error: %w", err)
			currentPrompt = reaskPrompt(prompt, lastErr.Error())
			continue
		}
		if !result.Valid() {
			lastErr = fmt.Errorf("response did not conform to schema: %v", result.Errors())
			currentPrompt = reaskPrompt(prompt, lastErr.Error())
			continue
		}

		var raw rawExtraction
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			lastErr = fmt.Errorf("malformed JSON: %w", err)
			currentPrompt = reaskPrompt(prompt, lastErr.Error())
			continue
		}
		return raw, nil
	}
	return rawExtraction{}, fmt.Errorf("%w: %v", apperrors.ErrExtractionFailed, lastErr)
}

func toExtractionOutput(raw rawExtraction, sourceText string, capNiceToHave bool) skillmodel.ExtractionOutput {
	skills := make([]skillmodel.ExtractedSkill, 0, len(raw.Skills))
	for _, rs := range raw.Skills {
		if rs.Name == "" {
			continue // "every skill has a non-empty surface name" (§4.3)
		}
		var level skillmodel.LevelSnapshot
		if rs.Level != "" {
			score, ok := skillmodel.ScoreFor(skillmodel.Level(rs.Level))
			if ok {
				level = skillmodel.LevelSnapshot{
					Label:           skillmodel.Level(rs.Level),
					Score:           score,
					YearsExperience: rs.YearsExperience,
					Confidence:      rs.Confidence,
					Signals:         rs.Signals,
				}
			}
		}

		var evidence []skillmodel.EvidenceSpan
		for _, ev := range rs.Evidence {
			evidence = append(evidence, skillmodel.EvidenceSpan{Start: ev.Start, End: ev.End, Text: ev.Text})
		}

		skills = append(skills, skillmodel.ExtractedSkill{
			SurfaceToken: rs.Name,
			IsTask:       rs.IsTask,
			Level:        level,
			NiceToHave:   rs.NiceToHave,
			Evidence:     evidence,
		})
	}

	skills = applyEvidenceGuard(skills, len(sourceText))
	skills = applyLevelDefaults(skills, capNiceToHave)

	return skillmodel.ExtractionOutput{
		Skills:           skills,
		Responsibilities: raw.Responsibilities,
	}
}
