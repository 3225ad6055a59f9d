// Package engine implements the CareerEngine pipeline controller (§4.2):
// the eight-step extract → map → compare → render → persist sequence
// invoked by the Orchestrator's RunAnalysis state.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerengine/careerengine/internal/apperrors"
	"github.com/careerengine/careerengine/internal/clock"
	"github.com/careerengine/careerengine/internal/config"
	"github.com/careerengine/careerengine/internal/extractioncache"
	"github.com/careerengine/careerengine/internal/extractor"
	"github.com/careerengine/careerengine/internal/gapanalysis"
	"github.com/careerengine/careerengine/internal/mapper"
	"github.com/careerengine/careerengine/internal/render"
	"github.com/careerengine/careerengine/internal/skillmodel"
	"github.com/careerengine/careerengine/internal/store"
	"github.com/careerengine/careerengine/internal/vectorindex"
)

// resumeStore is the narrow slice of ResumeStore the engine needs, accepted
// as an interface so tests can substitute an in-memory fake instead of a
// real *sql.DB (see DESIGN.md).
type resumeStore interface {
	GetByID(ctx context.Context, resumeID string) (*store.Resume, error)
}

type jobStore interface {
	GetJob(ctx context.Context, jobID string) (*store.Job, error)
}

type processingRunStore interface {
	Create(ctx context.Context, run store.ProcessingRun) (string, error)
	EnrichWithConfig(ctx context.Context, runID string, configSnapshot []byte) error
}

type resultStore interface {
	Insert(ctx context.Context, processingRunID string, result skillmodel.GapAnalysisResult) (string, error)
}

type reportStatusStore interface {
	SetGenerating(ctx context.Context, userID, jobID string) error
	SetReady(ctx context.Context, userID, jobID string) error
	Clear(ctx context.Context, userID, jobID string) error
}

// mapperEngine is the subset of *mapper.Mapper the engine drives.
type mapperEngine interface {
	MapTokens(ctx context.Context, skills []skillmodel.ExtractedSkill, source skillmodel.SourceType, sourceText string, cfg config.Config) ([]skillmodel.MappedSkill, error)
	MapTasks(ctx context.Context, skills []skillmodel.ExtractedSkill, source skillmodel.SourceType, sourceText string, cfg config.Config) ([]skillmodel.MappedSkill, error)
	GetLastMappingDiagnostics() skillmodel.Diagnostics
}

// analyzerEngine is the subset of *gapanalysis.Analyzer the engine drives.
type analyzerEngine interface {
	Compare(in gapanalysis.Input) skillmodel.GapAnalysisResult
}

// Engine wires the four pipeline stages and the persistence tail (§4.2).
type Engine struct {
	resumes      resumeStore
	jobs         jobStore
	runs         processingRunStore
	results      resultStore
	reportStatus reportStatusStore

	cache     *extractioncache.Cache
	extractor extractor.Extractor
	mapper    mapperEngine
	analyzer  analyzerEngine

	config config.Config
	clock  clock.Clock
	logger zerolog.Logger
}

// Deps bundles Engine's collaborators for construction. The store fields
// accept the concrete *store.XStore types directly since that's what
// production wiring has on hand; Engine narrows them to interfaces
// internally.
type Deps struct {
	Resumes      *store.ResumeStore
	Jobs         *store.JobStore
	Runs         *store.ProcessingRunStore
	Results      *store.ResultStore
	ReportStatus *store.ReportStatusStore
	Cache        *extractioncache.Cache
	Extractor    extractor.Extractor
	Mapper       *mapper.Mapper
	Analyzer     *gapanalysis.Analyzer
	Config       config.Config
	Clock        clock.Clock
	Logger       zerolog.Logger
}

// New builds an Engine from its collaborators.
func New(d Deps) *Engine {
	analyzer := d.Analyzer
	if analyzer == nil {
		analyzer = gapanalysis.New()
	}
	return &Engine{
		resumes: d.Resumes, jobs: d.Jobs, runs: d.Runs, results: d.Results, reportStatus: d.ReportStatus,
		cache: d.Cache, extractor: d.Extractor, mapper: d.Mapper, analyzer: analyzer,
		config: d.Config, clock: d.Clock, logger: d.Logger,
	}
}

// Analyze implements CareerEngine.analyze (§4.2 steps 1-8).
func (e *Engine) Analyze(ctx context.Context, resumeID, jobID string, policyOverrides map[string]any) (skillmodel.GapAnalysisResult, error) {
	totalStart := e.clock.Now()

	// Step 1: load resume, fail with ResumeMissing if absent or empty.
	resume, err := e.resumes.GetByID(ctx, resumeID)
	if err != nil {
		return skillmodel.GapAnalysisResult{}, fmt.Errorf("%w: %v", apperrors.ErrPersistenceFailed, err)
	}
	if resume == nil || strings.TrimSpace(resume.RawText) == "" {
		return skillmodel.GapAnalysisResult{}, apperrors.ErrResumeMissing
	}

	// Step 2: load job, build enriched job text.
	job, err := e.jobs.GetJob(ctx, jobID)
	if err != nil {
		return skillmodel.GapAnalysisResult{}, fmt.Errorf("%w: %v", apperrors.ErrPersistenceFailed, err)
	}
	if job == nil {
		return skillmodel.GapAnalysisResult{}, apperrors.ErrJobNotFound
	}
	jobText := buildJobText(*job)

	// Step 3: effective configuration = global config + policy_overrides.
	effective, err := e.config.WithOverrides(policyOverrides)
	if err != nil {
		return skillmodel.GapAnalysisResult{}, err
	}

	runID, err := e.runs.Create(ctx, store.ProcessingRun{
		UserID:         resume.UserID,
		JobID:          jobID,
		ModelID:        effective.Extraction.ExtractorModel,
		EmbeddingModel: effective.Extraction.EmbeddingModel,
	})
	if err != nil {
		return skillmodel.GapAnalysisResult{}, err
	}

	if err := e.reportStatus.SetGenerating(ctx, resume.UserID, jobID); err != nil {
		e.logger.Warn().Err(err).Msg("failed to set report status generating")
	}

	result, renderErr := e.runPipeline(ctx, resume.RawText, jobText, effective, totalStart)
	if renderErr != nil {
		if clearErr := e.reportStatus.Clear(ctx, resume.UserID, jobID); clearErr != nil {
			e.logger.Error().Err(clearErr).Msg("failed to clear report status after analysis failure")
		}
		return skillmodel.GapAnalysisResult{}, renderErr
	}

	result.Context.ResumeID = resumeID
	result.Context.JobID = jobID
	result.Context.JobTitle = job.Title
	result.Context.Company = job.Company

	configSnapshot, _ := json.Marshal(effective)
	if err := e.runs.EnrichWithConfig(ctx, runID, configSnapshot); err != nil {
		e.logger.Warn().Err(err).Msg("failed to enrich processing run with config snapshot")
	}

	// Step 8: persist, then atomically flip ReportStatus to ready.
	if _, err := e.results.Insert(ctx, runID, result); err != nil {
		_ = e.reportStatus.Clear(ctx, resume.UserID, jobID)
		return skillmodel.GapAnalysisResult{}, err
	}
	if err := e.reportStatus.SetReady(ctx, resume.UserID, jobID); err != nil {
		e.logger.Error().Err(err).Msg("failed to set report status ready after successful persist")
	}

	return result, nil
}

// runPipeline runs steps 4-7: extract, map, compare, render.
func (e *Engine) runPipeline(ctx context.Context, resumeText, jobText string, cfg config.Config, totalStart time.Time) (skillmodel.GapAnalysisResult, error) {
	extractStart := e.clock.Now()
	resumeOut, err := e.extractCached(ctx, extractioncache.DocResume, resumeText, false, cfg)
	if err != nil {
		return skillmodel.GapAnalysisResult{}, err
	}
	jobOut, err := e.extractCached(ctx, extractioncache.DocJD, jobText, true, cfg)
	if err != nil {
		return skillmodel.GapAnalysisResult{}, err
	}
	extractionMs := e.clock.Since(extractStart).Milliseconds()

	mapStart := e.clock.Now()
	var diagnostics skillmodel.Diagnostics
	resumeMapped, err := e.mapAll(ctx, resumeOut.Skills, skillmodel.SourceResume, resumeText, cfg, &diagnostics)
	if err != nil {
		return skillmodel.GapAnalysisResult{}, err
	}
	jobMapped, err := e.mapAll(ctx, jobOut.Skills, skillmodel.SourceJD, jobText, cfg, &diagnostics)
	if err != nil {
		return skillmodel.GapAnalysisResult{}, err
	}
	mappingMs := e.clock.Since(mapStart).Milliseconds()

	compareStart := e.clock.Now()
	diagnostics.ExtractionMs = extractionMs
	diagnostics.MappingMs = mappingMs

	result := e.analyzer.Compare(gapanalysis.Input{
		ResumeMapped: resumeMapped,
		JobMapped:    jobMapped,
		Diagnostics:  diagnostics,
		LevelGrace:   cfg.ScoreWeights.LevelGrace,
	})
	result.Diagnostics.ComparisonMs = e.clock.Since(compareStart).Milliseconds()
	result.Diagnostics.TotalMs = e.clock.Since(totalStart).Milliseconds()

	// Step 7: render the markdown summary.
	result.MarkdownReport = render.Markdown(result)

	return result, nil
}

// extractCached runs the Extractor through the ExtractionCache (§4.4),
// keyed by content hash plus extractor/model/prompt versions.
func (e *Engine) extractCached(ctx context.Context, docType extractioncache.DocType, text string, isJobDescription bool, cfg config.Config) (skillmodel.ExtractionOutput, error) {
	key := extractioncache.NewKey(docType, text, cfg.Extraction.ExtractorVersion, cfg.Extraction.ExtractorModel, cfg.Extraction.PromptVersion)

	resultJSON, err := e.cache.GetOrCompute(ctx, key, func(ctx context.Context) ([]byte, []byte, error) {
		out, err := e.extractor.Extract(ctx, text, isJobDescription)
		if err != nil {
			return nil, nil, err
		}
		b, err := json.Marshal(out)
		if err != nil {
			return nil, nil, fmt.Errorf("engine: marshal extraction output: %w", err)
		}
		return b, nil, nil
	})
	if err != nil {
		return skillmodel.ExtractionOutput{}, err
	}

	var out skillmodel.ExtractionOutput
	if err := json.Unmarshal(resultJSON, &out); err != nil {
		return skillmodel.ExtractionOutput{}, fmt.Errorf("engine: unmarshal cached extraction: %w", err)
	}
	return out, nil
}

// mapAll splits skill/task tokens and routes each partition to the
// Mapper's matching public operation (§4.5 map_tokens / map_tasks),
// merging each call's diagnostics into the running total since the
// Mapper only retains the most recent call's trace. A transient
// vector-index fault is translated into apperrors.ErrVectorIndexUnavailable
// and aborts the call instead of being folded into the unmapped count
// (§7 fault conditions).
func (e *Engine) mapAll(ctx context.Context, skills []skillmodel.ExtractedSkill, source skillmodel.SourceType, sourceText string, cfg config.Config, diagnostics *skillmodel.Diagnostics) ([]skillmodel.MappedSkill, error) {
	var tokens, tasks []skillmodel.ExtractedSkill
	for _, s := range skills {
		if s.IsTask {
			tasks = append(tasks, s)
		} else {
			tokens = append(tokens, s)
		}
	}
	mapped, err := e.mapper.MapTokens(ctx, tokens, source, sourceText, cfg)
	mergeDiagnostics(diagnostics, e.mapper.GetLastMappingDiagnostics())
	if err != nil {
		return nil, classifyMapperErr(err)
	}
	taskMapped, err := e.mapper.MapTasks(ctx, tasks, source, sourceText, cfg)
	mergeDiagnostics(diagnostics, e.mapper.GetLastMappingDiagnostics())
	if err != nil {
		return nil, classifyMapperErr(err)
	}
	mapped = append(mapped, taskMapped...)
	return mapped, nil
}

// classifyMapperErr translates a vector-index fault surfaced through the
// Mapper into the engine's fault sentinel so callers never need to know
// about internal/vectorindex directly.
func classifyMapperErr(err error) error {
	if errors.Is(err, vectorindex.ErrUnavailable) {
		return fmt.Errorf("%w: %v", apperrors.ErrVectorIndexUnavailable, err)
	}
	return err
}

// mergeDiagnostics folds one mapping call's diagnostics into the running
// total accumulated across the resume/job, token/task calls.
func mergeDiagnostics(total *skillmodel.Diagnostics, next skillmodel.Diagnostics) {
	if len(next.SkillDiagnostics) > 0 {
		if total.SkillDiagnostics == nil {
			total.SkillDiagnostics = make(map[string]skillmodel.TokenDiagnostics, len(next.SkillDiagnostics))
		}
		for k, v := range next.SkillDiagnostics {
			total.SkillDiagnostics[k] = v
		}
	}
	total.GateSummary.TotalTokens += next.GateSummary.TotalTokens
	total.GateSummary.UnmappedTokens += next.GateSummary.UnmappedTokens
	total.GateSummary.TopkBumps += next.GateSummary.TopkBumps
	total.GateSummary.RecipeSwitches += next.GateSummary.RecipeSwitches
	total.GateSummary.FloorNudges += next.GateSummary.FloorNudges
	total.GateSummary.ConservativeFallbacks += next.GateSummary.ConservativeFallbacks
	if next.CutoffStrategy != "" {
		total.CutoffStrategy = next.CutoffStrategy
	}
}

// buildJobText concatenates description, requirements, and an enrichment
// block (§4.2 step 2) essential for mapping quality.
func buildJobText(job store.Job) string {
	var b strings.Builder
	b.WriteString(job.Description)
	if job.Requirements != "" {
		b.WriteString("\n")
		b.WriteString(job.Requirements)
	}

	hasEnrichment := job.Title != "" || job.Company != "" || job.Location != "" ||
		len(job.RequiredSkills) > 0 || len(job.PreferredSkills) > 0
	if !hasEnrichment {
		return b.String()
	}

	b.WriteString("\n\n")
	if job.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", job.Title)
	}
	if job.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", job.Company)
	}
	if job.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", job.Location)
	}
	if len(job.RequiredSkills) > 0 {
		fmt.Fprintf(&b, "Required skills: %s\n", strings.Join(job.RequiredSkills, ", "))
	}
	if len(job.PreferredSkills) > 0 {
		fmt.Fprintf(&b, "Preferred skills: %s\n", strings.Join(job.PreferredSkills, ", "))
	}
	return b.String()
}
