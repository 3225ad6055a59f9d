// Package orchestrator sequences the analysis pipeline with explicit
// error short-circuiting (§4.1): ResolveResume → ResolveJob → RunAnalysis.
// Each state receives the same state record; once an error is set, every
// later state is a no-op that passes the record through unchanged. This
// is the orchestrator's only control-flow primitive — no branching, no
// loops.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/careerengine/careerengine/internal/apperrors"
	"github.com/careerengine/careerengine/internal/skillmodel"
	"github.com/careerengine/careerengine/internal/store"
)

// State is the shared record threaded through every pipeline state (§4.1).
type State struct {
	UserID   string
	JobID    string
	ResumeID string
	Result   *skillmodel.GapAnalysisResult
	Err      error
}

// resumeResolver is the ResolveResume state's sole dependency.
type resumeResolver interface {
	GetDefaultResume(ctx context.Context, userID string) (*store.Resume, error)
}

// jobValidator is the ResolveJob state's sole dependency.
type jobValidator interface {
	GetJob(ctx context.Context, jobID string) (*store.Job, error)
}

// analyzer is the RunAnalysis state's sole dependency — CareerEngine.analyze.
type analyzer interface {
	Analyze(ctx context.Context, resumeID, jobID string, policyOverrides map[string]any) (skillmodel.GapAnalysisResult, error)
}

// Orchestrator runs the three named states in order.
type Orchestrator struct {
	resumes resumeResolver
	jobs    jobValidator
	engine  analyzer
	logger  zerolog.Logger
}

// New builds an Orchestrator from its three collaborators.
func New(resumes resumeResolver, jobs jobValidator, engine analyzer, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{resumes: resumes, jobs: jobs, engine: engine, logger: logger}
}

// Run drives START → ResolveResume → ResolveJob → RunAnalysis → END for one
// (user_id, job_id) request, returning the GapAnalysisResult or the first
// error raised by any state.
func (o *Orchestrator) Run(ctx context.Context, userID, jobID string, policyOverrides map[string]any) (skillmodel.GapAnalysisResult, error) {
	state := &State{UserID: userID, JobID: jobID}

	o.resolveResume(ctx, state)
	o.resolveJob(ctx, state)
	o.runAnalysis(ctx, state, policyOverrides)

	if state.Err != nil {
		o.logger.Error().Err(state.Err).Str("user_id", userID).Str("job_id", jobID).Msg("analysis pipeline failed")
		return skillmodel.GapAnalysisResult{}, state.Err
	}
	return *state.Result, nil
}

// resolveResume sets state.ResumeID to the user's default resume, failing
// with ErrNoDefaultResume when none exists (§4.1).
func (o *Orchestrator) resolveResume(ctx context.Context, state *State) {
	if state.Err != nil {
		return
	}
	resume, err := o.resumes.GetDefaultResume(ctx, state.UserID)
	if err != nil {
		state.Err = fmt.Errorf("%w: %v", apperrors.ErrPersistenceFailed, err)
		return
	}
	if resume == nil {
		state.Err = apperrors.ErrNoDefaultResume
		return
	}
	state.ResumeID = resume.ID
}

// resolveJob validates that state.JobID refers to an existing job, failing
// with ErrJobNotFound otherwise (§4.1). No-op if a prior state errored.
func (o *Orchestrator) resolveJob(ctx context.Context, state *State) {
	if state.Err != nil {
		return
	}
	job, err := o.jobs.GetJob(ctx, state.JobID)
	if err != nil {
		state.Err = fmt.Errorf("%w: %v", apperrors.ErrPersistenceFailed, err)
		return
	}
	if job == nil {
		state.Err = apperrors.ErrJobNotFound
		return
	}
}

// runAnalysis invokes CareerEngine.analyze and attaches its result to the
// state record (§4.1). No-op if a prior state errored.
func (o *Orchestrator) runAnalysis(ctx context.Context, state *State, policyOverrides map[string]any) {
	if state.Err != nil {
		return
	}
	result, err := o.engine.Analyze(ctx, state.ResumeID, state.JobID, policyOverrides)
	if err != nil {
		state.Err = err
		return
	}
	state.Result = &result
}
