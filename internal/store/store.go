// Package store implements the persistence collaborator (external
// interface (e), §6): Postgres-backed ExtractionCache, ProcessingRun,
// GapAnalysisResult, and ReportStatus tables, plus narrow read-only
// Resume/Job lookups (collaborators (a) and (b)). Query style is plain
// database/sql with INSERT...ON CONFLICT and
// fmt.Errorf("...: %w", err) wrapping.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Open opens a Postgres connection pool at dsn using database/sql with
// the lib/pq driver registration.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return db, nil
}

// Resume is the read-only shape exposed by collaborator (a), §6.
type Resume struct {
	ID              string
	UserID          string
	RawText         string
	ProcessingRunID string
}

// Job is the read-only shape exposed by collaborator (b), §6.
type Job struct {
	ID              string
	Title           string
	Company         string
	Location        string
	Description     string
	Requirements    string
	RequiredSkills  []string
	PreferredSkills []string
}

// ResumeStore implements collaborator (a): get_default_resume.
type ResumeStore struct{ db *sql.DB }

// NewResumeStore builds a ResumeStore.
func NewResumeStore(db *sql.DB) *ResumeStore { return &ResumeStore{db: db} }

// GetDefaultResume looks up the candidate's default resume, returning
// (nil, nil) when absent (§6 (a): "Resume | None").
func (s *ResumeStore) GetDefaultResume(ctx context.Context, userID string) (*Resume, error) {
	var r Resume
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, raw_text, COALESCE(processing_run_id, '')
		FROM resumes
		WHERE user_id = $1 AND is_default = true
		ORDER BY created_at DESC
		LIMIT 1`, userID,
	).Scan(&r.ID, &r.UserID, &r.RawText, &r.ProcessingRunID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get default resume: %w", err)
	}
	return &r, nil
}

// GetByID reloads a resume by its stable identifier. Not one of the
// named collaborator (a) operations, but required so CareerEngine.analyze
// (§4.2 step 1) can reload the resume the orchestrator already resolved.
func (s *ResumeStore) GetByID(ctx context.Context, resumeID string) (*Resume, error) {
	var r Resume
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, raw_text, COALESCE(processing_run_id, '')
		FROM resumes WHERE id = $1`, resumeID,
	).Scan(&r.ID, &r.UserID, &r.RawText, &r.ProcessingRunID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get resume by id: %w", err)
	}
	return &r, nil
}

// JobStore implements collaborator (b): get_job.
type JobStore struct{ db *sql.DB }

// NewJobStore builds a JobStore.
func NewJobStore(db *sql.DB) *JobStore { return &JobStore{db: db} }

// GetJob looks up a job posting, returning (nil, nil) when absent.
func (s *JobStore) GetJob(ctx context.Context, jobID string) (*Job, error) {
	var j Job
	var requiredSkills, preferredSkills stringArray
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, COALESCE(company, ''), COALESCE(location, ''),
		       description, COALESCE(requirements, ''),
		       required_skills, preferred_skills
		FROM jobs
		WHERE id = $1`, jobID,
	).Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Description, &j.Requirements,
		&requiredSkills, &preferredSkills)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get job: %w", err)
	}
	j.RequiredSkills = []string(requiredSkills)
	j.PreferredSkills = []string(preferredSkills)
	return &j, nil
}
