// Package apperrors centralizes the sentinel error kinds surfaced by the
// core across component boundaries (§6, §7). Callers branch on these with
// errors.Is/errors.As; the underlying wrapped message is always preserved
// verbatim for logging (§4.1).
package apperrors

import "errors"

var (
	// Input errors (§7): not retried, surfaced to the caller as explicit
	// "not ready" conditions rather than faults.
	ErrNoDefaultResume = errors.New("careerengine: no default resume for user")
	ErrJobNotFound     = errors.New("careerengine: job not found")
	ErrResumeMissing   = errors.New("careerengine: resume text missing")

	// Fault conditions (§6, §7).
	ErrExtractionFailed      = errors.New("careerengine: extraction failed")
	ErrExtractionPending     = errors.New("careerengine: extraction still running")
	ErrVectorIndexUnavailable = errors.New("careerengine: vector index unavailable")
	ErrPersistenceFailed     = errors.New("careerengine: persistence failed")
)
