// Package obslog provides the structured logging wrapper used across every
// pipeline stage: a single zerolog sink, matching the field-oriented
// logging style used for outbound calls across the reference corpus
// (see DESIGN.md).
package obslog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the root logger. format is "json" (production default) or
// "text" (human-readable console output, for local development).
func New(format string, level string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if format == "text" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Stage returns a sub-logger scoped to one pipeline stage and request,
// the equivalent of the reference corpus's per-call logrus.Fields blocks.
func Stage(l zerolog.Logger, stage, resumeID, jobID string) zerolog.Logger {
	return l.With().
		Str("stage", stage).
		Str("resume_id", resumeID).
		Str("job_id", jobID).
		Logger()
}
