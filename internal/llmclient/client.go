// Package llmclient provides the language-model client collaborator
// (external interface (d), §6): a single Complete call that asks for
// output conforming to a JSON Schema, used by internal/extractor.
package llmclient

import (
	"context"
	"time"
)

// Client is the LLM collaborator's contract. response_schema is a JSON
// Schema document (as a string) the implementation should request
// structured output against where the provider supports it. Complete
// returns the raw response text; validating it against the schema is
// left to the caller (internal/extractor).
type Client interface {
	Complete(ctx context.Context, prompt string, responseSchema string, timeout time.Duration) (string, error)
	IsHealthy(ctx context.Context) bool
	ProviderName() string
}
