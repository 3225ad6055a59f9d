package llmclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// ClaudeClient implements Client against Anthropic's Messages API,
// matching the request shape and markdown-fence stripping of similar
// LLM provider clients in the reference corpus, with a rate limiter
// (golang.org/x/time/rate) added to bound outbound call volume.
type ClaudeClient struct {
	client  anthropic.Client
	model   string
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewClaudeClient builds a client reading the API key from apiKey,
// targeting model, rate-limited to rps requests/second.
func NewClaudeClient(apiKey, model string, rps float64, logger zerolog.Logger) *ClaudeClient {
	return &ClaudeClient{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  logger,
	}
}

func (c *ClaudeClient) ProviderName() string { return "claude" }

// Complete sends prompt to Claude and returns the raw text response, with
// surrounding markdown code fences stripped. responseSchema is appended
// to the prompt as an explicit instruction — Claude's Messages API has no
// native JSON-mode, so schema conformance is enforced by instruction plus
// the caller's own post-hoc gojsonschema validation (internal/extractor).
func (c *ClaudeClient) Complete(ctx context.Context, prompt, responseSchema string, timeout time.Duration) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("llmclient: rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fullPrompt := prompt
	if responseSchema != "" {
		fullPrompt = prompt + "\n\nRespond with ONLY a JSON object conforming to this schema, no prose, no markdown fences:\n" + responseSchema
	}

	c.logger.Debug().Int("prompt_length", len(fullPrompt)).Msg("calling claude")

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 4096,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: fullPrompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("llmclient: claude call: %w", err)
	}

	return extractText(resp), nil
}

func extractText(resp *anthropic.Message) string {
	var text string
	for _, block := range resp.Content {
		text = block.AsText().Text
		break
	}
	return stripFences(strings.TrimSpace(text))
}

func stripFences(s string) string {
	switch {
	case strings.HasPrefix(s, "```json"):
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	case strings.HasPrefix(s, "```"):
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

func (c *ClaudeClient) IsHealthy(ctx context.Context) bool {
	_, err := c.Complete(ctx, "ping", "", 10*time.Second)
	return err == nil
}
