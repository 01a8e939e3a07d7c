// Package llm provides clients for the generative backends used to draft
// weekly schedules: Anthropic's Messages API and any OpenAI-compatible chat
// endpoint. Clients share one small interface so the generator can chain
// them without caring which vendor is behind it.
package llm

import "context"

// Request holds the parameters for one completion call.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses the configured default
	MaxTokens    *int     // nil uses the configured default
}

// Response holds the result of one completion call.
type Response struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client is a single generative backend.
type Client interface {
	// Complete sends a prompt and returns the raw text response.
	Complete(ctx context.Context, req Request) (*Response, error)

	// Name identifies the backend in logs and suggestion metadata.
	Name() string
}
