package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// openaiClient implements Client for any OpenAI-compatible chat endpoint.
type openaiClient struct {
	cfg      Config
	api      *openai.Client
	observer Observer
}

// NewOpenAIClient creates a Client backed by the OpenAI chat completions
// API. A non-empty OpenAIBaseURL points it at a compatible proxy instead.
func NewOpenAIClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	apiCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		apiCfg.BaseURL = cfg.OpenAIBaseURL
	}
	return &openaiClient{
		cfg:      cfg,
		api:      openai.NewClientWithConfig(apiCfg),
		observer: observer,
	}
}

func (c *openaiClient) Name() string { return "openai" }

func (c *openaiClient) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	temp := c.cfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := c.cfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
	}
	if req.SystemPrompt != "" {
		messages = append([]openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
		}, messages...)
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.OpenAIModel,
		Messages:    messages,
		Temperature: float32(temp),
		MaxTokens:   maxTok,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	latency := time.Since(start).Milliseconds()

	if err != nil {
		mapped := mapOpenAIError(ctx, err)
		c.observer.OnCallComplete(CallEvent{
			Backend:   c.Name(),
			Model:     c.cfg.OpenAIModel,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(mapped),
		})
		return nil, mapped
	}
	if len(resp.Choices) == 0 {
		c.observer.OnCallComplete(CallEvent{
			Backend:   c.Name(),
			Model:     c.cfg.OpenAIModel,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: "INVALID_OUTPUT",
		})
		return nil, fmt.Errorf("%w: response had no choices", ErrInvalidOutput)
	}

	c.observer.OnCallComplete(CallEvent{
		Backend:   c.Name(),
		Model:     resp.Model,
		LatencyMs: latency,
		Success:   true,
	})
	return &Response{
		Text:      resp.Choices[0].Message.Content,
		Model:     resp.Model,
		LatencyMs: latency,
	}, nil
}

func mapOpenAIError(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	if isConnectionError(err) {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return fmt.Errorf("openai completion: %w", err)
}
