package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const anthropicVersion = "2023-06-01"

// anthropicClient implements Client using the Anthropic Messages API.
type anthropicClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewAnthropicClient creates a Client that talks to the Anthropic Messages
// API. The caller is expected to have checked that an API key is configured.
func NewAnthropicClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &anthropicClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *anthropicClient) Name() string { return "anthropic" }

// messagesRequest is the JSON body sent to POST /v1/messages.
type messagesRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	System      string          `json:"system,omitempty"`
	Messages    []promptMessage `json:"messages"`
	Temperature float64         `json:"temperature,omitempty"`
}

type promptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the JSON body returned by POST /v1/messages.
type messagesResponse struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (c *anthropicClient) Complete(ctx context.Context, req Request) (*Response, error) {
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

	body := messagesRequest{
		Model:       c.cfg.AnthropicModel,
		MaxTokens:   maxTok,
		System:      req.SystemPrompt,
		Messages:    []promptMessage{{Role: "user", Content: req.UserPrompt}},
		Temperature: temp,
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		resp, err := c.doRequest(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Backend:   c.Name(),
				Model:     c.cfg.AnthropicModel,
				LatencyMs: latency,
				Success:   true,
			})
			return &Response{
				Text:      firstText(resp),
				Model:     resp.Model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry once the deadline has passed.
		if ctx.Err() != nil {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		Backend:   c.Name(),
		Model:     c.cfg.AnthropicModel,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if isConnectionError(lastErr) {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, lastErr)
	}
	return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *anthropicClient) doRequest(ctx context.Context, body messagesRequest) (*messagesResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.AnthropicBaseURL + "/v1/messages"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.cfg.AnthropicAPIKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("anthropic returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp messagesResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

func firstText(resp *messagesResponse) string {
	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text
		}
	}
	return ""
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
