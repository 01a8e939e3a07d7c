package generator

import (
	"context"
	"fmt"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/averyhall/tempo/internal/llm"
)

// Draft is a validated candidate schedule produced by one backend.
type Draft struct {
	Placements []domain.ScheduledPlacement
	Reasoning  string
	Confidence float64
	Algorithm  string
}

// Provider is one strategy in the generation chain. AttemptGenerate returns
// a draft on success; any error means the orchestrator should fall through
// to the next provider.
type Provider interface {
	Name() string
	AttemptGenerate(ctx context.Context, gc Context) (*Draft, error)
}

// llmProvider adapts an llm.Client into a Provider.
type llmProvider struct {
	client llm.Client
}

// NewLLMProvider wraps a backend client as a chain provider.
func NewLLMProvider(client llm.Client) Provider {
	return &llmProvider{client: client}
}

func (p *llmProvider) Name() string { return p.client.Name() }

func (p *llmProvider) AttemptGenerate(ctx context.Context, gc Context) (*Draft, error) {
	system, user := BuildPrompt(gc)

	resp, err := p.client.Complete(ctx, llm.Request{
		SystemPrompt: system,
		UserPrompt:   user,
	})
	if err != nil {
		return nil, fmt.Errorf("%s completion: %w", p.Name(), err)
	}

	parsed, err := llm.ExtractJSON[draftSchedule](resp.Text, validateDraft)
	if err != nil {
		return nil, fmt.Errorf("%s draft: %w", p.Name(), err)
	}

	return &Draft{
		Placements: parsed.toPlacements(gc.WeekStart, gc.Location),
		Reasoning:  parsed.Reasoning,
		Confidence: parsed.Confidence,
		Algorithm:  p.Name() + ":" + resp.Model,
	}, nil
}
