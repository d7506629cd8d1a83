// Package advice produces the dashboard's motivational study tip. The tip
// comes from the LLM when one is configured; every failure mode degrades
// to a fixed string, so callers never see an error and never block past
// the LLM timeout.
package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ptemaster/internal/llm"
)

const (
	// fallbackEncouragement replaces an empty model response.
	fallbackEncouragement = "Keep pushing! Every task completed is a step closer to your dream score."

	// fallbackOffline replaces the tip when the model is disabled or the
	// call fails.
	fallbackOffline = "Consistent practice is the key to mastering the PTE. Focus on your weak areas today."
)

const systemPrompt = "You are an encouraging study coach for the PTE (Pearson Test of English). Answer in at most two sentences of plain text."

// Coach provides study advice. The returned text is always non-empty; its
// content is never load-bearing.
type Coach interface {
	StudyAdvice(ctx context.Context, completedCount, totalCount int) string
}

type llmCoach struct {
	client llm.Client
}

// NewCoach creates a Coach backed by the given LLM client. A nil client
// yields the static offline tip on every call.
func NewCoach(client llm.Client) Coach {
	return &llmCoach{client: client}
}

func (c *llmCoach) StudyAdvice(ctx context.Context, completedCount, totalCount int) string {
	if c.client == nil {
		return fallbackOffline
	}

	prompt := fmt.Sprintf(
		"I am a student preparing for the PTE exam. Today I have completed %d out of %d tasks.\n"+
			"Provide a short, highly motivating 2-sentence study tip or encouragement. "+
			"Keep it practical and specific to PTE (Pearson Test of English).",
		completedCount, totalCount)

	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return fallbackOffline
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return fallbackEncouragement
	}
	return text
}
