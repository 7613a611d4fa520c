package service

import (
	"context"
	"strings"

	"github.com/pep299/vc-briefing/internal/repository"
)

// Summarizer distills deck text into a bounded bullet list
type Summarizer struct {
	model repository.SummaryRepository
}

func NewSummarizer(model repository.SummaryRepository) *Summarizer {
	return &Summarizer{
		model: model,
	}
}

// Summarize makes exactly one call to the summarization model and returns
// up to MaxBullets bullets in the model's order.
func (s *Summarizer) Summarize(ctx context.Context, deckText string) ([]string, error) {
	if s == nil || s.model == nil {
		return nil, &ConfigurationError{Field: "GEMINI_API_KEY", Message: "summarization client is not configured"}
	}
	if strings.TrimSpace(deckText) == "" {
		return nil, &ValidationError{Field: "deckText", Message: "deckText required"}
	}

	raw, err := s.model.GenerateText(ctx, buildSummaryPrompt(deckText))
	if err != nil {
		return nil, &UpstreamError{Service: "summarization", Message: "request failed", Err: err}
	}

	bullets := ParseBullets(raw)
	if len(bullets) == 0 {
		return nil, &UpstreamError{Service: "summarization", Message: "response contained no bullets"}
	}
	return bullets, nil
}
