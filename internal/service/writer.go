package service

import (
	"context"
	"strings"

	"github.com/pep299/vc-briefing/internal/repository"
)

// WriterOptions are the fixed sampling parameters for every draft
type WriterOptions struct {
	Temperature float64
	MaxTokens   int
	// MaxWords hard-caps the brief; zero keeps the 300-word limit a prompt instruction only.
	MaxWords int
}

// BriefWriter turns bullets (or raw deck text) plus a persona into a brief
type BriefWriter struct {
	model repository.DraftRepository
	opts  WriterOptions
}

func NewBriefWriter(model repository.DraftRepository, opts WriterOptions) *BriefWriter {
	return &BriefWriter{
		model: model,
		opts:  opts,
	}
}

// Write drafts a brief conditioned on the bullet list
func (w *BriefWriter) Write(ctx context.Context, bullets []string, persona string) (string, error) {
	if err := w.check(persona); err != nil {
		return "", err
	}
	return w.draft(ctx, buildBriefPrompt(persona, bullets))
}

// WriteFromDeck drafts a brief conditioned on the raw deck text
func (w *BriefWriter) WriteFromDeck(ctx context.Context, deckText, persona string) (string, error) {
	if err := w.check(persona); err != nil {
		return "", err
	}
	if strings.TrimSpace(deckText) == "" {
		return "", &ValidationError{Field: "deckText", Message: "deckText required"}
	}
	return w.draft(ctx, buildDeckBriefPrompt(persona, deckText))
}

func (w *BriefWriter) check(persona string) error {
	if w == nil || w.model == nil {
		return &ConfigurationError{Field: "OPENAI_API_KEY", Message: "drafting client is not configured"}
	}
	if strings.TrimSpace(persona) == "" {
		return &ValidationError{Field: "vcPersona", Message: "vcPersona required"}
	}
	return nil
}

func (w *BriefWriter) draft(ctx context.Context, prompt string) (string, error) {
	content, err := w.model.Draft(ctx, repository.DraftRequest{
		System:      briefSystemPrompt,
		Prompt:      prompt,
		Temperature: w.opts.Temperature,
		MaxTokens:   w.opts.MaxTokens,
	})
	if err != nil {
		return "", &UpstreamError{Service: "drafting", Message: "request failed", Err: err}
	}

	brief := strings.TrimSpace(content)
	if brief == "" {
		return "", &UpstreamError{Service: "drafting", Message: "response was empty"}
	}

	return strings.TrimSpace(TruncateWords(brief, w.opts.MaxWords)), nil
}
