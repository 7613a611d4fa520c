package repository

import (
	"context"

	"github.com/pep299/vc-briefing/internal/gemini"
)

// SummaryRepository is the summarization model endpoint: one prompt in, free text out.
type SummaryRepository interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Model() string
}

type geminiRepository struct {
	client *gemini.Client
}

func NewGeminiRepository(client *gemini.Client) SummaryRepository {
	return &geminiRepository{
		client: client,
	}
}

func (g *geminiRepository) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.client.GenerateText(ctx, prompt)
}

func (g *geminiRepository) Model() string {
	return g.client.Model()
}
