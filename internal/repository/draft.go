package repository

import "context"

// DraftRequest is a single non-streaming drafting call
type DraftRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// DraftRepository is the drafting model endpoint
type DraftRepository interface {
	Draft(ctx context.Context, req DraftRequest) (string, error)
	Name() string
}
