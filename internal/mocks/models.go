package mocks

import (
	"context"
	"sync"

	"github.com/pep299/vc-briefing/internal/repository"
)

// Mock summarization model
type MockSummaryRepo struct {
	Response string
	Err      error

	mu      sync.Mutex
	calls   int
	prompts []string
}

func (m *MockSummaryRepo) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockSummaryRepo) Model() string {
	return "mock-gemini"
}

func (m *MockSummaryRepo) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockSummaryRepo) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// Mock drafting model
type MockDraftRepo struct {
	Response string
	Err      error
	// Wait, when set, makes Draft block until the context is done.
	Wait bool

	mu       sync.Mutex
	calls    int
	requests []repository.DraftRequest
}

func (m *MockDraftRepo) Draft(ctx context.Context, req repository.DraftRequest) (string, error) {
	m.mu.Lock()
	m.calls++
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.Wait {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockDraftRepo) Name() string {
	return "mock-drafter"
}

func (m *MockDraftRepo) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockDraftRepo) LastRequest() repository.DraftRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return repository.DraftRequest{}
	}
	return m.requests[len(m.requests)-1]
}
