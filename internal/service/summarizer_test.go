package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pep299/vc-briefing/internal/mocks"
)

func TestSummarizer_Summarize(t *testing.T) {
	repo := &mocks.MockSummaryRepo{Response: "- Problem: X\n- Solution: Y\n- Market: $1B\n- Team: ex-FAANG\n- Traction: $10k MRR\n- Extra: ignored"}
	s := NewSummarizer(repo)

	bullets, err := s.Summarize(context.Background(), "Problem: X. Solution: Y.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(bullets) != 5 {
		t.Fatalf("Expected 5 bullets, got %d", len(bullets))
	}
	if bullets[0] != "Problem: X" || bullets[4] != "Traction: $10k MRR" {
		t.Errorf("Unexpected bullets: %q", bullets)
	}

	if repo.Calls() != 1 {
		t.Errorf("Expected 1 upstream call, got %d", repo.Calls())
	}
	if !strings.Contains(repo.LastPrompt(), "Problem: X. Solution: Y.") {
		t.Errorf("Expected deck text in prompt, got %q", repo.LastPrompt())
	}
	if !strings.Contains(repo.LastPrompt(), "5 concise bullet points") {
		t.Errorf("Expected bullet instruction in prompt, got %q", repo.LastPrompt())
	}
}

func TestSummarizer_FewerBulletsAreNotPadded(t *testing.T) {
	s := NewSummarizer(&mocks.MockSummaryRepo{Response: "- Only one takeaway"})

	bullets, err := s.Summarize(context.Background(), "deck")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(bullets) != 1 {
		t.Errorf("Expected 1 bullet, got %d", len(bullets))
	}
}

func TestSummarizer_Errors(t *testing.T) {
	upstreamFailure := errors.New("Gemini API request failed: 503")

	tests := []struct {
		name       string
		summarizer *Summarizer
		deckText   string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "missing client",
			summarizer: NewSummarizer(nil),
			deckText:   "deck",
			check: func(t *testing.T, err error) {
				var configErr *ConfigurationError
				if !errors.As(err, &configErr) {
					t.Errorf("Expected ConfigurationError, got %T (%v)", err, err)
				}
			},
		},
		{
			name:       "remote failure",
			summarizer: NewSummarizer(&mocks.MockSummaryRepo{Err: upstreamFailure}),
			deckText:   "deck",
			check: func(t *testing.T, err error) {
				var upstreamErr *UpstreamError
				if !errors.As(err, &upstreamErr) {
					t.Fatalf("Expected UpstreamError, got %T (%v)", err, err)
				}
				if !errors.Is(err, upstreamFailure) {
					t.Errorf("Expected cause to be preserved, got %v", err)
				}
			},
		},
		{
			name:       "no usable text",
			summarizer: NewSummarizer(&mocks.MockSummaryRepo{Response: "\n  -  \n"}),
			deckText:   "deck",
			check: func(t *testing.T, err error) {
				var upstreamErr *UpstreamError
				if !errors.As(err, &upstreamErr) {
					t.Errorf("Expected UpstreamError, got %T (%v)", err, err)
				}
			},
		},
		{
			name:       "blank deck",
			summarizer: NewSummarizer(&mocks.MockSummaryRepo{Response: "- x"}),
			deckText:   "   ",
			check: func(t *testing.T, err error) {
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Errorf("Expected ValidationError, got %T (%v)", err, err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bullets, err := tt.summarizer.Summarize(context.Background(), tt.deckText)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if bullets != nil {
				t.Errorf("Expected no bullets on error, got %q", bullets)
			}
			tt.check(t, err)
		})
	}
}
