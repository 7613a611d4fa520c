// Package drafter holds the drafting model clients used to write investor briefs.
package drafter

import (
	"errors"
	"fmt"

	"github.com/pep299/vc-briefing/internal/config"
	"github.com/pep299/vc-briefing/internal/repository"
)

// ErrNoResponse is returned when the provider answers without any choice or content block.
var ErrNoResponse = errors.New("no response from API")

// New builds the drafter selected by cfg.DraftProvider.
func New(cfg *config.Config) (repository.DraftRepository, error) {
	switch cfg.DraftProvider {
	case config.ProviderOpenAI:
		d, err := NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		if err != nil {
			return nil, err
		}
		return d, nil
	case config.ProviderAnthropic:
		d, err := NewAnthropic(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.AnthropicBaseURL)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown draft provider: %s", cfg.DraftProvider)
	}
}
