package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pep299/vc-briefing/internal/config"
	"github.com/pep299/vc-briefing/internal/drafter"
	"github.com/pep299/vc-briefing/internal/gemini"
	"github.com/pep299/vc-briefing/internal/repository"
	"github.com/pep299/vc-briefing/internal/service"
	"github.com/pep299/vc-briefing/internal/transport/handler"
)

// Version is stamped at build time with -ldflags "-X .../internal/application.Version=..."
var Version = "dev"

// Application represents the application with all business logic components
type Application struct {
	Config          *config.Config
	Generator       *service.Generator
	Summarizer      *service.Summarizer
	GenerateHandler *handler.Generate
	HealthHandler   *handler.Health
	PageHandler     *handler.Page
}

// New creates a new application instance with all dependencies. The model
// clients are built once here and shared by every request.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			return nil, &service.ConfigurationError{Field: configErr.Field, Message: configErr.Message}
		}
		return nil, err
	}

	// Create model clients
	geminiClient, err := gemini.NewClient(ctx, gemini.Options{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	draftRepo, err := drafter.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating %s drafter: %w", cfg.DraftProvider, err)
	}

	// Create services (business logic)
	summarizer := service.NewSummarizer(repository.NewGeminiRepository(geminiClient))
	writer := service.NewBriefWriter(draftRepo, service.WriterOptions{
		Temperature: cfg.BriefTemperature,
		MaxTokens:   cfg.BriefMaxTokens,
		MaxWords:    cfg.BriefMaxWords,
	})
	generator := service.NewGenerator(summarizer, writer, service.Conditioning(cfg.BriefConditioning))

	// Create handlers (HTTP layer)
	return &Application{
		Config:          cfg,
		Generator:       generator,
		Summarizer:      summarizer,
		GenerateHandler: handler.NewGenerate(generator),
		HealthHandler:   handler.NewHealth(Version),
		PageHandler:     handler.NewPage(cfg.DefaultPersona, cfg.CTAURL),
	}, nil
}

// RequestTimeout is the per-request deadline the HTTP layer applies
func (a *Application) RequestTimeout() time.Duration {
	return time.Duration(a.Config.RequestTimeoutSeconds) * time.Second
}
