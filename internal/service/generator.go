package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"golang.org/x/sync/errgroup"

	"github.com/pep299/vc-briefing/internal/model"
)

// Conditioning selects what the drafting model is given
type Conditioning string

const (
	// ConditionOnBullets runs the stages in sequence and drafts from the bullets.
	ConditionOnBullets Conditioning = "bullets"
	// ConditionOnDeck drafts from the raw deck text, so both stages run concurrently.
	ConditionOnDeck Conditioning = "deck"
)

// Generator runs the two-stage pipeline: bullets, then brief. Any failure
// aborts the run and no partial result is returned.
type Generator struct {
	summarizer   *Summarizer
	writer       *BriefWriter
	conditioning Conditioning
}

func NewGenerator(summarizer *Summarizer, writer *BriefWriter, conditioning Conditioning) *Generator {
	if conditioning == "" {
		conditioning = ConditionOnBullets
	}
	return &Generator{
		summarizer:   summarizer,
		writer:       writer,
		conditioning: conditioning,
	}
}

// Conditioning reports the configured drafting contract
func (g *Generator) Conditioning() Conditioning {
	return g.conditioning
}

// Generate validates both inputs, then produces bullets and a brief with fresh
// upstream calls.
func (g *Generator) Generate(ctx context.Context, deckText, persona string) (*model.GenerationResult, error) {
	if strings.TrimSpace(deckText) == "" {
		return nil, &ValidationError{Field: "deckText", Message: "deckText required"}
	}
	if strings.TrimSpace(persona) == "" {
		return nil, &ValidationError{Field: "vcPersona", Message: "vcPersona required"}
	}

	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	startTime := time.Now()
	logger.Printf("Brief generation started conditioning=%s deck_chars=%d", g.conditioning, len(deckText))

	var (
		result *model.GenerationResult
		err    error
	)
	if g.conditioning == ConditionOnDeck {
		result, err = g.generateFromDeck(ctx, deckText, persona)
	} else {
		result, err = g.generateFromBullets(ctx, logger, deckText, persona)
	}
	if err != nil {
		logger.Printf("Brief generation failed duration_ms=%d: %v", time.Since(startTime).Milliseconds(), err)
		return nil, err
	}

	logger.Printf("Brief generation completed bullets=%d brief_chars=%d total_duration_ms=%d",
		len(result.Bullets), len(result.Brief), time.Since(startTime).Milliseconds())
	return result, nil
}

func (g *Generator) generateFromBullets(ctx context.Context, logger *log.Logger, deckText, persona string) (*model.GenerationResult, error) {
	// Summarization phase
	summaryStart := time.Now()
	bullets, err := g.summarizer.Summarize(ctx, deckText)
	if err != nil {
		return nil, err
	}
	logger.Printf("Bullets ready count=%d summary_duration_ms=%d", len(bullets), time.Since(summaryStart).Milliseconds())

	// Drafting phase
	draftStart := time.Now()
	brief, err := g.writer.Write(ctx, bullets, persona)
	if err != nil {
		return nil, err
	}
	logger.Printf("Brief ready draft_duration_ms=%d", time.Since(draftStart).Milliseconds())

	return &model.GenerationResult{Bullets: bullets, Brief: brief}, nil
}

func (g *Generator) generateFromDeck(ctx context.Context, deckText, persona string) (*model.GenerationResult, error) {
	var (
		bullets []string
		brief   string
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		bullets, err = g.summarizer.Summarize(egCtx, deckText)
		return err
	})
	eg.Go(func() error {
		var err error
		brief, err = g.writer.WriteFromDeck(egCtx, deckText, persona)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &model.GenerationResult{Bullets: bullets, Brief: brief}, nil
}
