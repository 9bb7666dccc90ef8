// Package reflection orchestrates reflection synthesis for a completed
// day: build the day's prompt, call the external text provider, clean
// its output, and fall back to deterministic sentiment synthesis when
// the provider is absent, fails, or returns nothing usable.
package reflection

import (
	"context"
	"log/slog"

	"github.com/petrichorlab/eightdays/internal/model"
	"github.com/petrichorlab/eightdays/internal/provider"
	"github.com/petrichorlab/eightdays/internal/services/sentiment"
	"github.com/petrichorlab/eightdays/internal/services/textnorm"
)

// Pipeline produces the reflection text for a completed day
type Pipeline struct {
	provider provider.TextProvider // nil when no provider is configured
	logger   *slog.Logger
}

// NewPipeline creates a reflection pipeline. A nil provider is valid;
// every generation then uses the fallback synthesizer.
func NewPipeline(p provider.TextProvider, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		provider: p,
		logger:   logger.With(slog.String("component", "reflection")),
	}
}

// Generate returns the reflection for a day. It never fails: provider
// errors are absorbed by the deterministic fallback, so a completed day
// always gets a non-empty reflection.
func (p *Pipeline) Generate(ctx context.Context, day int, data *model.DayData) string {
	var answer1, answer2 string
	if data != nil {
		answer1 = data.Parties[0].Headline()
		answer2 = data.Parties[1].Headline()
	}

	if p.provider != nil {
		prompt := buildPrompt(day, answer1, answer2)
		text, err := p.provider.Complete(ctx, prompt)
		if err != nil {
			p.logger.Warn("provider call failed, using fallback",
				slog.Int("day", day),
				slog.String("error", err.Error()))
		} else {
			normalized := textnorm.Normalize(text)
			if normalized != "" {
				return normalized
			}
			// Everything the provider produced was filtered out as
			// incomplete; treat it the same as a provider failure.
			p.logger.Warn("provider output empty after normalization, using fallback",
				slog.Int("day", day))
		}
	}

	return sentiment.Render(day, answer1, answer2)
}
