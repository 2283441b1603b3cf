package quizgen

import (
	"context"

	"bookquiz-be/internal/pkg/logger"
	"bookquiz-be/pkg/llm"
)

// Stage 1 sampling: maximize thematic novelty.
const (
	themeTemperature = 1.0
	themeMaxTokens   = 2048
)

// ThemeGenerator runs stage 1 of the pipeline. Transport and parse failures
// collapse into an empty result; the orchestrator decides how hard to stop.
type ThemeGenerator struct {
	provider llm.CompletionProvider
	log      logger.ILogger
}

func NewThemeGenerator(provider llm.CompletionProvider, log logger.ILogger) *ThemeGenerator {
	return &ThemeGenerator{
		provider: provider,
		log:      log,
	}
}

func (g *ThemeGenerator) Generate(ctx context.Context, bookTitle string, author *string, existingThemes []string) []string {
	prompt := BuildThemePrompt(bookTitle, author, existingThemes)

	raw, err := g.provider.Complete(ctx, prompt,
		llm.WithTemperature(themeTemperature),
		llm.WithMaxTokens(themeMaxTokens),
	)
	if err != nil {
		g.log.Error("quizgen", "Theme generation call failed", map[string]interface{}{
			"error": err.Error(),
			"book":  bookTitle,
		})
		return nil
	}

	themes, err := ExtractThemes(raw)
	if err != nil {
		g.log.Error("quizgen", "Theme response did not parse", map[string]interface{}{
			"error": err.Error(),
			"book":  bookTitle,
		})
		return nil
	}

	return themes
}
