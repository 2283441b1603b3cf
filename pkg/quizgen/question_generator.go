package quizgen

import (
	"context"

	"bookquiz-be/internal/pkg/logger"
	"bookquiz-be/pkg/llm"
)

// Stage 2 sampling: balanced creativity, larger budget for batch output.
const (
	questionTemperature = 0.7
	questionMaxTokens   = 4096
)

// QuestionGenerator runs stage 2: one batched prompt covering every theme
// with its assigned angles. The per-theme grouping of the reply is kept so
// persistence can link each question to its originating theme.
type QuestionGenerator struct {
	provider llm.CompletionProvider
	log      logger.ILogger
}

func NewQuestionGenerator(provider llm.CompletionProvider, log logger.ILogger) *QuestionGenerator {
	return &QuestionGenerator{
		provider: provider,
		log:      log,
	}
}

func (g *QuestionGenerator) Generate(ctx context.Context, bookTitle string, author *string, themesWithAngles []ThemeWithAngles) []ThemeQuestions {
	prompt := BuildQuestionPrompt(bookTitle, author, themesWithAngles)

	raw, err := g.provider.Complete(ctx, prompt,
		llm.WithTemperature(questionTemperature),
		llm.WithMaxTokens(questionMaxTokens),
	)
	if err != nil {
		g.log.Error("quizgen", "Question generation call failed", map[string]interface{}{
			"error": err.Error(),
			"book":  bookTitle,
		})
		return nil
	}

	results, err := ExtractResults(raw)
	if err != nil {
		g.log.Error("quizgen", "Question response did not parse", map[string]interface{}{
			"error": err.Error(),
			"book":  bookTitle,
		})
		return nil
	}

	return results
}
