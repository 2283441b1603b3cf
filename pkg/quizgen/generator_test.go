package quizgen

import (
	"context"
	"errors"
	"testing"

	"bookquiz-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubProvider struct {
	reply string
	err   error

	lastPrompt  string
	lastOptions llm.Options
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.reply, p.err
}

func (p *stubProvider) Complete(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.lastPrompt = prompt
	for _, opt := range options {
		opt(&p.lastOptions)
	}
	return p.reply, p.err
}

func TestThemeGeneratorHappyPath(t *testing.T) {
	provider := &stubProvider{reply: `{"themes": ["主题一", "主题二"]}`}
	gen := NewThemeGenerator(provider, nopLogger{})

	author := "James Clear"
	themes := gen.Generate(context.Background(), "Atomic Habits", &author, []string{"旧主题"})

	assert.Equal(t, []string{"主题一", "主题二"}, themes)
	assert.Contains(t, provider.lastPrompt, "Atomic Habits")
	assert.Contains(t, provider.lastPrompt, "James Clear")
	assert.Contains(t, provider.lastPrompt, "旧主题")
	assert.Equal(t, 1.0, provider.lastOptions.Temperature)
	assert.Equal(t, 2048, provider.lastOptions.MaxTokens)
}

func TestThemeGeneratorProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	gen := NewThemeGenerator(provider, nopLogger{})

	themes := gen.Generate(context.Background(), "Atomic Habits", nil, nil)
	assert.Empty(t, themes)
}

func TestThemeGeneratorMalformedReply(t *testing.T) {
	provider := &stubProvider{reply: "Sorry, I cannot help with that."}
	gen := NewThemeGenerator(provider, nopLogger{})

	themes := gen.Generate(context.Background(), "Atomic Habits", nil, nil)
	assert.Empty(t, themes)
}

func TestQuestionGeneratorHappyPath(t *testing.T) {
	provider := &stubProvider{reply: `{
		"results": [
			{
				"theme": "主题一",
				"questions": [
					{"statement": "陈述一", "isPure": true, "explanation": "解释一"},
					{"statement": "陈述二", "isPure": false, "explanation": "解释二"}
				]
			}
		]
	}`}
	gen := NewQuestionGenerator(provider, nopLogger{})

	input := []ThemeWithAngles{
		{Theme: "主题一", AnglesToUse: []Angle{AngleCommonMisconception, AnglePracticalApplication}},
	}
	results := gen.Generate(context.Background(), "Atomic Habits", nil, input)

	assert.Len(t, results, 1)
	assert.Equal(t, "主题一", results[0].Theme)
	assert.Len(t, results[0].Questions, 2)
	assert.Contains(t, provider.lastPrompt, "Common Misconception")
	assert.Equal(t, 0.7, provider.lastOptions.Temperature)
	assert.Equal(t, 4096, provider.lastOptions.MaxTokens)
}

func TestQuestionGeneratorMalformedReply(t *testing.T) {
	provider := &stubProvider{reply: "not json"}
	gen := NewQuestionGenerator(provider, nopLogger{})

	results := gen.Generate(context.Background(), "Atomic Habits", nil, nil)
	assert.Empty(t, results)
}
