package quizgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractThemes(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantThemes []string
		wantErr    bool
	}{
		{
			name:       "plain json",
			raw:        `{"themes": ["原子习惯", "复利效应"]}`,
			wantThemes: []string{"原子习惯", "复利效应"},
		},
		{
			name: "fenced json",
			raw: "```json\n" + `{"themes": ["身份认同"]}` + "\n```",
			wantThemes: []string{"身份认同"},
		},
		{
			name: "fence without language tag",
			raw: "```\n" + `{"themes": ["环境设计"]}` + "\n```",
			wantThemes: []string{"环境设计"},
		},
		{
			name:       "empty themes array",
			raw:        `{"themes": []}`,
			wantThemes: []string{},
		},
		{
			name:    "not json",
			raw:     "I could not generate themes for this book.",
			wantErr: true,
		},
		{
			name:    "missing themes key",
			raw:     `{"topics": ["something"]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			themes, err := ExtractThemes(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedOutput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantThemes, themes)
		})
	}
}

func TestExtractResults(t *testing.T) {
	raw := "```json\n" + `{
  "results": [
    {
      "theme": "复利效应",
      "questions": [
        {"statement": "每天进步1%没有意义", "isPure": false, "explanation": "微小的进步会复利累积"},
        {"statement": "习惯的效果是延迟显现的", "isPure": true, "explanation": "突破需要跨越失望谷底"}
      ]
    }
  ]
}` + "\n```"

	results, err := ExtractResults(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 group, got %d", len(results))
	}
	group := results[0]
	assert.Equal(t, "复利效应", group.Theme)
	assert.Len(t, group.Questions, 2)
	assert.False(t, group.Questions[0].IsPure)
	assert.True(t, group.Questions[1].IsPure)
}

func TestExtractResultsMalformed(t *testing.T) {
	for _, raw := range []string{
		"no json here",
		`{"answers": []}`,
		`{"results": "oops"}`,
	} {
		_, err := ExtractResults(raw)
		if !errors.Is(err, ErrMalformedOutput) {
			t.Errorf("raw %q: expected ErrMalformedOutput, got %v", raw, err)
		}
	}
}
