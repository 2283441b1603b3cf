package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicate(t *testing.T) {
	generated := []GeneratedQuestion{
		{Statement: "习惯塑造身份", IsPure: true},
		{Statement: "  习惯塑造身份  ", IsPure: true},
		{Statement: "New statement", IsPure: false},
		{Statement: "EXISTING STATEMENT", IsPure: true},
	}
	existing := []string{"习惯塑造身份", "existing statement"}

	unique := Deduplicate(generated, existing)

	assert.Len(t, unique, 1)
	assert.Equal(t, "New statement", unique[0].Statement)
}

func TestDeduplicateKeepsAllWhenNothingExists(t *testing.T) {
	generated := []GeneratedQuestion{
		{Statement: "a"},
		{Statement: "b"},
	}

	unique := Deduplicate(generated, nil)
	assert.Len(t, unique, 2)
}

func TestDeduplicateGrouped(t *testing.T) {
	results := []ThemeQuestions{
		{
			Theme: "复利效应",
			Questions: []GeneratedQuestion{
				{Statement: "duplicate one"},
				{Statement: "fresh one"},
			},
		},
		{
			Theme: "身份认同",
			Questions: []GeneratedQuestion{
				{Statement: "Duplicate Two"},
			},
		},
	}
	existing := []string{"duplicate one", "duplicate two"}

	filtered := DeduplicateGrouped(results, existing)

	// The second theme loses all its questions and drops out entirely.
	assert.Len(t, filtered, 1)
	assert.Equal(t, "复利效应", filtered[0].Theme)
	assert.Len(t, filtered[0].Questions, 1)
	assert.Equal(t, "fresh one", filtered[0].Questions[0].Statement)
}

func TestFlatten(t *testing.T) {
	results := []ThemeQuestions{
		{Theme: "a", Questions: []GeneratedQuestion{{Statement: "1"}, {Statement: "2"}}},
		{Theme: "b", Questions: []GeneratedQuestion{{Statement: "3"}}},
	}

	all := Flatten(results)
	assert.Len(t, all, 3)
	assert.Equal(t, "3", all[2].Statement)
}
