package quizgen

import "strings"

func normalizeStatement(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Deduplicate filters out questions whose normalized statement already
// exists for the book. Pure; no I/O.
func Deduplicate(generated []GeneratedQuestion, existingStatements []string) []GeneratedQuestion {
	existing := make(map[string]struct{}, len(existingStatements))
	for _, s := range existingStatements {
		existing[normalizeStatement(s)] = struct{}{}
	}

	unique := make([]GeneratedQuestion, 0, len(generated))
	for _, q := range generated {
		if _, dup := existing[normalizeStatement(q.Statement)]; dup {
			continue
		}
		unique = append(unique, q)
	}
	return unique
}

// DeduplicateGrouped applies the same filter while preserving the per-theme
// grouping. Themes whose questions are all duplicates drop out entirely.
func DeduplicateGrouped(results []ThemeQuestions, existingStatements []string) []ThemeQuestions {
	existing := make(map[string]struct{}, len(existingStatements))
	for _, s := range existingStatements {
		existing[normalizeStatement(s)] = struct{}{}
	}

	filtered := make([]ThemeQuestions, 0, len(results))
	for _, r := range results {
		unique := make([]GeneratedQuestion, 0, len(r.Questions))
		for _, q := range r.Questions {
			if _, dup := existing[normalizeStatement(q.Statement)]; dup {
				continue
			}
			unique = append(unique, q)
		}
		if len(unique) == 0 {
			continue
		}
		filtered = append(filtered, ThemeQuestions{Theme: r.Theme, Questions: unique})
	}
	return filtered
}
