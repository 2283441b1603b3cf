package quizgen

// GeneratedQuestion is one true/false statement produced by stage 2,
// before persistence. IsPure mirrors the questions table column.
type GeneratedQuestion struct {
	Statement   string `json:"statement"`
	IsPure      bool   `json:"isPure"`
	Explanation string `json:"explanation"`
}

// ThemeWithAngles pairs a freshly generated theme with the creative angles
// stage 2 must cover for it. Ephemeral: lives only inside one run.
type ThemeWithAngles struct {
	Theme       string  `json:"theme"`
	AnglesToUse []Angle `json:"angles_to_use"`
}

// ThemeQuestions is stage 2 output for a single theme. The grouping is kept
// so questions can be linked to the theme that actually produced them.
type ThemeQuestions struct {
	Theme     string              `json:"theme"`
	Questions []GeneratedQuestion `json:"questions"`
}

// Flatten merges the per-theme question lists into one ordered list.
func Flatten(results []ThemeQuestions) []GeneratedQuestion {
	var all []GeneratedQuestion
	for _, r := range results {
		all = append(all, r.Questions...)
	}
	return all
}
