package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"
)

const themesPerRun = 5

func authorOrUnknown(author *string) string {
	if author == nil || *author == "" {
		return "Unknown"
	}
	return *author
}

// BuildThemePrompt builds the stage 1 prompt: extract new themes distinct
// from the ones already covered for this book.
func BuildThemePrompt(bookTitle string, author *string, existingThemes []string) string {
	existingThemesText := "  - (無現有主題)"
	if len(existingThemes) > 0 {
		lines := make([]string, 0, len(existingThemes))
		for _, theme := range existingThemes {
			lines = append(lines, fmt.Sprintf("  - %q", theme))
		}
		existingThemesText = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`# Role
You are a professional book analyst and literary critic with expertise in extracting deep, philosophical themes from literature.

# Task
Based on the provided book information, extract %d new, unique, and high-level themes that are different from the existing themes already covered. Focus on core concepts, philosophical insights, and actionable principles that readers can apply to their lives.

# Input
- Book Title: %s
- Author: %s
- Existing themes to avoid repeating (in Chinese):
%s

# Output
You MUST respond with a single valid JSON object with the following structure:
{
  "themes": [
    "主題1的中文描述",
    "主題2的中文描述",
    "主題3的中文描述",
    "主題4的中文描述",
    "主題5的中文描述"
  ]
}

CRITICAL: All themes MUST be in Simplified Chinese and should be completely different from the existing themes provided above.`,
		themesPerRun, bookTitle, authorOrUnknown(author), existingThemesText)
}

// BuildQuestionPrompt builds the stage 2 prompt: one question per assigned
// angle for every theme, honoring per-angle semantics.
func BuildQuestionPrompt(bookTitle string, author *string, themesWithAngles []ThemeWithAngles) string {
	themesJson, _ := json.MarshalIndent(themesWithAngles, "", "  ")

	return fmt.Sprintf(`# Role
You are a highly creative and precise quiz generation engine. You follow instructions to the letter to produce diverse and high-quality content.

# Task
For EACH theme object provided in the input list, generate one true/false question for EACH of the specified creative angles in the `+"`angles_to_use`"+` list.

# Description of Creative Angles
- **"Common Misconception"**: Create a statement that reflects a common misunderstanding of the theme. (`+"`isPure`"+` will be `+"`false`"+`).
- **"Practical Application"**: Create a statement that describes a real-world application or a specific "how-to" based on the theme. (`+"`isPure`"+` will be `+"`true`"+`).
- **"Concept Extension/Contrast"**: Create a statement that connects the theme to another concept in the book, or contrasts it with an opposing idea.

# Input
- Book Title: %s
- Author: %s
- Themes with specified angles to use: %s

# Output Format
- **CRITICAL: All generated content (`+"`statement`"+`, `+"`explanation`"+`) MUST be in Simplified Chinese.**
- You MUST respond with a single valid JSON object. The object should have a single key "results", which is an array.
- Each element in the array corresponds to a theme and contains the theme itself and a list of the questions you generated for it based on the specified angles.
- Follow this structure precisely. Do not include any text outside of the JSON object.
{
  "results": [
    {
      "theme": "...",
      "questions": [
        {
          "statement": "...",
          "isPure": false,
          "explanation": "..."
        },
        {
          "statement": "...",
          "isPure": true,
          "explanation": "..."
        }
      ]
    }
  ]
}`, bookTitle, authorOrUnknown(author), string(themesJson))
}
