package quizgen

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrMalformedOutput marks model output that did not parse into the shape a
// stage expects. Callers must discard the whole stage result; there is no
// partial recovery across this boundary.
var ErrMalformedOutput = errors.New("malformed model output")

// stripCodeFences removes markdown code-fence wrapping the model sometimes
// adds around its JSON reply.
func stripCodeFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

type themesPayload struct {
	Themes []string `json:"themes"`
}

// ExtractThemes parses a stage 1 reply into its themes array.
func ExtractThemes(raw string) ([]string, error) {
	cleaned := stripCodeFences(raw)
	var payload themesPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, errors.Join(ErrMalformedOutput, err)
	}
	if payload.Themes == nil {
		return nil, errors.Join(ErrMalformedOutput, errors.New("missing themes array"))
	}
	return payload.Themes, nil
}

type resultsPayload struct {
	Results []ThemeQuestions `json:"results"`
}

// ExtractResults parses a stage 2 reply into its per-theme question groups.
func ExtractResults(raw string) ([]ThemeQuestions, error) {
	cleaned := stripCodeFences(raw)
	var payload resultsPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, errors.Join(ErrMalformedOutput, err)
	}
	if payload.Results == nil {
		return nil, errors.Join(ErrMalformedOutput, errors.New("missing results array"))
	}
	return payload.Results, nil
}
