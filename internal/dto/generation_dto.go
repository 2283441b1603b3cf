package dto

import "github.com/google/uuid"

// GenerateQuestionsMessage is the queue payload for a background
// generation job.
type GenerateQuestionsMessage struct {
	BookId uuid.UUID `json:"bookId"`
}

type GenerateQuestionsResponse struct {
	BookId           uuid.UUID `json:"bookId"`
	BookTitle        string    `json:"bookTitle"`
	QuestionIds      []string  `json:"questionIds"`
	TotalGenerated   int       `json:"totalGenerated"`
	NewQuestionCount int       `json:"newQuestionCount"`
	ThemesUsed       []string  `json:"themesUsed"`
	ThemesInserted   int       `json:"themesInserted"`
	AnglesAssigned   []string  `json:"anglesAssigned"`
}
