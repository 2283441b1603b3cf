package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitProgressRequest struct {
	CorrectCount int `json:"correctCount" validate:"min=0"`
	TotalCount   int `json:"totalCount" validate:"required,min=1"`
}

type SubmitProgressResponse struct {
	BookId          uuid.UUID `json:"bookId"`
	Accuracy        float64   `json:"accuracy"`
	HighestAccuracy float64   `json:"highestAccuracy"`
	TotalAttempts   int       `json:"totalAttempts"`
	CorruptionLevel float64   `json:"corruptionLevel"`
}

type ProgressResponse struct {
	BookId          uuid.UUID  `json:"bookId"`
	HighestAccuracy float64    `json:"highestAccuracy"`
	TotalAttempts   int        `json:"totalAttempts"`
	LastAttemptedAt *time.Time `json:"lastAttemptedAt"`
	CorruptionLevel float64    `json:"corruptionLevel"`
}
