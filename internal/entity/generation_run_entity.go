package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	GenerationRunStatusRunning = "running"
	GenerationRunStatusSuccess = "success"
	GenerationRunStatusFailed  = "failed"
)

// GenerationRun records one end-to-end invocation of the question pipeline
// for a book, so fire-and-forget runs stay observable after the fact.
type GenerationRun struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookId            uuid.UUID `gorm:"type:uuid;index"`
	Status            string
	ErrorCode         *string
	ThemesInserted    int
	QuestionsInserted int
	Result            []byte // JSON summary of the run
	CreatedAt         time.Time
	FinishedAt        *time.Time
}
