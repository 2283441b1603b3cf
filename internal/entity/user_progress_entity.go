package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserProgress struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId          uuid.UUID `gorm:"type:uuid;index"`
	BookId          uuid.UUID `gorm:"type:uuid;index"`
	LastAttemptedAt *time.Time
	HighestAccuracy float64
	TotalAttempts   int
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
