package entity

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string
	Author        *string
	Description   string
	CoverImageUrl *string
	QuestionCount int
	IsPublished   bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
