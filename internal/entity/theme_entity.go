package entity

import (
	"time"

	"github.com/google/uuid"
)

// Theme is append-only: rows are created by the generation pipeline and
// never edited or deleted afterwards.
type Theme struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookId    uuid.UUID `gorm:"type:uuid;index"`
	ThemeText string
	CreatedAt time.Time
}
