package entity

import (
	"time"

	"github.com/google/uuid"
)

// Question holds a true/false statement for a book. IsPure is the legacy
// column name for the truth flag.
type Question struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookId      uuid.UUID `gorm:"type:uuid;index"`
	ThemeId     *uuid.UUID `gorm:"type:uuid;index"`
	Statement   string
	IsPure      bool
	Explanation string
	ImageUrl    *string
	CreatedAt   time.Time
}
