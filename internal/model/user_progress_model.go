package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProgress struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_book,unique"`
	BookId          uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_book,unique"`
	LastAttemptedAt *time.Time
	HighestAccuracy float64   `gorm:"not null;default:0"`
	TotalAttempts   int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
