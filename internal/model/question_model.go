package model

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BookId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ThemeId     *uuid.UUID `gorm:"type:uuid;index"`
	Statement   string     `gorm:"type:text;not null"`
	IsPure      bool       `gorm:"not null"`
	Explanation string     `gorm:"type:text"`
	ImageUrl    *string    `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}
