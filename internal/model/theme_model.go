package model

import (
	"time"

	"github.com/google/uuid"
)

type Theme struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BookId    uuid.UUID `gorm:"type:uuid;not null;index"`
	ThemeText string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Theme) TableName() string {
	return "themes"
}
