package model

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Author        *string   `gorm:"type:varchar(255)"`
	Description   string    `gorm:"type:text"`
	CoverImageUrl *string   `gorm:"type:text"`
	QuestionCount int       `gorm:"not null;default:0"`
	IsPublished   bool      `gorm:"not null;default:false;index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Book) TableName() string {
	return "books"
}
