package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GenerationRun struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BookId            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status            string         `gorm:"type:varchar(20);not null"`
	ErrorCode         *string        `gorm:"type:varchar(50)"`
	ThemesInserted    int            `gorm:"not null;default:0"`
	QuestionsInserted int            `gorm:"not null;default:0"`
	Result            datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	FinishedAt        *time.Time
}

func (GenerationRun) TableName() string {
	return "generation_runs"
}
