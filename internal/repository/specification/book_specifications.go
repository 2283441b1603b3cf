package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByBookID filters child rows (themes, questions, progress) by their book
type ByBookID struct {
	BookID uuid.UUID
}

func (s ByBookID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("book_id = ?", s.BookID)
}

// Published keeps only published books
type Published struct{}

func (s Published) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", true)
}

// ByUserID filters rows owned by a user
type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByEmail filters users by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
