package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookRequest struct {
	Title         string  `json:"title" validate:"required,min=1,max=255"`
	Author        *string `json:"author"`
	Description   string  `json:"description"`
	CoverImageUrl *string `json:"coverImageUrl"`
	IsPublished   bool    `json:"isPublished"`
}

type CreateBookResponse struct {
	Id uuid.UUID `json:"id"`
}

type BookResponse struct {
	BookId        uuid.UUID  `json:"bookId"`
	Title         string     `json:"title"`
	Author        *string    `json:"author"`
	Description   string     `json:"description"`
	CoverImageUrl *string    `json:"coverImageUrl"`
	QuestionCount int        `json:"questionCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
}

type QuestionResponse struct {
	QuestionId  uuid.UUID `json:"questionId"`
	Statement   string    `json:"statement"`
	ImageUrl    *string   `json:"imageUrl"`
	IsPure      bool      `json:"isPure"`
	Explanation string    `json:"explanation"`
}

type BookQuestionsResponse struct {
	Book       BookSummary        `json:"book"`
	Questions  []QuestionResponse `json:"questions"`
	TotalCount int                `json:"totalCount"`
}

type BookSummary struct {
	BookId uuid.UUID `json:"bookId"`
	Title  string    `json:"title"`
}
