package contract

import (
	"context"

	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	Update(ctx context.Context, book *entity.Book) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Book, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Book, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	IncrementQuestionCount(ctx context.Context, id uuid.UUID, delta int) error
}
