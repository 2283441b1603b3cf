package contract

import (
	"context"

	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/repository/specification"

	"github.com/google/uuid"
)

type QuestionRepository interface {
	CreateBatch(ctx context.Context, questions []*entity.Question) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// ListStatements returns only the statement text of every question for a
	// book, for dedup context, without loading full rows.
	ListStatements(ctx context.Context, bookId uuid.UUID) ([]string, error)
}
