package contract

import (
	"context"

	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/repository/specification"
)

type UserProgressRepository interface {
	Create(ctx context.Context, progress *entity.UserProgress) error
	Update(ctx context.Context, progress *entity.UserProgress) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProgress, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserProgress, error)
}
