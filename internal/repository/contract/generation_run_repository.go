package contract

import (
	"context"

	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/repository/specification"
)

type GenerationRunRepository interface {
	Create(ctx context.Context, run *entity.GenerationRun) error
	Update(ctx context.Context, run *entity.GenerationRun) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GenerationRun, error)
}
