package contract

import (
	"context"

	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/repository/specification"
)

type ThemeRepository interface {
	Create(ctx context.Context, theme *entity.Theme) error
	// CreateBatch inserts all themes and backfills their generated ids.
	CreateBatch(ctx context.Context, themes []*entity.Theme) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Theme, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
