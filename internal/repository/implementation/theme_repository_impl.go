package implementation

import (
	"context"

	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/mapper"
	"bookquiz-be/internal/model"
	"bookquiz-be/internal/repository/contract"
	"bookquiz-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ThemeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ThemeMapper
}

func NewThemeRepository(db *gorm.DB) contract.ThemeRepository {
	return &ThemeRepositoryImpl{
		db:     db,
		mapper: mapper.NewThemeMapper(),
	}
}

func (r *ThemeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ThemeRepositoryImpl) Create(ctx context.Context, theme *entity.Theme) error {
	m := r.mapper.ToModel(theme)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*theme = *r.mapper.ToEntity(m)
	return nil
}

func (r *ThemeRepositoryImpl) CreateBatch(ctx context.Context, themes []*entity.Theme) error {
	if len(themes) == 0 {
		return nil
	}
	models := make([]*model.Theme, 0, len(themes))
	for _, t := range themes {
		models = append(models, r.mapper.ToModel(t))
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*themes[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *ThemeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Theme, error) {
	var models []*model.Theme
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ThemeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Theme{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
