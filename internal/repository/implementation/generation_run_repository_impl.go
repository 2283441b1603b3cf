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

type GenerationRunRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GenerationRunMapper
}

func NewGenerationRunRepository(db *gorm.DB) contract.GenerationRunRepository {
	return &GenerationRunRepositoryImpl{
		db:     db,
		mapper: mapper.NewGenerationRunMapper(),
	}
}

func (r *GenerationRunRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GenerationRunRepositoryImpl) Create(ctx context.Context, run *entity.GenerationRun) error {
	m := r.mapper.ToModel(run)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*run = *r.mapper.ToEntity(m)
	return nil
}

func (r *GenerationRunRepositoryImpl) Update(ctx context.Context, run *entity.GenerationRun) error {
	m := r.mapper.ToModel(run)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*run = *r.mapper.ToEntity(m)
	return nil
}

func (r *GenerationRunRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GenerationRun, error) {
	var models []*model.GenerationRun
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.GenerationRun, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.mapper.ToEntity(m))
	}
	return entities, nil
}
