package implementation

import (
	"context"
	"errors"

	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/mapper"
	"bookquiz-be/internal/model"
	"bookquiz-be/internal/repository/contract"
	"bookquiz-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UserProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgressMapper
}

func NewUserProgressRepository(db *gorm.DB) contract.UserProgressRepository {
	return &UserProgressRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgressMapper(),
	}
}

func (r *UserProgressRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserProgressRepositoryImpl) Create(ctx context.Context, progress *entity.UserProgress) error {
	m := r.mapper.ToModel(progress)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*progress = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserProgressRepositoryImpl) Update(ctx context.Context, progress *entity.UserProgress) error {
	m := r.mapper.ToModel(progress)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*progress = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserProgressRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProgress, error) {
	var m model.UserProgress
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserProgressRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserProgress, error) {
	var models []*model.UserProgress
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
