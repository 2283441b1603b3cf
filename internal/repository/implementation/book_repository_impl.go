package implementation

import (
	"context"
	"errors"

	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/mapper"
	"bookquiz-be/internal/model"
	"bookquiz-be/internal/repository/contract"
	"bookquiz-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookMapper
}

func NewBookRepository(db *gorm.DB) contract.BookRepository {
	return &BookRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookMapper(),
	}
}

func (r *BookRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BookRepositoryImpl) Create(ctx context.Context, book *entity.Book) error {
	m := r.mapper.ToModel(book)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*book = *r.mapper.ToEntity(m)
	return nil
}

func (r *BookRepositoryImpl) Update(ctx context.Context, book *entity.Book) error {
	m := r.mapper.ToModel(book)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*book = *r.mapper.ToEntity(m)
	return nil
}

func (r *BookRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Book, error) {
	var m model.Book
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BookRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Book, error) {
	var models []*model.Book
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BookRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Book{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookRepositoryImpl) IncrementQuestionCount(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", id).
		UpdateColumn("question_count", gorm.Expr("question_count + ?", delta)).
		Error
}
