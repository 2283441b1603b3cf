package implementation

import (
	"context"

	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/mapper"
	"bookquiz-be/internal/model"
	"bookquiz-be/internal/repository/contract"
	"bookquiz-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuestionMapper
}

func NewQuestionRepository(db *gorm.DB) contract.QuestionRepository {
	return &QuestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuestionMapper(),
	}
}

func (r *QuestionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuestionRepositoryImpl) CreateBatch(ctx context.Context, questions []*entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	models := r.mapper.ToModels(questions)
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*questions[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *QuestionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	var models []*model.Question
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QuestionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Question{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *QuestionRepositoryImpl) ListStatements(ctx context.Context, bookId uuid.UUID) ([]string, error) {
	var statements []string
	err := r.db.WithContext(ctx).
		Model(&model.Question{}).
		Where("book_id = ?", bookId).
		Pluck("statement", &statements).
		Error
	if err != nil {
		return nil, err
	}
	return statements, nil
}
