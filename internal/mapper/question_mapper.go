package mapper

import (
	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/model"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}
	return &entity.Question{
		Id:          q.Id,
		BookId:      q.BookId,
		ThemeId:     q.ThemeId,
		Statement:   q.Statement,
		IsPure:      q.IsPure,
		Explanation: q.Explanation,
		ImageUrl:    q.ImageUrl,
		CreatedAt:   q.CreatedAt,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}
	return &model.Question{
		Id:          q.Id,
		BookId:      q.BookId,
		ThemeId:     q.ThemeId,
		Statement:   q.Statement,
		IsPure:      q.IsPure,
		Explanation: q.Explanation,
		ImageUrl:    q.ImageUrl,
		CreatedAt:   q.CreatedAt,
	}
}

func (m *QuestionMapper) ToEntities(models []*model.Question) []*entity.Question {
	entities := make([]*entity.Question, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}

func (m *QuestionMapper) ToModels(entities []*entity.Question) []*model.Question {
	models := make([]*model.Question, 0, len(entities))
	for _, e := range entities {
		models = append(models, m.ToModel(e))
	}
	return models
}
