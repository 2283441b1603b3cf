package mapper

import (
	"time"

	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/model"
)

type BookMapper struct{}

func NewBookMapper() *BookMapper {
	return &BookMapper{}
}

func (m *BookMapper) ToEntity(b *model.Book) *entity.Book {
	if b == nil {
		return nil
	}
	return &entity.Book{
		Id:            b.Id,
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		CoverImageUrl: b.CoverImageUrl,
		QuestionCount: b.QuestionCount,
		IsPublished:   b.IsPublished,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     timePtr(b.UpdatedAt),
	}
}

func (m *BookMapper) ToModel(b *entity.Book) *model.Book {
	if b == nil {
		return nil
	}
	mod := &model.Book{
		Id:            b.Id,
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		CoverImageUrl: b.CoverImageUrl,
		QuestionCount: b.QuestionCount,
		IsPublished:   b.IsPublished,
		CreatedAt:     b.CreatedAt,
	}
	if b.UpdatedAt != nil {
		mod.UpdatedAt = *b.UpdatedAt
	}
	return mod
}

func (m *BookMapper) ToEntities(models []*model.Book) []*entity.Book {
	entities := make([]*entity.Book, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
