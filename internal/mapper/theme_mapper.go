package mapper

import (
	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/model"
)

type ThemeMapper struct{}

func NewThemeMapper() *ThemeMapper {
	return &ThemeMapper{}
}

func (m *ThemeMapper) ToEntity(t *model.Theme) *entity.Theme {
	if t == nil {
		return nil
	}
	return &entity.Theme{
		Id:        t.Id,
		BookId:    t.BookId,
		ThemeText: t.ThemeText,
		CreatedAt: t.CreatedAt,
	}
}

func (m *ThemeMapper) ToModel(t *entity.Theme) *model.Theme {
	if t == nil {
		return nil
	}
	return &model.Theme{
		Id:        t.Id,
		BookId:    t.BookId,
		ThemeText: t.ThemeText,
		CreatedAt: t.CreatedAt,
	}
}

func (m *ThemeMapper) ToEntities(models []*model.Theme) []*entity.Theme {
	entities := make([]*entity.Theme, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
