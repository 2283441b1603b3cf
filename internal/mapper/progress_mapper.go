package mapper

import (
	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/model"
)

type ProgressMapper struct{}

func NewProgressMapper() *ProgressMapper {
	return &ProgressMapper{}
}

func (m *ProgressMapper) ToEntity(p *model.UserProgress) *entity.UserProgress {
	if p == nil {
		return nil
	}
	return &entity.UserProgress{
		Id:              p.Id,
		UserId:          p.UserId,
		BookId:          p.BookId,
		LastAttemptedAt: p.LastAttemptedAt,
		HighestAccuracy: p.HighestAccuracy,
		TotalAttempts:   p.TotalAttempts,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       timePtr(p.UpdatedAt),
	}
}

func (m *ProgressMapper) ToModel(p *entity.UserProgress) *model.UserProgress {
	if p == nil {
		return nil
	}
	mod := &model.UserProgress{
		Id:              p.Id,
		UserId:          p.UserId,
		BookId:          p.BookId,
		LastAttemptedAt: p.LastAttemptedAt,
		HighestAccuracy: p.HighestAccuracy,
		TotalAttempts:   p.TotalAttempts,
		CreatedAt:       p.CreatedAt,
	}
	if p.UpdatedAt != nil {
		mod.UpdatedAt = *p.UpdatedAt
	}
	return mod
}

func (m *ProgressMapper) ToEntities(models []*model.UserProgress) []*entity.UserProgress {
	entities := make([]*entity.UserProgress, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
