package mapper

import (
	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/model"

	"gorm.io/datatypes"
)

type GenerationRunMapper struct{}

func NewGenerationRunMapper() *GenerationRunMapper {
	return &GenerationRunMapper{}
}

func (m *GenerationRunMapper) ToEntity(r *model.GenerationRun) *entity.GenerationRun {
	if r == nil {
		return nil
	}
	return &entity.GenerationRun{
		Id:                r.Id,
		BookId:            r.BookId,
		Status:            r.Status,
		ErrorCode:         r.ErrorCode,
		ThemesInserted:    r.ThemesInserted,
		QuestionsInserted: r.QuestionsInserted,
		Result:            []byte(r.Result),
		CreatedAt:         r.CreatedAt,
		FinishedAt:        r.FinishedAt,
	}
}

func (m *GenerationRunMapper) ToModel(r *entity.GenerationRun) *model.GenerationRun {
	if r == nil {
		return nil
	}
	return &model.GenerationRun{
		Id:                r.Id,
		BookId:            r.BookId,
		Status:            r.Status,
		ErrorCode:         r.ErrorCode,
		ThemesInserted:    r.ThemesInserted,
		QuestionsInserted: r.QuestionsInserted,
		Result:            datatypes.JSON(r.Result),
		CreatedAt:         r.CreatedAt,
		FinishedAt:        r.FinishedAt,
	}
}
