package mapper

import (
	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Email:        u.Email,
		Nickname:     u.Nickname,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    timePtr(u.UpdatedAt),
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	mod := &model.User{
		Id:           u.Id,
		Email:        u.Email,
		Nickname:     u.Nickname,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
	if u.UpdatedAt != nil {
		mod.UpdatedAt = *u.UpdatedAt
	}
	return mod
}
