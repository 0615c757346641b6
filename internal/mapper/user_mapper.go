package mapper

import (
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/model"
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
		EmployeeCode: u.EmployeeCode,
		Name:         u.Name,
		Position:     u.Position,
		Department:   u.Department,
		PasswordHash: u.PasswordHash,
		Role:         entity.UserRole(u.Role),
		Email:        u.Email,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		EmployeeCode: u.EmployeeCode,
		Name:         u.Name,
		Position:     u.Position,
		Department:   u.Department,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Email:        u.Email,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
