package mappers

import (
	"klevant/internal/domain/user"
	vo "klevant/internal/domain/user/valueobjects"
	"klevant/internal/infrastructure/persistence/models"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Mobile:       u.Mobile(),
		Address:      u.Address(),
		Active:       u.IsActive(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (m *UserMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		vo.Role(model.Role),
		model.Mobile,
		model.Address,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
