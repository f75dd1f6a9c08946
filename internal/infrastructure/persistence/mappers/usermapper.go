package mappers

import (
	"gmao/internal/domain/user"
	"gmao/internal/infrastructure/persistence/models"
	"gmao/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		DisplayName:  u.DisplayName(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    timeToMilli(u.CreatedAt()),
		UpdatedAt:    timeToMilli(u.UpdatedAt()),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.DisplayName,
		model.PasswordHash,
		authorization.ParseRole(model.Role),
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
}
