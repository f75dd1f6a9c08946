package usecases

import (
	"context"

	"gmao/internal/domain/user"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type ListUsersQuery struct {
	ActorID   uint
	ActorRole authorization.Role
}

type UserSummary struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type ListUsersResult struct {
	Users []UserSummary `json:"users"`
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.UserRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if !query.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can list users")
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	result := &ListUsersResult{Users: make([]UserSummary, 0, len(users))}
	for _, u := range users {
		result.Users = append(result.Users, UserSummary{
			ID:          u.ID(),
			Username:    u.Username(),
			DisplayName: u.DisplayName(),
			Role:        u.Role().String(),
		})
	}
	return result, nil
}
