package usecases

import (
	"context"

	"gmao/internal/domain/user"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

// PasswordHasher turns a plaintext password into a storable hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type CreateUserCommand struct {
	Username    string
	DisplayName string
	Password    string
	Role        string
	ActorID     uint
	ActorRole   authorization.Role
}

type CreateUserResult struct {
	UserID   uint
	Username string
	Role     string
}

// CreateUserUseCase provisions an account. Only administrators create users;
// an unknown role string falls back to technicien.
type CreateUserUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.UserRepository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	uc.logger.Infow("executing create user use case", "username", cmd.Username)

	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can create users")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, errors.NewInternalError("failed to check username")
	}
	if exists {
		return nil, errors.NewConflictError("username is already taken")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(cmd.Username, cmd.DisplayName, hash, authorization.ParseRole(cmd.Role))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username is already taken")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("failed to save user")
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", u.Role().String())

	return &CreateUserResult{
		UserID:   u.ID(),
		Username: u.Username(),
		Role:     u.Role().String(),
	}, nil
}
