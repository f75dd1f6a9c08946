package usecases

import (
	"context"

	"gmao/internal/domain/user"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(hash, password string) error
}

// TokenIssuer signs an access token for an authenticated user.
type TokenIssuer interface {
	Issue(userID uint, username string, role string) (token string, expiresIn int64, err error)
}

// RateLimiter throttles login attempts per source address.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
}

type LoginResult struct {
	UserID      uint
	Username    string
	DisplayName string
	Role        string
	AccessToken string
	ExpiresIn   int64
}

type LoginUseCase struct {
	userRepo    user.UserRepository
	verifier    PasswordVerifier
	tokenIssuer TokenIssuer
	rateLimiter RateLimiter
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	verifier PasswordVerifier,
	tokenIssuer TokenIssuer,
	rateLimiter RateLimiter,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		verifier:    verifier,
		tokenIssuer: tokenIssuer,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	if uc.rateLimiter != nil && cmd.IPAddress != "" {
		allowed, err := uc.rateLimiter.Allow(ctx, cmd.IPAddress)
		if err != nil {
			// rate limiting is best effort; an unreachable store does not
			// lock everyone out
			uc.logger.Warnw("rate limiter unavailable", "error", err)
		} else if !allowed {
			uc.logger.Warnw("login rate limited", "ip", cmd.IPAddress)
			return nil, errors.NewUnauthorizedError("too many login attempts, try again later")
		}
	}

	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil || u == nil {
		// same answer whether the account exists or not
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	if err := uc.verifier.Verify(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username, "ip", cmd.IPAddress)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, expiresIn, err := uc.tokenIssuer.Issue(u.ID(), u.Username(), u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "username", u.Username())

	return &LoginResult{
		UserID:      u.ID(),
		Username:    u.Username(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
