package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/auth/usecases"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/utils"
)

// LoginExecutor runs the login use case.
type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type AuthHandler struct {
	loginUC LoginExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC LoginExecutor) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  logger.NewLogger(),
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.LoginCommand{
		Username:  req.Username,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		UserID:      result.UserID,
		Username:    result.Username,
		DisplayName: result.DisplayName,
		Role:        result.Role,
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}
