package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/user/usecases"
	"gmao/internal/interfaces/http/handlers/common"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/utils"
)

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateUserCommand) (*usecases.CreateUserResult, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error)
}

type CreateUserRequest struct {
	Username    string `json:"username" binding:"required,max=64"`
	DisplayName string `json:"display_name,omitempty"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role,omitempty"`
}

type UserHandler struct {
	createUserUC CreateUserExecutor
	listUsersUC  ListUsersExecutor
	logger       logger.Interface
}

func NewUserHandler(createUserUC CreateUserExecutor, listUsersUC ListUsersExecutor) *UserHandler {
	return &UserHandler{
		createUserUC: createUserUC,
		listUsersUC:  listUsersUC,
		logger:       logger.NewLogger(),
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)
	cmd := usecases.CreateUserCommand{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
		Role:        req.Role,
		ActorID:     actorID,
		ActorRole:   actorRole,
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	actorID, actorRole := common.Actor(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		ActorID:   actorID,
		ActorRole: actorRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
