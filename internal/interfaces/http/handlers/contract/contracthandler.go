package contract

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/contract/usecases"
	"gmao/internal/interfaces/http/handlers/common"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/utils"
)

type CreateContractExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateContractCommand) (*usecases.ContractView, error)
}

type CancelContractExecutor interface {
	Execute(ctx context.Context, cmd usecases.CancelContractCommand) (*usecases.ContractView, error)
}

type ListContractsExecutor interface {
	Execute(ctx context.Context, query usecases.ListContractsQuery) (*usecases.ListContractsResult, error)
}

type CreateContractRequest struct {
	Terms       string `json:"terms" binding:"required,max=5000"`
	RenewalDate string `json:"renewal_date,omitempty"`
}

type ContractHandler struct {
	createContractUC CreateContractExecutor
	cancelContractUC CancelContractExecutor
	listContractsUC  ListContractsExecutor
	logger           logger.Interface
}

func NewContractHandler(
	createContractUC CreateContractExecutor,
	cancelContractUC CancelContractExecutor,
	listContractsUC ListContractsExecutor,
) *ContractHandler {
	return &ContractHandler{
		createContractUC: createContractUC,
		cancelContractUC: cancelContractUC,
		listContractsUC:  listContractsUC,
		logger:           logger.NewLogger(),
	}
}

// CreateContract handles POST /clients/:id/contracts
func (h *ContractHandler) CreateContract(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create contract", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)
	cmd := usecases.CreateContractCommand{
		ClientID:    clientID,
		Terms:       req.Terms,
		RenewalDate: req.RenewalDate,
		ActorID:     actorID,
		ActorRole:   actorRole,
	}

	result, err := h.createContractUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Contract created successfully")
}

// CancelContract handles POST /contracts/:id/cancel
func (h *ContractHandler) CancelContract(c *gin.Context) {
	contractID, err := utils.ParseUintParam(c, "id", "contract")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)
	cmd := usecases.CancelContractCommand{
		ContractID: contractID,
		ActorID:    actorID,
		ActorRole:  actorRole,
	}

	result, err := h.cancelContractUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contract cancelled", result)
}

// ListContracts handles GET /clients/:id/contracts
func (h *ContractHandler) ListContracts(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listContractsUC.Execute(c.Request.Context(), usecases.ListContractsQuery{ClientID: clientID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
