package client

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/client/usecases"
	"gmao/internal/interfaces/http/handlers/common"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/utils"
)

type CreateClientRequest struct {
	Name         string `json:"name" binding:"required,max=128"`
	ContractType string `json:"contract_type" binding:"required"`
	Balance      string `json:"balance,omitempty"`
}

type UpdateClientRequest struct {
	Name         string `json:"name" binding:"required,max=128"`
	ContractType string `json:"contract_type" binding:"required"`
	Balance      string `json:"balance,omitempty"`
}

type ClientHandler struct {
	createClientUC  usecases.CreateClientExecutor
	updateClientUC  usecases.UpdateClientExecutor
	getClientUC     usecases.GetClientExecutor
	listClientsUC   usecases.ListClientsExecutor
	getClientDataUC usecases.GetClientDataExecutor
	logger          logger.Interface
}

func NewClientHandler(
	createClientUC usecases.CreateClientExecutor,
	updateClientUC usecases.UpdateClientExecutor,
	getClientUC usecases.GetClientExecutor,
	listClientsUC usecases.ListClientsExecutor,
	getClientDataUC usecases.GetClientDataExecutor,
) *ClientHandler {
	return &ClientHandler{
		createClientUC:  createClientUC,
		updateClientUC:  updateClientUC,
		getClientUC:     getClientUC,
		listClientsUC:   listClientsUC,
		getClientDataUC: getClientDataUC,
		logger:          logger.NewLogger(),
	}
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)
	cmd := usecases.CreateClientCommand{
		Name:         req.Name,
		ContractType: req.ContractType,
		Balance:      req.Balance,
		ActorID:      actorID,
		ActorRole:    actorRole,
	}

	result, err := h.createClientUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created successfully")
}

// UpdateClient handles PUT /clients/:id
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)
	cmd := usecases.UpdateClientCommand{
		ClientID:     clientID,
		Name:         req.Name,
		ContractType: req.ContractType,
		Balance:      req.Balance,
		ActorID:      actorID,
		ActorRole:    actorRole,
	}

	result, err := h.updateClientUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", result)
}

// GetClient handles GET /clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)
	query := usecases.GetClientQuery{
		ClientID:  clientID,
		ActorID:   actorID,
		ActorRole: actorRole,
	}

	result, err := h.getClientUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := usecases.ListClientsQuery{Page: page, PageSize: pageSize}

	result, err := h.listClientsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Clients, result.Total, page, pageSize)
}

// GetClientData handles GET /clients/:id/data, the lightweight payload the
// ticket form fetches when a client is selected.
func (h *ClientHandler) GetClientData(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getClientDataUC.Execute(c.Request.Context(), usecases.GetClientDataQuery{ClientID: clientID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
