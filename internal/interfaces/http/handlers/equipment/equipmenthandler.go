package equipment

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/equipment/usecases"
	"gmao/internal/interfaces/http/handlers/common"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/utils"
)

type CreateEquipmentExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateEquipmentCommand) (*usecases.CreateEquipmentResult, error)
}

type UpdateEquipmentExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateEquipmentCommand) (*usecases.UpdateEquipmentResult, error)
}

type GetEquipmentExecutor interface {
	Execute(ctx context.Context, query usecases.GetEquipmentQuery) (*usecases.EquipmentView, error)
}

type ListEquipmentExecutor interface {
	Execute(ctx context.Context, query usecases.ListEquipmentQuery) (*usecases.ListEquipmentResult, error)
}

type CreateEquipmentRequest struct {
	Kind          string `json:"kind" binding:"required,max=128"`
	Model         string `json:"model,omitempty"`
	SerialNumber  string `json:"serial_number,omitempty"`
	InstalledAt   string `json:"installed_at,omitempty"`
	WarrantyEndAt string `json:"warranty_end_at,omitempty"`
}

type UpdateEquipmentRequest struct {
	Kind          string `json:"kind" binding:"required,max=128"`
	Model         string `json:"model,omitempty"`
	SerialNumber  string `json:"serial_number,omitempty"`
	Status        string `json:"status,omitempty"`
	InstalledAt   string `json:"installed_at,omitempty"`
	WarrantyEndAt string `json:"warranty_end_at,omitempty"`
}

type EquipmentHandler struct {
	createEquipmentUC CreateEquipmentExecutor
	updateEquipmentUC UpdateEquipmentExecutor
	getEquipmentUC    GetEquipmentExecutor
	listEquipmentUC   ListEquipmentExecutor
	logger            logger.Interface
}

func NewEquipmentHandler(
	createEquipmentUC CreateEquipmentExecutor,
	updateEquipmentUC UpdateEquipmentExecutor,
	getEquipmentUC GetEquipmentExecutor,
	listEquipmentUC ListEquipmentExecutor,
) *EquipmentHandler {
	return &EquipmentHandler{
		createEquipmentUC: createEquipmentUC,
		updateEquipmentUC: updateEquipmentUC,
		getEquipmentUC:    getEquipmentUC,
		listEquipmentUC:   listEquipmentUC,
		logger:            logger.NewLogger(),
	}
}

// CreateEquipment handles POST /clients/:id/equipment
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create equipment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)
	cmd := usecases.CreateEquipmentCommand{
		ClientID:      clientID,
		Kind:          req.Kind,
		Model:         req.Model,
		SerialNumber:  req.SerialNumber,
		InstalledAt:   req.InstalledAt,
		WarrantyEndAt: req.WarrantyEndAt,
		ActorID:       actorID,
		ActorRole:     actorRole,
	}

	result, err := h.createEquipmentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Equipment created successfully")
}

// UpdateEquipment handles PUT /equipment/:id
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	equipmentID, err := utils.ParseUintParam(c, "id", "equipment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)
	cmd := usecases.UpdateEquipmentCommand{
		EquipmentID:   equipmentID,
		Kind:          req.Kind,
		Model:         req.Model,
		SerialNumber:  req.SerialNumber,
		Status:        req.Status,
		InstalledAt:   req.InstalledAt,
		WarrantyEndAt: req.WarrantyEndAt,
		ActorID:       actorID,
		ActorRole:     actorRole,
	}

	result, err := h.updateEquipmentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Equipment updated successfully", result)
}

// GetEquipment handles GET /equipment/:id
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	equipmentID, err := utils.ParseUintParam(c, "id", "equipment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getEquipmentUC.Execute(c.Request.Context(), usecases.GetEquipmentQuery{EquipmentID: equipmentID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListEquipment handles GET /clients/:id/equipment
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listEquipmentUC.Execute(c.Request.Context(), usecases.ListEquipmentQuery{ClientID: clientID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
