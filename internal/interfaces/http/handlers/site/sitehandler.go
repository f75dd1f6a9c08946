package site

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/site/usecases"
	"gmao/internal/interfaces/http/handlers/common"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/utils"
)

type CreateSiteExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateSiteCommand) (*usecases.CreateSiteResult, error)
}

type ListSitesExecutor interface {
	Execute(ctx context.Context, query usecases.ListSitesQuery) (*usecases.ListSitesResult, error)
}

type CreateSiteRequest struct {
	Name    string `json:"name" binding:"required,max=128"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

type SiteHandler struct {
	createSiteUC CreateSiteExecutor
	listSitesUC  ListSitesExecutor
	logger       logger.Interface
}

func NewSiteHandler(createSiteUC CreateSiteExecutor, listSitesUC ListSitesExecutor) *SiteHandler {
	return &SiteHandler{
		createSiteUC: createSiteUC,
		listSitesUC:  listSitesUC,
		logger:       logger.NewLogger(),
	}
}

// CreateSite handles POST /clients/:id/sites
func (h *SiteHandler) CreateSite(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create site", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)
	cmd := usecases.CreateSiteCommand{
		ClientID:  clientID,
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		Notes:     req.Notes,
		ActorID:   actorID,
		ActorRole: actorRole,
	}

	result, err := h.createSiteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Site created successfully")
}

// ListSites handles GET /clients/:id/sites
func (h *SiteHandler) ListSites(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listSitesUC.Execute(c.Request.Context(), usecases.ListSitesQuery{ClientID: clientID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
