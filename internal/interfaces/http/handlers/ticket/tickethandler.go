package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/ticket/usecases"
	"gmao/internal/interfaces/http/handlers/common"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	closeTicketUC  usecases.CloseTicketExecutor
	addCommentUC   usecases.AddCommentExecutor
	editCommentUC  usecases.EditCommentExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	closeTicketUC usecases.CloseTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	editCommentUC usecases.EditCommentExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		updateTicketUC: updateTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		changeStatusUC: changeStatusUC,
		closeTicketUC:  closeTicketUC,
		addCommentUC:   addCommentUC,
		editCommentUC:  editCommentUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actorID, actorRole))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, actorID, actorRole))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)
	query := usecases.GetTicketQuery{
		TicketID:  ticketID,
		ActorID:   actorID,
		ActorRole: actorRole,
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req := parseListTicketsRequest(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
}

// ChangeStatus handles PATCH /tickets/:id/status for non-terminal moves.
// Terminal statuses go through CloseTicket so the contract charge is never
// skipped.
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)
	cmd := usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
		ActorID:   actorID,
		ActorRole: actorRole,
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// CloseTicket handles POST /tickets/:id/close
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CloseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)

	result, err := h.closeTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, actorID, actorRole))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed", result)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)
	cmd := usecases.AddCommentCommand{
		TicketID:  ticketID,
		Content:   req.Content,
		ActorID:   actorID,
		ActorRole: actorRole,
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Skipped {
		utils.SuccessResponse(c, http.StatusOK, "Empty comment ignored", result)
		return
	}

	utils.CreatedResponse(c, result, "Comment added")
}

// EditComment handles PATCH /tickets/:id/comments/:comment_id.
// A denied or no-change edit still answers 200 with the comment's current
// state.
func (h *TicketHandler) EditComment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	commentID, err := utils.ParseUintParam(c, "comment_id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := common.Actor(c)
	cmd := usecases.EditCommentCommand{
		TicketID:   ticketID,
		CommentID:  commentID,
		NewContent: req.Content,
		ActorID:    actorID,
		ActorRole:  actorRole,
	}

	result, err := h.editCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
