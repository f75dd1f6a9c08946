package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/ticket/usecases"
	"gmao/internal/domain/ledger"
	"gmao/internal/shared/authorization"
)

type CreateTicketRequest struct {
	ClientID        uint   `json:"client_id" binding:"required"`
	Title           string `json:"title" binding:"required,max=200"`
	Description     string `json:"description" binding:"max=5000"`
	Kind            string `json:"kind" binding:"required"`
	Priority        string `json:"priority" binding:"required"`
	AssigneeID      *uint  `json:"assignee_id,omitempty"`
	CategoryID      *uint  `json:"category_id,omitempty"`
	EquipmentTypeID *uint  `json:"equipment_type_id,omitempty"`
	EquipmentIDs    []uint `json:"equipment_ids,omitempty"`
	SiteIDs         []uint `json:"site_ids,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(actorID uint, actorRole authorization.Role) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		ClientID:        r.ClientID,
		Title:           r.Title,
		Description:     r.Description,
		Kind:            r.Kind,
		Priority:        r.Priority,
		AssigneeID:      r.AssigneeID,
		CategoryID:      r.CategoryID,
		EquipmentTypeID: r.EquipmentTypeID,
		EquipmentIDs:    r.EquipmentIDs,
		SiteIDs:         r.SiteIDs,
		ActorID:         actorID,
		ActorRole:       actorRole,
	}
}

type UpdateTicketRequest struct {
	Title           string `json:"title" binding:"required,max=200"`
	Description     string `json:"description" binding:"max=5000"`
	Kind            string `json:"kind" binding:"required"`
	Priority        string `json:"priority" binding:"required"`
	AssigneeID      *uint  `json:"assignee_id,omitempty"`
	CategoryID      *uint  `json:"category_id,omitempty"`
	EquipmentTypeID *uint  `json:"equipment_type_id,omitempty"`
	EquipmentIDs    []uint `json:"equipment_ids,omitempty"`
	SiteIDs         []uint `json:"site_ids,omitempty"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, actorID uint, actorRole authorization.Role) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:        ticketID,
		Title:           r.Title,
		Description:     r.Description,
		Kind:            r.Kind,
		Priority:        r.Priority,
		AssigneeID:      r.AssigneeID,
		CategoryID:      r.CategoryID,
		EquipmentTypeID: r.EquipmentTypeID,
		EquipmentIDs:    r.EquipmentIDs,
		SiteIDs:         r.SiteIDs,
		ActorID:         actorID,
		ActorRole:       actorRole,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CloseTicketRequest carries the terminal status and the consumption block.
// Duration fields arrive as strings exactly as typed; parsing and precedence
// are decided by the charge computation, not the transport.
type CloseTicketRequest struct {
	Status        string `json:"status" binding:"required"`
	DurationHours string `json:"duration_hours,omitempty"`
	StartTime     string `json:"start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
	Points        string `json:"points,omitempty"`
	Note          string `json:"note,omitempty"`
}

func (r *CloseTicketRequest) ToCommand(ticketID, actorID uint, actorRole authorization.Role) usecases.CloseTicketCommand {
	return usecases.CloseTicketCommand{
		TicketID:     ticketID,
		TargetStatus: r.Status,
		ActorID:      actorID,
		ActorRole:    actorRole,
		Consumption: ledger.ChargeInput{
			DurationHours: r.DurationHours,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			Points:        r.Points,
			Note:          r.Note,
		},
	}
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"max=10000"`
}

type EditCommentRequest struct {
	Content string `json:"content" binding:"max=10000"`
}

type ListTicketsRequest struct {
	Page       int
	PageSize   int
	Status     string
	Priority   string
	Kind       string
	ClientID   *uint
	AssigneeID *uint
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:     r.Status,
		Priority:   r.Priority,
		Kind:       r.Kind,
		ClientID:   r.ClientID,
		AssigneeID: r.AssigneeID,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTicketsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Kind:     c.Query("kind"),
	}

	if raw := c.Query("client_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			clientID := uint(id)
			req.ClientID = &clientID
		}
	}

	if raw := c.Query("assignee_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			assigneeID := uint(id)
			req.AssigneeID = &assigneeID
		}
	}

	return req
}
