package mappers

import (
	"fmt"

	"gmao/internal/domain/ticket"
	vo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models. Membership rows are handled by the repository; the
// mapper only converts the ticket row itself plus comments.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel, equipmentIDs, siteIDs []uint) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:              t.ID(),
		ClientID:        t.ClientID(),
		AssigneeID:      t.AssigneeID(),
		CategoryID:      t.CategoryID(),
		EquipmentTypeID: t.EquipmentTypeID(),
		Title:           t.Title(),
		Description:     t.Description(),
		Kind:            t.Kind().String(),
		Priority:        t.Priority().String(),
		Status:          t.Status().String(),
		OpenedAt:        timeToMilli(t.OpenedAt()),
		ClosedAt:        timeToMilliPtr(t.ClosedAt()),
		UpdatedAt:       timeToMilli(t.UpdatedAt()),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel, equipmentIDs, siteIDs []uint) (*ticket.Ticket, error) {
	kind, err := vo.NewTicketKind(model.Kind)
	if err != nil {
		return nil, fmt.Errorf("invalid kind for ticket %d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority for ticket %d: %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status for ticket %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.ClientID,
		model.AssigneeID,
		model.CategoryID,
		model.EquipmentTypeID,
		model.Title,
		model.Description,
		kind,
		priority,
		status,
		equipmentIDs,
		siteIDs,
		milliToTime(model.OpenedAt),
		milliToTimePtr(model.ClosedAt),
		milliToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:              c.ID(),
		TicketID:        c.TicketID(),
		AuthorID:        c.AuthorID(),
		Content:         c.Content(),
		PreviousContent: c.PreviousContent(),
		LastEditorID:    c.LastEditorID(),
		CreatedAt:       timeToMilli(c.CreatedAt()),
		UpdatedAt:       timeToMilliPtr(c.UpdatedAt()),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		model.PreviousContent,
		model.LastEditorID,
		milliToTime(model.CreatedAt),
		milliToTimePtr(model.UpdatedAt),
	)
}
