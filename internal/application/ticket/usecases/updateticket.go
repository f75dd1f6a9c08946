package usecases

import (
	"context"
	"fmt"

	"gmao/internal/domain/equipment"
	"gmao/internal/domain/site"
	"gmao/internal/domain/ticket"
	vo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

// UpdateTicketCommand rewrites the descriptive fields and replaces both
// membership sets wholesale. The client a ticket belongs to never changes
// after creation; memberships are validated against it.
type UpdateTicketCommand struct {
	TicketID        uint
	Title           string
	Description     string
	Kind            string
	Priority        string
	AssigneeID      *uint
	CategoryID      *uint
	EquipmentTypeID *uint
	EquipmentIDs    []uint
	SiteIDs         []uint
	ActorID         uint
	ActorRole       authorization.Role
}

type UpdateTicketResult struct {
	TicketID uint
	Status   string
}

type UpdateTicketUseCase struct {
	ticketRepo    ticket.TicketRepository
	equipmentRepo equipment.EquipmentRepository
	siteRepo      site.SiteRepository
	logger        logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	equipmentRepo equipment.EquipmentRepository,
	siteRepo site.SiteRepository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:    ticketRepo,
		equipmentRepo: equipmentRepo,
		siteRepo:      siteRepo,
		logger:        logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !cmd.ActorRole.CanWrite() {
		return nil, errors.NewForbiddenError("role cannot update tickets")
	}

	kind, err := vo.NewTicketKind(cmd.Kind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if err := uc.checkMemberships(ctx, t.ClientID(), cmd.EquipmentIDs, cmd.SiteIDs); err != nil {
		return nil, err
	}

	if err := t.UpdateDetails(t.ClientID(), cmd.Title, cmd.Description, kind, priority, cmd.CategoryID, cmd.EquipmentTypeID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.AssigneeID != nil {
		if err := t.AssignTo(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	t.ReplaceEquipments(cmd.EquipmentIDs)
	t.ReplaceSites(cmd.SiteIDs)

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	return &UpdateTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
	}, nil
}

func (uc *UpdateTicketUseCase) checkMemberships(ctx context.Context, clientID uint, equipmentIDs, siteIDs []uint) error {
	if len(equipmentIDs) > 0 {
		eqs, err := uc.equipmentRepo.GetByIDs(ctx, equipmentIDs)
		if err != nil {
			return errors.NewInternalError("failed to resolve equipment")
		}
		if len(eqs) != len(dedupe(equipmentIDs)) {
			return errors.NewValidationError("one or more equipment IDs do not exist")
		}
		for _, eq := range eqs {
			if eq.ClientID() != clientID {
				return errors.NewValidationError(fmt.Sprintf("equipment %d belongs to another client", eq.ID()))
			}
		}
	}

	if len(siteIDs) > 0 {
		sites, err := uc.siteRepo.GetByIDs(ctx, siteIDs)
		if err != nil {
			return errors.NewInternalError("failed to resolve sites")
		}
		if len(sites) != len(dedupe(siteIDs)) {
			return errors.NewValidationError("one or more site IDs do not exist")
		}
		for _, s := range sites {
			if s.ClientID() != clientID {
				return errors.NewValidationError(fmt.Sprintf("site %d belongs to another client", s.ID()))
			}
		}
	}

	return nil
}
