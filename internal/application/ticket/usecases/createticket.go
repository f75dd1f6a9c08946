package usecases

import (
	"context"
	"fmt"

	"gmao/internal/domain/client"
	"gmao/internal/domain/equipment"
	"gmao/internal/domain/site"
	"gmao/internal/domain/ticket"
	vo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type CreateTicketCommand struct {
	ClientID        uint
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

type CreateTicketResult struct {
	TicketID uint
	Status   string
}

type CreateTicketUseCase struct {
	ticketRepo    ticket.TicketRepository
	clientRepo    client.ClientRepository
	equipmentRepo equipment.EquipmentRepository
	siteRepo      site.SiteRepository
	logger        logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	clientRepo client.ClientRepository,
	equipmentRepo equipment.EquipmentRepository,
	siteRepo site.SiteRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:    ticketRepo,
		clientRepo:    clientRepo,
		equipmentRepo: equipmentRepo,
		siteRepo:      siteRepo,
		logger:        logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "client_id", cmd.ClientID, "title", cmd.Title)

	if !cmd.ActorRole.CanWrite() {
		return nil, errors.NewForbiddenError("role cannot create tickets")
	}

	kind, err := vo.NewTicketKind(cmd.Kind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.clientRepo.GetByID(ctx, cmd.ClientID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", cmd.ClientID))
	}

	if err := uc.checkMemberships(ctx, cmd.ClientID, cmd.EquipmentIDs, cmd.SiteIDs); err != nil {
		return nil, err
	}

	t, err := ticket.NewTicket(cmd.ClientID, cmd.Title, cmd.Description, kind, priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.AssigneeID != nil {
		if err := t.AssignTo(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	t.ReplaceEquipments(cmd.EquipmentIDs)
	t.ReplaceSites(cmd.SiteIDs)

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to save ticket")
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "client_id", cmd.ClientID)

	return &CreateTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
	}, nil
}

// checkMemberships rejects equipment or sites that do not exist or belong to
// a different client. Ticket memberships always stay within one client.
func (uc *CreateTicketUseCase) checkMemberships(ctx context.Context, clientID uint, equipmentIDs, siteIDs []uint) error {
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

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
