package usecases

import (
	"context"
	"fmt"

	"gmao/internal/domain/ticket"
	vo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

// ChangeStatusCommand moves a ticket between non-terminal statuses, or back
// out of a terminal one (reopening). Terminal targets go through
// CloseTicketUseCase because only the close path may consume contract credit.
type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	ActorID   uint
	ActorRole authorization.Role
}

type ChangeStatusResult struct {
	TicketID uint
	Status   string
	Reopened bool
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangeStatusUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "new_status", cmd.NewStatus)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !cmd.ActorRole.CanWrite() {
		return nil, errors.NewForbiddenError("role cannot change ticket status")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if newStatus.IsTerminal() {
		return nil, errors.NewValidationError("terminal statuses are set through the close operation", cmd.NewStatus)
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	// Reopening clears the closure timestamp but never touches the
	// consumption ledger: what was charged stays charged.
	reopened := t.Status().IsTerminal()

	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket status changed", "ticket_id", cmd.TicketID, "status", t.Status().String(), "reopened", reopened)

	return &ChangeStatusResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
		Reopened: reopened,
	}, nil
}
