package usecases

import (
	"context"
	"fmt"
	"time"

	"gmao/internal/domain/client"
	"gmao/internal/domain/ledger"
	"gmao/internal/domain/ticket"
	vo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

// CloseTicketCommand moves a ticket into a terminal status (resolved or
// closed) and, for clients on a metered contract, records the consumption
// that the intervention cost.
type CloseTicketCommand struct {
	TicketID     uint
	TargetStatus string
	ActorID      uint
	ActorRole    authorization.Role
	Consumption  ledger.ChargeInput
}

type CloseTicketResult struct {
	TicketID      uint
	Status        string
	ClosedAt      string
	Charged       bool
	ChargedAmount string
	Balance       string
}

// CloseTicketUseCase is the single write path for terminal status changes.
// Everything runs in one transaction with the ticket row locked, so two
// concurrent closes of the same ticket serialize: the second one sees the
// ledger entry of the first and transitions without charging again.
type CloseTicketUseCase struct {
	txManager  TransactionManager
	ticketRepo ticket.TicketRepository
	clientRepo client.ClientRepository
	ledgerRepo ledger.LedgerRepository
	logger     logger.Interface
}

func NewCloseTicketUseCase(
	txManager TransactionManager,
	ticketRepo ticket.TicketRepository,
	clientRepo client.ClientRepository,
	ledgerRepo ledger.LedgerRepository,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		txManager:  txManager,
		ticketRepo: ticketRepo,
		clientRepo: clientRepo,
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	uc.logger.Infow("executing close ticket use case", "ticket_id", cmd.TicketID, "target_status", cmd.TargetStatus)

	target, err := uc.validateCommand(cmd)
	if err != nil {
		uc.logger.Errorw("invalid close ticket command", "error", err)
		return nil, err
	}

	var result *CloseTicketResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		if t.Status() == target {
			// already in the requested terminal status; nothing to do
			result = uc.buildResult(t, false, "", "")
			return nil
		}

		if err := t.ChangeStatus(target); err != nil {
			return errors.NewValidationError(err.Error())
		}

		alreadyCharged, err := uc.ledgerRepo.ExistsForTicket(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewInternalError("failed to check consumption ledger")
		}

		cl, err := uc.clientRepo.GetByIDForUpdate(txCtx, t.ClientID())
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("client %d not found", t.ClientID()))
		}

		charged := false
		chargedAmount := ""
		if cl.ContractType().IsMetered() && !alreadyCharged {
			amount, err := ledger.ComputeCharge(cl.ContractType(), cmd.Consumption)
			if err != nil {
				return err
			}

			entry, err := ledger.NewEntry(cl.ID(), t.ID(), cl.ContractType(), amount, cmd.Consumption.Note)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}

			if err := cl.ConsumeCredit(amount); err != nil {
				return errors.NewValidationError(err.Error())
			}

			if err := uc.ledgerRepo.Append(txCtx, entry); err != nil {
				return err
			}

			charged = true
			chargedAmount = amount.String()
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return errors.NewInternalError("failed to update ticket")
		}

		if charged {
			if err := uc.clientRepo.Update(txCtx, cl); err != nil {
				return errors.NewInternalError("failed to update client balance")
			}
		}

		balance := ""
		if cl.Balance() != nil {
			balance = cl.Balance().String()
		}
		result = uc.buildResult(t, charged, chargedAmount, balance)
		return nil
	})
	if err != nil {
		uc.logger.Errorw("close ticket transaction failed", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket closed",
		"ticket_id", cmd.TicketID,
		"status", result.Status,
		"charged", result.Charged,
	)
	return result, nil
}

func (uc *CloseTicketUseCase) validateCommand(cmd CloseTicketCommand) (vo.TicketStatus, error) {
	if cmd.TicketID == 0 {
		return "", errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActorID == 0 {
		return "", errors.NewValidationError("actor ID is required")
	}
	if !cmd.ActorRole.CanWrite() {
		return "", errors.NewForbiddenError("role cannot close tickets")
	}

	target, err := vo.NewTicketStatus(cmd.TargetStatus)
	if err != nil {
		return "", errors.NewValidationError(err.Error())
	}
	if !target.IsTerminal() {
		return "", errors.NewValidationError("close requires a terminal status", cmd.TargetStatus)
	}
	return target, nil
}

func (uc *CloseTicketUseCase) buildResult(t *ticket.Ticket, charged bool, amount, balance string) *CloseTicketResult {
	closedAt := ""
	if t.ClosedAt() != nil {
		closedAt = t.ClosedAt().Format(time.RFC3339)
	}
	return &CloseTicketResult{
		TicketID:      t.ID(),
		Status:        t.Status().String(),
		ClosedAt:      closedAt,
		Charged:       charged,
		ChargedAmount: amount,
		Balance:       balance,
	}
}
