package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"gmao/internal/domain/client"
	vo "gmao/internal/domain/client/valueobjects"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

// UpdateClientCommand renames a client and rewrites its contract. Changing
// the contract resets the balance to the submitted value; past ledger entries
// are untouched.
type UpdateClientCommand struct {
	ClientID     uint
	Name         string
	ContractType string
	Balance      string
	ActorID      uint
	ActorRole    authorization.Role
}

type UpdateClientResult struct {
	ClientID     uint
	Name         string
	ContractType string
	Balance      string
}

type UpdateClientUseCase struct {
	clientRepo client.ClientRepository
	logger     logger.Interface
}

func NewUpdateClientUseCase(clientRepo client.ClientRepository, logger logger.Interface) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*UpdateClientResult, error) {
	uc.logger.Infow("executing update client use case", "client_id", cmd.ClientID)

	if cmd.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}
	if !cmd.ActorRole.CanWrite() {
		return nil, errors.NewForbiddenError("role cannot update clients")
	}

	contractType, err := vo.NewContractType(cmd.ContractType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var balance *decimal.Decimal
	if cmd.Balance != "" {
		b, err := decimal.NewFromString(cmd.Balance)
		if err != nil {
			return nil, errors.NewValidationError("balance must be a number", "balance")
		}
		balance = &b
	}

	cl, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", cmd.ClientID))
	}

	if err := cl.Rename(cmd.Name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := cl.SetContract(contractType, balance); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Update(ctx, cl); err != nil {
		uc.logger.Errorw("failed to update client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to update client")
	}

	result := &UpdateClientResult{
		ClientID:     cl.ID(),
		Name:         cl.Name(),
		ContractType: cl.ContractType().String(),
	}
	if cl.Balance() != nil {
		result.Balance = cl.Balance().String()
	}
	return result, nil
}
