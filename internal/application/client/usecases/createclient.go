package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"gmao/internal/domain/client"
	vo "gmao/internal/domain/client/valueobjects"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type CreateClientCommand struct {
	Name         string
	ContractType string
	// Balance is the opening balance as submitted, empty for none.
	Balance   string
	ActorID   uint
	ActorRole authorization.Role
}

type CreateClientResult struct {
	ClientID     uint
	Name         string
	ContractType string
}

type CreateClientUseCase struct {
	clientRepo client.ClientRepository
	logger     logger.Interface
}

func NewCreateClientUseCase(clientRepo client.ClientRepository, logger logger.Interface) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*CreateClientResult, error) {
	uc.logger.Infow("executing create client use case", "name", cmd.Name)

	if !cmd.ActorRole.CanWrite() {
		return nil, errors.NewForbiddenError("role cannot create clients")
	}

	contractType, err := vo.NewContractType(cmd.ContractType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	cl, err := client.NewClient(cmd.Name, contractType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Balance != "" {
		balance, err := decimal.NewFromString(cmd.Balance)
		if err != nil {
			return nil, errors.NewValidationError("balance must be a number", "balance")
		}
		if err := cl.SetContract(contractType, &balance); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.clientRepo.Save(ctx, cl); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a client with this name already exists")
		}
		uc.logger.Errorw("failed to save client", "error", err)
		return nil, errors.NewInternalError("failed to save client")
	}

	uc.logger.Infow("client created", "client_id", cl.ID(), "contract_type", contractType.String())

	return &CreateClientResult{
		ClientID:     cl.ID(),
		Name:         cl.Name(),
		ContractType: cl.ContractType().String(),
	}, nil
}
