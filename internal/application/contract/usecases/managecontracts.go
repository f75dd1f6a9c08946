package usecases

import (
	"context"
	"fmt"
	"time"

	"gmao/internal/domain/client"
	"gmao/internal/domain/contract"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/biztime"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type CreateContractCommand struct {
	ClientID uint
	Terms    string
	// RenewalDate is a date in 2006-01-02 form, empty for none.
	RenewalDate string
	ActorID     uint
	ActorRole   authorization.Role
}

type ContractView struct {
	ID          uint       `json:"id"`
	ClientID    uint       `json:"client_id"`
	Terms       string     `json:"terms"`
	RenewalDate *time.Time `json:"renewal_date,omitempty"`
	Cancelled   bool       `json:"cancelled"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CreateContractUseCase struct {
	contractRepo contract.ContractRepository
	clientRepo   client.ClientRepository
	logger       logger.Interface
}

func NewCreateContractUseCase(
	contractRepo contract.ContractRepository,
	clientRepo client.ClientRepository,
	logger logger.Interface,
) *CreateContractUseCase {
	return &CreateContractUseCase{
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
		logger:       logger,
	}
}

func (uc *CreateContractUseCase) Execute(ctx context.Context, cmd CreateContractCommand) (*ContractView, error) {
	uc.logger.Infow("executing create contract use case", "client_id", cmd.ClientID)

	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators manage contracts")
	}

	if _, err := uc.clientRepo.GetByID(ctx, cmd.ClientID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", cmd.ClientID))
	}

	var renewalDate *time.Time
	if cmd.RenewalDate != "" {
		d, err := biztime.ParseDateInBizTimezone(cmd.RenewalDate)
		if err != nil {
			return nil, errors.NewValidationError("renewal date must be in YYYY-MM-DD form", "renewal_date")
		}
		renewalDate = &d
	}

	c, err := contract.NewMaintenanceContract(cmd.ClientID, cmd.Terms, renewalDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.contractRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save contract", "error", err)
		return nil, errors.NewInternalError("failed to save contract")
	}

	view := newContractView(c)
	return &view, nil
}

type CancelContractCommand struct {
	ContractID uint
	ActorID    uint
	ActorRole  authorization.Role
}

type CancelContractUseCase struct {
	contractRepo contract.ContractRepository
	logger       logger.Interface
}

func NewCancelContractUseCase(contractRepo contract.ContractRepository, logger logger.Interface) *CancelContractUseCase {
	return &CancelContractUseCase{
		contractRepo: contractRepo,
		logger:       logger,
	}
}

func (uc *CancelContractUseCase) Execute(ctx context.Context, cmd CancelContractCommand) (*ContractView, error) {
	uc.logger.Infow("executing cancel contract use case", "contract_id", cmd.ContractID)

	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators manage contracts")
	}

	c, err := uc.contractRepo.GetByID(ctx, cmd.ContractID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("contract %d not found", cmd.ContractID))
	}

	c.Cancel()

	if err := uc.contractRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update contract", "contract_id", cmd.ContractID, "error", err)
		return nil, errors.NewInternalError("failed to update contract")
	}

	view := newContractView(c)
	return &view, nil
}

type ListContractsQuery struct {
	ClientID uint
}

type ListContractsResult struct {
	Contracts []ContractView `json:"contracts"`
}

type ListContractsUseCase struct {
	contractRepo contract.ContractRepository
	logger       logger.Interface
}

func NewListContractsUseCase(contractRepo contract.ContractRepository, logger logger.Interface) *ListContractsUseCase {
	return &ListContractsUseCase{
		contractRepo: contractRepo,
		logger:       logger,
	}
}

func (uc *ListContractsUseCase) Execute(ctx context.Context, query ListContractsQuery) (*ListContractsResult, error) {
	if query.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	contracts, err := uc.contractRepo.ListByClient(ctx, query.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to list contracts", "client_id", query.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to list contracts")
	}

	result := &ListContractsResult{Contracts: make([]ContractView, 0, len(contracts))}
	for _, c := range contracts {
		result.Contracts = append(result.Contracts, newContractView(c))
	}
	return result, nil
}

func newContractView(c *contract.MaintenanceContract) ContractView {
	return ContractView{
		ID:          c.ID(),
		ClientID:    c.ClientID(),
		Terms:       c.Terms(),
		RenewalDate: c.RenewalDate(),
		Cancelled:   c.IsCancelled(),
		CreatedAt:   c.CreatedAt(),
	}
}
