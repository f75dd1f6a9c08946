package usecases

import (
	"context"

	"gmao/internal/domain/client"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type ListClientsQuery struct {
	Page     int
	PageSize int
}

type ClientSummary struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	ContractType string  `json:"contract_type"`
	Balance      *string `json:"balance,omitempty"`
}

type ListClientsResult struct {
	Clients  []ClientSummary `json:"clients"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

type ListClientsUseCase struct {
	clientRepo client.ClientRepository
	logger     logger.Interface
}

func NewListClientsUseCase(clientRepo client.ClientRepository, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, query ListClientsQuery) (*ListClientsResult, error) {
	page := query.Page
	pageSize := query.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	clients, total, err := uc.clientRepo.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, errors.NewInternalError("failed to list clients")
	}

	result := &ListClientsResult{
		Clients:  make([]ClientSummary, 0, len(clients)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, cl := range clients {
		summary := ClientSummary{
			ID:           cl.ID(),
			Name:         cl.Name(),
			ContractType: cl.ContractType().String(),
		}
		if cl.Balance() != nil {
			balance := cl.Balance().String()
			summary.Balance = &balance
		}
		result.Clients = append(result.Clients, summary)
	}

	return result, nil
}
