package usecases

import (
	"context"
	"time"

	"gmao/internal/domain/ticket"
	vo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status     string
	Priority   string
	Kind       string
	ClientID   *uint
	AssigneeID *uint
	Page       int
	PageSize   int
}

type TicketSummary struct {
	ID         uint       `json:"id"`
	ClientID   uint       `json:"client_id"`
	AssigneeID *uint      `json:"assignee_id,omitempty"`
	Title      string     `json:"title"`
	Kind       string     `json:"kind"`
	Priority   string     `json:"priority"`
	Status     string     `json:"status"`
	OpenedAt   time.Time  `json:"opened_at"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
}

type ListTicketsResult struct {
	Tickets  []TicketSummary `json:"tickets"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		ClientID:   query.ClientID,
		AssigneeID: query.AssigneeID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if query.Kind != "" {
		kind, err := vo.NewTicketKind(query.Kind)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Kind = &kind
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	result := &ListTicketsResult{
		Tickets:  make([]TicketSummary, 0, len(tickets)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	for _, t := range tickets {
		result.Tickets = append(result.Tickets, TicketSummary{
			ID:         t.ID(),
			ClientID:   t.ClientID(),
			AssigneeID: t.AssigneeID(),
			Title:      t.Title(),
			Kind:       t.Kind().String(),
			Priority:   t.Priority().String(),
			Status:     t.Status().String(),
			OpenedAt:   t.OpenedAt(),
			ClosedAt:   t.ClosedAt(),
		})
	}

	return result, nil
}
