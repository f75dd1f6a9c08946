package ticket

import (
	"context"

	vo "gmao/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// GetByIDForUpdate loads the ticket with a row-level write lock. Must be
	// called inside a transaction; this is what serializes concurrent close
	// requests for the same ticket.
	GetByIDForUpdate(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filters TicketFilter) ([]*Ticket, int64, error)
}

type TicketFilter struct {
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	Kind       *vo.TicketKind
	ClientID   *uint
	AssigneeID *uint
	Page       int
	PageSize   int
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	// GetByTicketID returns the ticket's comments in chronological discussion
	// order (created time ascending), independent of edit time.
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
