package ledger

import "context"

type LedgerRepository interface {
	// Append inserts one immutable entry. The storage layer enforces a unique
	// constraint on the ticket reference as the last line of defense against
	// double charging; a violation surfaces as a conflict error.
	Append(ctx context.Context, entry *Entry) error
	// ExistsForTicket is the idempotency pre-check consulted before charging.
	ExistsForTicket(ctx context.Context, ticketID uint) (bool, error)
	// ListByClient returns the client's consumption history, most recent
	// first.
	ListByClient(ctx context.Context, clientID uint) ([]*Entry, error)
	// ListByTicket returns entries for a ticket's detail view, oldest first.
	ListByTicket(ctx context.Context, ticketID uint) ([]*Entry, error)
}
