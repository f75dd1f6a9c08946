// Package ledger holds the contract consumption ledger: immutable
// proof-of-consumption records tying one ticket to one charge against one
// client's balance, plus the engine that derives charge amounts from
// close-time inputs.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "gmao/internal/domain/client/valueobjects"
	"gmao/internal/shared/biztime"
)

// Entry is one consumption record. At most one entry ever exists per ticket;
// entries are never updated or removed.
type Entry struct {
	id        uint
	clientID  uint
	ticketID  uint
	kind      vo.ContractType
	amount    decimal.Decimal
	note      string
	createdAt time.Time
}

func NewEntry(clientID, ticketID uint, kind vo.ContractType, amount decimal.Decimal, note string) (*Entry, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !kind.IsMetered() {
		return nil, fmt.Errorf("ledger entries require a metered contract kind, got %s", kind)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("ledger amount must be positive")
	}
	if note == "" {
		note = fmt.Sprintf("consommation ticket #%d", ticketID)
	}

	return &Entry{
		clientID:  clientID,
		ticketID:  ticketID,
		kind:      kind,
		amount:    amount,
		note:      note,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructEntry(
	id uint,
	clientID uint,
	ticketID uint,
	kind vo.ContractType,
	amount decimal.Decimal,
	note string,
	createdAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !kind.IsMetered() {
		return nil, fmt.Errorf("invalid ledger kind: %s", kind)
	}

	return &Entry{
		id:        id,
		clientID:  clientID,
		ticketID:  ticketID,
		kind:      kind,
		amount:    amount,
		note:      note,
		createdAt: createdAt,
	}, nil
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) ClientID() uint {
	return e.clientID
}

func (e *Entry) TicketID() uint {
	return e.ticketID
}

func (e *Entry) Kind() vo.ContractType {
	return e.kind
}

func (e *Entry) Amount() decimal.Decimal {
	return e.amount
}

func (e *Entry) Note() string {
	return e.note
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}
