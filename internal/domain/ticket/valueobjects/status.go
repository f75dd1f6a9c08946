package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusOnHold     TicketStatus = "on_hold"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusOnHold:     true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// IsTerminal reports whether the status closes the ticket. Only terminal
// transitions set a closure timestamp and may consume contract credit.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusResolved || ts == StatusClosed
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// CanTransitionTo reports whether a status change is permitted. The status is
// selected freely from the ticket view, so any distinct valid status is
// reachable; moving a resolved ticket back to a non-terminal status reopens
// it.
func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	if !ts.IsValid() || !newStatus.IsValid() {
		return false
	}
	return ts != newStatus
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
