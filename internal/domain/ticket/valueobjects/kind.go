package valueobjects

import "fmt"

// TicketKind is the nature of the requested service work.
type TicketKind string

const (
	KindBreakdown    TicketKind = "breakdown"
	KindMaintenance  TicketKind = "maintenance"
	KindInstallation TicketKind = "installation"
	KindOther        TicketKind = "other"
)

var validTicketKinds = map[TicketKind]bool{
	KindBreakdown:    true,
	KindMaintenance:  true,
	KindInstallation: true,
	KindOther:        true,
}

func (k TicketKind) String() string {
	return string(k)
}

func (k TicketKind) IsValid() bool {
	return validTicketKinds[k]
}

func NewTicketKind(s string) (TicketKind, error) {
	k := TicketKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid ticket kind: %s", s)
	}
	return k, nil
}
