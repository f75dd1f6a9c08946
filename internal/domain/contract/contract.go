package contract

import (
	"fmt"
	"time"

	"gmao/internal/shared/biztime"
)

// MaintenanceContract is an administrative record of a signed maintenance
// agreement with a client. It carries the legal terms and the renewal date;
// the consumable balance lives on the client itself.
type MaintenanceContract struct {
	id          uint
	clientID    uint
	terms       string
	renewalDate *time.Time
	cancelled   bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewMaintenanceContract(clientID uint, terms string, renewalDate *time.Time) (*MaintenanceContract, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("contract terms are required")
	}

	now := biztime.NowUTC()
	return &MaintenanceContract{
		clientID:    clientID,
		terms:       terms,
		renewalDate: renewalDate,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructMaintenanceContract(
	id uint,
	clientID uint,
	terms string,
	renewalDate *time.Time,
	cancelled bool,
	createdAt, updatedAt time.Time,
) (*MaintenanceContract, error) {
	if id == 0 {
		return nil, fmt.Errorf("contract ID cannot be zero")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}

	return &MaintenanceContract{
		id:          id,
		clientID:    clientID,
		terms:       terms,
		renewalDate: renewalDate,
		cancelled:   cancelled,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (m *MaintenanceContract) ID() uint {
	return m.id
}

func (m *MaintenanceContract) ClientID() uint {
	return m.clientID
}

func (m *MaintenanceContract) Terms() string {
	return m.terms
}

func (m *MaintenanceContract) RenewalDate() *time.Time {
	return m.renewalDate
}

func (m *MaintenanceContract) IsCancelled() bool {
	return m.cancelled
}

func (m *MaintenanceContract) CreatedAt() time.Time {
	return m.createdAt
}

func (m *MaintenanceContract) UpdatedAt() time.Time {
	return m.updatedAt
}

func (m *MaintenanceContract) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("contract ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("contract ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *MaintenanceContract) UpdateTerms(terms string, renewalDate *time.Time) error {
	if len(terms) == 0 {
		return fmt.Errorf("contract terms are required")
	}
	m.terms = terms
	m.renewalDate = renewalDate
	m.updatedAt = biztime.NowUTC()
	return nil
}

func (m *MaintenanceContract) Cancel() {
	m.cancelled = true
	m.updatedAt = biztime.NowUTC()
}
