package equipment

import (
	"fmt"
	"time"

	"gmao/internal/shared/biztime"
)

// DefaultStatus is the state a freshly registered piece of equipment is in.
const DefaultStatus = "en service"

// Equipment is a maintainable asset installed at a client. Kind and model
// are free-form text; the serial number distinguishes units of the same
// model.
type Equipment struct {
	id            uint
	clientID      uint
	kind          string
	model         string
	serialNumber  string
	status        string
	installedAt   *time.Time
	warrantyEndAt *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewEquipment(clientID uint, kind, model, serialNumber string, installedAt, warrantyEndAt *time.Time) (*Equipment, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(kind) == 0 {
		return nil, fmt.Errorf("equipment kind is required")
	}
	if len(kind) > 128 {
		return nil, fmt.Errorf("equipment kind exceeds maximum length of 128 characters")
	}

	now := biztime.NowUTC()
	return &Equipment{
		clientID:      clientID,
		kind:          kind,
		model:         model,
		serialNumber:  serialNumber,
		status:        DefaultStatus,
		installedAt:   installedAt,
		warrantyEndAt: warrantyEndAt,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructEquipment(
	id uint,
	clientID uint,
	kind, model, serialNumber, status string,
	installedAt, warrantyEndAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Equipment, error) {
	if id == 0 {
		return nil, fmt.Errorf("equipment ID cannot be zero")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(kind) == 0 {
		return nil, fmt.Errorf("equipment kind is required")
	}
	if status == "" {
		status = DefaultStatus
	}

	return &Equipment{
		id:            id,
		clientID:      clientID,
		kind:          kind,
		model:         model,
		serialNumber:  serialNumber,
		status:        status,
		installedAt:   installedAt,
		warrantyEndAt: warrantyEndAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (e *Equipment) ID() uint {
	return e.id
}

func (e *Equipment) ClientID() uint {
	return e.clientID
}

func (e *Equipment) Kind() string {
	return e.kind
}

func (e *Equipment) Model() string {
	return e.model
}

func (e *Equipment) SerialNumber() string {
	return e.serialNumber
}

func (e *Equipment) Status() string {
	return e.status
}

func (e *Equipment) InstalledAt() *time.Time {
	return e.installedAt
}

func (e *Equipment) WarrantyEndAt() *time.Time {
	return e.warrantyEndAt
}

func (e *Equipment) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Equipment) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Equipment) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("equipment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("equipment ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Equipment) Update(kind, model, serialNumber, status string, installedAt, warrantyEndAt *time.Time) error {
	if len(kind) == 0 {
		return fmt.Errorf("equipment kind is required")
	}
	if len(kind) > 128 {
		return fmt.Errorf("equipment kind exceeds maximum length of 128 characters")
	}
	if status == "" {
		status = DefaultStatus
	}

	e.kind = kind
	e.model = model
	e.serialNumber = serialNumber
	e.status = status
	e.installedAt = installedAt
	e.warrantyEndAt = warrantyEndAt
	e.updatedAt = biztime.NowUTC()
	return nil
}

// Label returns the display form used to populate ticket forms,
// e.g. "Chaudiere Viessmann V200 (SN-1432)".
func (e *Equipment) Label() string {
	label := e.kind
	if e.model != "" {
		label += " " + e.model
	}
	if e.serialNumber != "" {
		label += fmt.Sprintf(" (%s)", e.serialNumber)
	}
	return label
}
