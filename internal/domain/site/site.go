package site

import (
	"fmt"
	"time"

	"gmao/internal/shared/biztime"
)

// Site is a physical location belonging to a client where interventions
// take place.
type Site struct {
	id        uint
	clientID  uint
	name      string
	address   string
	city      string
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

func NewSite(clientID uint, name, address, city, notes string) (*Site, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("site name is required")
	}
	if len(name) > 128 {
		return nil, fmt.Errorf("site name exceeds maximum length of 128 characters")
	}

	now := biztime.NowUTC()
	return &Site{
		clientID:  clientID,
		name:      name,
		address:   address,
		city:      city,
		notes:     notes,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSite(
	id uint,
	clientID uint,
	name, address, city, notes string,
	createdAt, updatedAt time.Time,
) (*Site, error) {
	if id == 0 {
		return nil, fmt.Errorf("site ID cannot be zero")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("site name is required")
	}

	return &Site{
		id:        id,
		clientID:  clientID,
		name:      name,
		address:   address,
		city:      city,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Site) ID() uint {
	return s.id
}

func (s *Site) ClientID() uint {
	return s.clientID
}

func (s *Site) Name() string {
	return s.name
}

func (s *Site) Address() string {
	return s.address
}

func (s *Site) City() string {
	return s.city
}

func (s *Site) Notes() string {
	return s.notes
}

func (s *Site) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Site) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Site) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("site ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("site ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Site) Update(name, address, city, notes string) error {
	if len(name) == 0 {
		return fmt.Errorf("site name is required")
	}
	if len(name) > 128 {
		return fmt.Errorf("site name exceeds maximum length of 128 characters")
	}

	s.name = name
	s.address = address
	s.city = city
	s.notes = notes
	s.updatedAt = biztime.NowUTC()
	return nil
}

// Label returns the display form used to populate ticket forms,
// e.g. "Atelier nord (Lyon)".
func (s *Site) Label() string {
	if s.city == "" {
		return s.name
	}
	return fmt.Sprintf("%s (%s)", s.name, s.city)
}
