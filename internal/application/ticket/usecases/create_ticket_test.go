package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/domain/client"
	cvo "gmao/internal/domain/client/valueobjects"
	"gmao/internal/domain/equipment"
	"gmao/internal/domain/site"
	"gmao/internal/domain/ticket"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
)

func existingClient(t *testing.T, id uint) *client.Client {
	t.Helper()
	now := time.Now().UTC()
	cl, err := client.ReconstructClient(id, "Acme SA", cvo.ContractNone, nil, now, now)
	require.NoError(t, err)
	return cl
}

func clientEquipment(t *testing.T, id, clientID uint) *equipment.Equipment {
	t.Helper()
	now := time.Now().UTC()
	eq, err := equipment.ReconstructEquipment(id, clientID, "chaudiere", "V200", "SN-1", equipment.DefaultStatus, nil, nil, now, now)
	require.NoError(t, err)
	return eq
}

func clientSite(t *testing.T, id, clientID uint) *site.Site {
	t.Helper()
	now := time.Now().UTC()
	s, err := site.ReconstructSite(id, clientID, "Atelier nord", "", "Lyon", "", now, now)
	require.NoError(t, err)
	return s
}

func TestCreateTicketWithMemberships(t *testing.T) {
	var saved *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(1)
		},
	}
	clientRepo := &mockClientRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*client.Client, error) { return existingClient(t, 7), nil },
	}
	equipmentRepo := &mockEquipmentRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*equipment.Equipment, error) {
			return []*equipment.Equipment{clientEquipment(t, 3, 7)}, nil
		},
	}
	siteRepo := &mockSiteRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*site.Site, error) {
			return []*site.Site{clientSite(t, 5, 7)}, nil
		},
	}

	uc := NewCreateTicketUseCase(ticketRepo, clientRepo, equipmentRepo, siteRepo, noopLogger{})
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		ClientID:     7,
		Title:        "panne chaudiere",
		Description:  "ne demarre plus",
		Kind:         "breakdown",
		Priority:     "high",
		EquipmentIDs: []uint{3, 3},
		SiteIDs:      []uint{5},
		ActorID:      4,
		ActorRole:    authorization.RoleTechnicien,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.TicketID)
	assert.Equal(t, "open", result.Status)

	require.NotNil(t, saved)
	assert.Equal(t, []uint{3}, saved.EquipmentIDs())
	assert.Equal(t, []uint{5}, saved.SiteIDs())
	assert.Nil(t, saved.ClosedAt())
}

func TestCreateTicketRejectsForeignEquipment(t *testing.T) {
	clientRepo := &mockClientRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*client.Client, error) { return existingClient(t, 7), nil },
	}
	equipmentRepo := &mockEquipmentRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*equipment.Equipment, error) {
			return []*equipment.Equipment{clientEquipment(t, 3, 99)}, nil
		},
	}

	uc := NewCreateTicketUseCase(&mockTicketRepository{}, clientRepo, equipmentRepo, &mockSiteRepository{}, noopLogger{})
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		ClientID:     7,
		Title:        "panne",
		Kind:         "breakdown",
		Priority:     "low",
		EquipmentIDs: []uint{3},
		ActorID:      4,
		ActorRole:    authorization.RoleTechnicien,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateTicketUnknownClientRefused(t *testing.T) {
	clientRepo := &mockClientRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*client.Client, error) {
			return nil, errors.NewNotFoundError("client not found")
		},
	}

	uc := NewCreateTicketUseCase(&mockTicketRepository{}, clientRepo, &mockEquipmentRepository{}, &mockSiteRepository{}, noopLogger{})
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		ClientID:  999,
		Title:     "panne",
		Kind:      "breakdown",
		Priority:  "low",
		ActorID:   4,
		ActorRole: authorization.RoleTechnicien,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateTicketReadOnlyRefused(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockClientRepository{}, &mockEquipmentRepository{}, &mockSiteRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		ClientID:  7,
		Title:     "panne",
		Kind:      "breakdown",
		Priority:  "low",
		ActorID:   4,
		ActorRole: authorization.RoleReadOnly,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
