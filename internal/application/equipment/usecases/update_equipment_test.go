package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/domain/equipment"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
)

func storedEquipment(t *testing.T) *equipment.Equipment {
	t.Helper()
	now := time.Now().UTC()
	installed := now.AddDate(-1, 0, 0)
	eq, err := equipment.ReconstructEquipment(12, 7, "Chaudiere", "Viessmann V200", "SN-1432", "en service", &installed, nil, now, now)
	require.NoError(t, err)
	return eq
}

func TestUpdateEquipmentChangesStatusAndClearsDates(t *testing.T) {
	eq := storedEquipment(t)
	updated := false
	repo := &mockEquipmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*equipment.Equipment, error) { return eq, nil },
		UpdateFunc: func(ctx context.Context, e *equipment.Equipment) error {
			updated = true
			return nil
		},
	}

	uc := NewUpdateEquipmentUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), UpdateEquipmentCommand{
		EquipmentID:  12,
		Kind:         "Chaudiere",
		Model:        "Viessmann V200",
		SerialNumber: "SN-1432",
		Status:       "hors service",
		ActorID:      4,
		ActorRole:    authorization.RoleTechnicien,
	})

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "hors service", result.Status)
	assert.Nil(t, eq.InstalledAt())
}

func TestUpdateEquipmentRejectsReadOnlyRole(t *testing.T) {
	uc := NewUpdateEquipmentUseCase(&mockEquipmentRepository{}, noopLogger{})
	_, err := uc.Execute(context.Background(), UpdateEquipmentCommand{
		EquipmentID: 12,
		Kind:        "Chaudiere",
		ActorID:     4,
		ActorRole:   authorization.RoleReadOnly,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdateEquipmentEmptyKind(t *testing.T) {
	eq := storedEquipment(t)
	repo := &mockEquipmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*equipment.Equipment, error) { return eq, nil },
	}

	uc := NewUpdateEquipmentUseCase(repo, noopLogger{})
	_, err := uc.Execute(context.Background(), UpdateEquipmentCommand{
		EquipmentID: 12,
		Kind:        "",
		ActorID:     4,
		ActorRole:   authorization.RoleAdmin,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
