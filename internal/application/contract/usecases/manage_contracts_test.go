package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/domain/client"
	vo "gmao/internal/domain/client/valueobjects"
	"gmao/internal/domain/contract"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
)

func existingClient(t *testing.T) *client.Client {
	t.Helper()
	now := time.Now().UTC()
	cl, err := client.ReconstructClient(7, "Acme SA", vo.ContractCreditTime, nil, now, now)
	require.NoError(t, err)
	return cl
}

func storedContract(t *testing.T, cancelled bool) *contract.MaintenanceContract {
	t.Helper()
	now := time.Now().UTC()
	renewal := now.AddDate(1, 0, 0)
	c, err := contract.ReconstructMaintenanceContract(3, 7, "Entretien annuel chaudiere", &renewal, cancelled, now, now)
	require.NoError(t, err)
	return c
}

func TestCreateContractRequiresAdmin(t *testing.T) {
	uc := NewCreateContractUseCase(&mockContractRepository{}, &mockClientRepository{}, noopLogger{})
	_, err := uc.Execute(context.Background(), CreateContractCommand{
		ClientID:  7,
		Terms:     "Entretien annuel",
		ActorID:   4,
		ActorRole: authorization.RoleTechnicien,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateContractSavesWithRenewalDate(t *testing.T) {
	var saved *contract.MaintenanceContract
	contractRepo := &mockContractRepository{
		SaveFunc: func(ctx context.Context, c *contract.MaintenanceContract) error {
			saved = c
			return c.SetID(3)
		},
	}
	clientRepo := &mockClientRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*client.Client, error) {
			return existingClient(t), nil
		},
	}

	uc := NewCreateContractUseCase(contractRepo, clientRepo, noopLogger{})
	view, err := uc.Execute(context.Background(), CreateContractCommand{
		ClientID:    7,
		Terms:       "Entretien annuel chaudiere",
		RenewalDate: "2027-03-01",
		ActorID:     1,
		ActorRole:   authorization.RoleAdmin,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, uint(3), view.ID)
	assert.False(t, view.Cancelled)
	require.NotNil(t, view.RenewalDate)
}

func TestCreateContractRejectsBadRenewalDate(t *testing.T) {
	clientRepo := &mockClientRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*client.Client, error) {
			return existingClient(t), nil
		},
	}

	uc := NewCreateContractUseCase(&mockContractRepository{}, clientRepo, noopLogger{})
	_, err := uc.Execute(context.Background(), CreateContractCommand{
		ClientID:    7,
		Terms:       "Entretien annuel",
		RenewalDate: "01/03/2027",
		ActorID:     1,
		ActorRole:   authorization.RoleAdmin,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCancelContractMarksCancelled(t *testing.T) {
	c := storedContract(t, false)
	updated := false
	contractRepo := &mockContractRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*contract.MaintenanceContract, error) { return c, nil },
		UpdateFunc: func(ctx context.Context, c *contract.MaintenanceContract) error {
			updated = true
			return nil
		},
	}

	uc := NewCancelContractUseCase(contractRepo, noopLogger{})
	view, err := uc.Execute(context.Background(), CancelContractCommand{
		ContractID: 3,
		ActorID:    1,
		ActorRole:  authorization.RoleAdmin,
	})

	require.NoError(t, err)
	assert.True(t, updated)
	assert.True(t, view.Cancelled)
	assert.True(t, c.IsCancelled())
}

func TestCancelContractRequiresAdmin(t *testing.T) {
	uc := NewCancelContractUseCase(&mockContractRepository{}, noopLogger{})
	_, err := uc.Execute(context.Background(), CancelContractCommand{
		ContractID: 3,
		ActorID:    4,
		ActorRole:  authorization.RoleTechnicien,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCancelContractUnknown(t *testing.T) {
	contractRepo := &mockContractRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*contract.MaintenanceContract, error) {
			return nil, fmt.Errorf("contract not found")
		},
	}

	uc := NewCancelContractUseCase(contractRepo, noopLogger{})
	_, err := uc.Execute(context.Background(), CancelContractCommand{
		ContractID: 99,
		ActorID:    1,
		ActorRole:  authorization.RoleAdmin,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListContractsReturnsViews(t *testing.T) {
	contractRepo := &mockContractRepository{
		ListByClientFunc: func(ctx context.Context, clientID uint) ([]*contract.MaintenanceContract, error) {
			assert.Equal(t, uint(7), clientID)
			return []*contract.MaintenanceContract{storedContract(t, true), storedContract(t, false)}, nil
		},
	}

	uc := NewListContractsUseCase(contractRepo, noopLogger{})
	result, err := uc.Execute(context.Background(), ListContractsQuery{ClientID: 7})

	require.NoError(t, err)
	require.Len(t, result.Contracts, 2)
	assert.True(t, result.Contracts[0].Cancelled)
	assert.False(t, result.Contracts[1].Cancelled)
}
