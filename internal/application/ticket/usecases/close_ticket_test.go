package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/domain/client"
	cvo "gmao/internal/domain/client/valueobjects"
	"gmao/internal/domain/ledger"
	"gmao/internal/domain/ticket"
	tvo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
)

func openTicket(t *testing.T, id, clientID uint) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(
		id, clientID, nil, nil, nil,
		"panne chaudiere", "ne demarre plus",
		tvo.KindBreakdown, tvo.PriorityHigh, tvo.StatusOpen,
		nil, nil, now, nil, now,
	)
	require.NoError(t, err)
	return tk
}

func meteredClient(t *testing.T, id uint, kind cvo.ContractType, balance string) *client.Client {
	t.Helper()
	now := time.Now().UTC()
	b, err := decimal.NewFromString(balance)
	require.NoError(t, err)
	cl, err := client.ReconstructClient(id, "Acme SA", kind, &b, now, now)
	require.NoError(t, err)
	return cl
}

func newCloseUseCase(
	ticketRepo *mockTicketRepository,
	clientRepo *mockClientRepository,
	ledgerRepo *mockLedgerRepository,
) *CloseTicketUseCase {
	return NewCloseTicketUseCase(&mockTxManager{}, ticketRepo, clientRepo, ledgerRepo, noopLogger{})
}

func TestCloseTicketChargesTimeContract(t *testing.T) {
	tk := openTicket(t, 1, 7)
	cl := meteredClient(t, 7, cvo.ContractCreditTime, "10")

	var appended *ledger.Entry
	var updatedClient *client.Client
	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	clientRepo := &mockClientRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*client.Client, error) { return cl, nil },
		UpdateFunc: func(ctx context.Context, c *client.Client) error {
			updatedClient = c
			return nil
		},
	}
	ledgerRepo := &mockLedgerRepository{
		AppendFunc: func(ctx context.Context, entry *ledger.Entry) error {
			appended = entry
			return nil
		},
	}

	uc := newCloseUseCase(ticketRepo, clientRepo, ledgerRepo)
	result, err := uc.Execute(context.Background(), CloseTicketCommand{
		TicketID:     1,
		TargetStatus: "resolved",
		ActorID:      4,
		ActorRole:    authorization.RoleTechnicien,
		Consumption:  ledger.ChargeInput{DurationHours: "2.5"},
	})

	require.NoError(t, err)
	assert.Equal(t, "resolved", result.Status)
	assert.True(t, result.Charged)
	assert.Equal(t, "2.5", result.ChargedAmount)
	assert.Equal(t, "7.5", result.Balance)
	assert.NotEmpty(t, result.ClosedAt)

	require.NotNil(t, appended)
	assert.Equal(t, uint(1), appended.TicketID())
	assert.Equal(t, uint(7), appended.ClientID())
	assert.True(t, appended.Amount().Equal(decimal.RequireFromString("2.5")))

	require.NotNil(t, updatedClient)
	require.NotNil(t, updatedClient.Balance())
	assert.True(t, updatedClient.Balance().Equal(decimal.RequireFromString("7.5")))
	assert.NotNil(t, tk.ClosedAt())
}

func TestCloseTicketChargesFromTimePair(t *testing.T) {
	tk := openTicket(t, 1, 7)
	cl := meteredClient(t, 7, cvo.ContractCreditTime, "10")

	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	clientRepo := &mockClientRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*client.Client, error) { return cl, nil },
	}

	uc := newCloseUseCase(ticketRepo, clientRepo, &mockLedgerRepository{})
	result, err := uc.Execute(context.Background(), CloseTicketCommand{
		TicketID:     1,
		TargetStatus: "closed",
		ActorID:      4,
		ActorRole:    authorization.RoleAdmin,
		Consumption:  ledger.ChargeInput{StartTime: "09:00", EndTime: "11:30"},
	})

	require.NoError(t, err)
	assert.Equal(t, "2.5", result.ChargedAmount)
	assert.Equal(t, "7.5", result.Balance)
}

func TestCloseTicketAlreadyChargedDoesNotRecharge(t *testing.T) {
	// a ticket that was resolved, charged, then reopened
	tk := openTicket(t, 1, 7)
	cl := meteredClient(t, 7, cvo.ContractCreditTime, "7.5")

	appendCalls := 0
	clientUpdates := 0
	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	clientRepo := &mockClientRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*client.Client, error) { return cl, nil },
		UpdateFunc: func(ctx context.Context, c *client.Client) error {
			clientUpdates++
			return nil
		},
	}
	ledgerRepo := &mockLedgerRepository{
		ExistsForTicketFunc: func(ctx context.Context, ticketID uint) (bool, error) { return true, nil },
		AppendFunc: func(ctx context.Context, entry *ledger.Entry) error {
			appendCalls++
			return nil
		},
	}

	uc := newCloseUseCase(ticketRepo, clientRepo, ledgerRepo)
	result, err := uc.Execute(context.Background(), CloseTicketCommand{
		TicketID:     1,
		TargetStatus: "resolved",
		ActorID:      4,
		ActorRole:    authorization.RoleTechnicien,
	})

	require.NoError(t, err)
	assert.Equal(t, "resolved", result.Status)
	assert.False(t, result.Charged)
	assert.Equal(t, 0, appendCalls)
	assert.Equal(t, 0, clientUpdates)
	require.NotNil(t, cl.Balance())
	assert.True(t, cl.Balance().Equal(decimal.RequireFromString("7.5")))
}

func TestCloseTicketInvalidConsumptionFailsWholeOperation(t *testing.T) {
	tk := openTicket(t, 1, 7)
	cl := meteredClient(t, 7, cvo.ContractCreditTime, "10")

	ticketUpdates := 0
	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			ticketUpdates++
			return nil
		},
	}
	clientRepo := &mockClientRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*client.Client, error) { return cl, nil },
	}

	uc := newCloseUseCase(ticketRepo, clientRepo, &mockLedgerRepository{})
	_, err := uc.Execute(context.Background(), CloseTicketCommand{
		TicketID:     1,
		TargetStatus: "resolved",
		ActorID:      4,
		ActorRole:    authorization.RoleTechnicien,
		Consumption:  ledger.ChargeInput{DurationHours: "abc"},
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 0, ticketUpdates)
}

func TestCloseTicketLedgerAppendFailureRollsBack(t *testing.T) {
	tk := openTicket(t, 1, 7)
	cl := meteredClient(t, 7, cvo.ContractCreditTime, "10")

	clientUpdates := 0
	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	clientRepo := &mockClientRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*client.Client, error) { return cl, nil },
		UpdateFunc: func(ctx context.Context, c *client.Client) error {
			clientUpdates++
			return nil
		},
	}
	ledgerRepo := &mockLedgerRepository{
		AppendFunc: func(ctx context.Context, entry *ledger.Entry) error {
			return errors.NewConflictError("duplicate consumption for ticket")
		},
	}

	uc := newCloseUseCase(ticketRepo, clientRepo, ledgerRepo)
	_, err := uc.Execute(context.Background(), CloseTicketCommand{
		TicketID:     1,
		TargetStatus: "closed",
		ActorID:      4,
		ActorRole:    authorization.RoleTechnicien,
		Consumption:  ledger.ChargeInput{DurationHours: "1"},
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, 0, clientUpdates)
}

func TestCloseTicketUnmeteredClientTransitionsWithoutCharge(t *testing.T) {
	tk := openTicket(t, 1, 7)
	now := time.Now().UTC()
	cl, err := client.ReconstructClient(7, "Acme SA", cvo.ContractNone, nil, now, now)
	require.NoError(t, err)

	appendCalls := 0
	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	clientRepo := &mockClientRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*client.Client, error) { return cl, nil },
	}
	ledgerRepo := &mockLedgerRepository{
		AppendFunc: func(ctx context.Context, entry *ledger.Entry) error {
			appendCalls++
			return nil
		},
	}

	uc := newCloseUseCase(ticketRepo, clientRepo, ledgerRepo)
	result, err := uc.Execute(context.Background(), CloseTicketCommand{
		TicketID:     1,
		TargetStatus: "resolved",
		ActorID:      4,
		ActorRole:    authorization.RoleTechnicien,
	})

	require.NoError(t, err)
	assert.Equal(t, "resolved", result.Status)
	assert.False(t, result.Charged)
	assert.Equal(t, 0, appendCalls)
	assert.NotNil(t, tk.ClosedAt())
}

func TestCloseTicketAlreadyTerminalIsNoOp(t *testing.T) {
	now := time.Now().UTC()
	closedAt := now.Add(-time.Hour)
	tk, err := ticket.ReconstructTicket(
		1, 7, nil, nil, nil,
		"panne chaudiere", "",
		tvo.KindBreakdown, tvo.PriorityHigh, tvo.StatusResolved,
		nil, nil, now.Add(-2*time.Hour), &closedAt, now,
	)
	require.NoError(t, err)

	ticketUpdates := 0
	existsCalls := 0
	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			ticketUpdates++
			return nil
		},
	}
	ledgerRepo := &mockLedgerRepository{
		ExistsForTicketFunc: func(ctx context.Context, ticketID uint) (bool, error) {
			existsCalls++
			return true, nil
		},
	}

	uc := newCloseUseCase(ticketRepo, &mockClientRepository{}, ledgerRepo)
	result, err := uc.Execute(context.Background(), CloseTicketCommand{
		TicketID:     1,
		TargetStatus: "resolved",
		ActorID:      4,
		ActorRole:    authorization.RoleTechnicien,
	})

	require.NoError(t, err)
	assert.Equal(t, "resolved", result.Status)
	assert.False(t, result.Charged)
	assert.Equal(t, 0, ticketUpdates)
	assert.Equal(t, 0, existsCalls)
}

func TestCloseTicketValidation(t *testing.T) {
	uc := newCloseUseCase(&mockTicketRepository{}, &mockClientRepository{}, &mockLedgerRepository{})

	t.Run("read_only role refused", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CloseTicketCommand{
			TicketID:     1,
			TargetStatus: "resolved",
			ActorID:      4,
			ActorRole:    authorization.RoleReadOnly,
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("non-terminal target refused", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CloseTicketCommand{
			TicketID:     1,
			TargetStatus: "in_progress",
			ActorID:      4,
			ActorRole:    authorization.RoleTechnicien,
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("missing ticket ID refused", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CloseTicketCommand{
			TargetStatus: "resolved",
			ActorID:      4,
			ActorRole:    authorization.RoleTechnicien,
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestCloseTicketPointContract(t *testing.T) {
	tk := openTicket(t, 1, 7)
	cl := meteredClient(t, 7, cvo.ContractCreditPoint, "4")

	var appended *ledger.Entry
	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	clientRepo := &mockClientRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*client.Client, error) { return cl, nil },
	}
	ledgerRepo := &mockLedgerRepository{
		AppendFunc: func(ctx context.Context, entry *ledger.Entry) error {
			appended = entry
			return nil
		},
	}

	uc := newCloseUseCase(ticketRepo, clientRepo, ledgerRepo)
	result, err := uc.Execute(context.Background(), CloseTicketCommand{
		TicketID:     1,
		TargetStatus: "closed",
		ActorID:      4,
		ActorRole:    authorization.RoleTechnicien,
		Consumption:  ledger.ChargeInput{Points: "6", Note: "remplacement carte"},
	})

	require.NoError(t, err)
	// over-consumption is recorded, not blocked
	assert.Equal(t, "-2", result.Balance)
	require.NotNil(t, appended)
	assert.Equal(t, "remplacement carte", appended.Note())
}
