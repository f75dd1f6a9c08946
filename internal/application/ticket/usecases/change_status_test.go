package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/domain/ticket"
	tvo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
)

func TestChangeStatusMovesBetweenWorkingStates(t *testing.T) {
	tk := openTicket(t, 1, 7)
	updated := false
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updated = true
			return nil
		},
	}

	uc := NewChangeStatusUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  1,
		NewStatus: "in_progress",
		ActorID:   4,
		ActorRole: authorization.RoleTechnicien,
	})

	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)
	assert.False(t, result.Reopened)
	assert.True(t, updated)
	assert.Nil(t, tk.ClosedAt())
}

func TestChangeStatusReopensResolvedTicket(t *testing.T) {
	now := time.Now().UTC()
	closedAt := now.Add(-time.Hour)
	tk, err := ticket.ReconstructTicket(
		1, 7, nil, nil, nil,
		"panne chaudiere", "",
		tvo.KindBreakdown, tvo.PriorityHigh, tvo.StatusResolved,
		nil, nil, now.Add(-2*time.Hour), &closedAt, now,
	)
	require.NoError(t, err)

	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewChangeStatusUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  1,
		NewStatus: "open",
		ActorID:   4,
		ActorRole: authorization.RoleTechnicien,
	})

	require.NoError(t, err)
	assert.Equal(t, "open", result.Status)
	assert.True(t, result.Reopened)
	assert.Nil(t, tk.ClosedAt())
}

func TestChangeStatusRejectsTerminalTarget(t *testing.T) {
	uc := NewChangeStatusUseCase(&mockTicketRepository{}, noopLogger{})

	for _, target := range []string{"resolved", "closed"} {
		_, err := uc.Execute(context.Background(), ChangeStatusCommand{
			TicketID:  1,
			NewStatus: target,
			ActorID:   4,
			ActorRole: authorization.RoleTechnicien,
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	}
}

func TestChangeStatusReadOnlyRefused(t *testing.T) {
	uc := NewChangeStatusUseCase(&mockTicketRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  1,
		NewStatus: "on_hold",
		ActorID:   4,
		ActorRole: authorization.RoleReadOnly,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
