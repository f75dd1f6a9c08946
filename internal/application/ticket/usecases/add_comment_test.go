package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/domain/ticket"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
)

func TestAddCommentSavesContent(t *testing.T) {
	tk := openTicket(t, 1, 7)
	var saved *ticket.Comment
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	commentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
			saved = c
			return c.SetID(42)
		},
	}

	uc := NewAddCommentUseCase(ticketRepo, commentRepo, noopLogger{})
	result, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID:  1,
		Content:   "piece commandee",
		ActorID:   4,
		ActorRole: authorization.RoleTechnicien,
	})

	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, uint(42), result.CommentID)
	require.NotNil(t, saved)
	assert.Equal(t, "piece commandee", saved.Content())
	assert.Equal(t, uint(4), saved.AuthorID())
}

func TestAddCommentBlankContentIsSkipped(t *testing.T) {
	saveCalls := 0
	commentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
			saveCalls++
			return nil
		},
	}

	uc := NewAddCommentUseCase(&mockTicketRepository{}, commentRepo, noopLogger{})
	result, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID:  1,
		Content:   "   \n\t ",
		ActorID:   4,
		ActorRole: authorization.RoleTechnicien,
	})

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Zero(t, result.CommentID)
	assert.Equal(t, 0, saveCalls)
}

func TestAddCommentReadOnlyRefused(t *testing.T) {
	uc := NewAddCommentUseCase(&mockTicketRepository{}, &mockCommentRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID:  1,
		Content:   "bonjour",
		ActorID:   4,
		ActorRole: authorization.RoleReadOnly,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
