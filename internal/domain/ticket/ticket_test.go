package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "gmao/internal/domain/ticket/valueobjects"
)

func newOpenTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := ReconstructTicket(
		1, 7, nil, nil, nil,
		"Compresseur en panne",
		"Plus de pression depuis ce matin",
		vo.KindBreakdown,
		vo.PriorityHigh,
		vo.StatusOpen,
		nil, nil,
		time.Now().UTC().Add(-time.Hour),
		nil,
		time.Now().UTC().Add(-time.Hour),
	)
	require.NoError(t, err)
	return tk
}

func TestNewTicketStartsOpen(t *testing.T) {
	tk, err := NewTicket(7, "Titre", "Description", vo.KindMaintenance, vo.PriorityMedium)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Nil(t, tk.ClosedAt())
	assert.False(t, tk.OpenedAt().IsZero())
}

func TestChangeStatusTerminalSetsClosedAt(t *testing.T) {
	for _, target := range []vo.TicketStatus{vo.StatusResolved, vo.StatusClosed} {
		t.Run(target.String(), func(t *testing.T) {
			tk := newOpenTicket(t)

			require.NoError(t, tk.ChangeStatus(target))

			assert.Equal(t, target, tk.Status())
			require.NotNil(t, tk.ClosedAt())
		})
	}
}

func TestChangeStatusNonTerminalClearsClosedAt(t *testing.T) {
	tk := newOpenTicket(t)
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	require.NotNil(t, tk.ClosedAt())

	// reopening clears the closure timestamp
	require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))

	assert.Equal(t, vo.StatusInProgress, tk.Status())
	assert.Nil(t, tk.ClosedAt())
}

func TestChangeStatusSameStatusIsNoOp(t *testing.T) {
	tk := newOpenTicket(t)
	before := tk.UpdatedAt()

	require.NoError(t, tk.ChangeStatus(vo.StatusOpen))

	assert.Equal(t, before, tk.UpdatedAt())
}

func TestChangeStatusRejectsInvalid(t *testing.T) {
	tk := newOpenTicket(t)
	assert.Error(t, tk.ChangeStatus(vo.TicketStatus("archived")))
}

func TestReconstructTicketClosedAtConsistency(t *testing.T) {
	now := time.Now().UTC()

	// terminal status without a closure timestamp is rejected
	_, err := ReconstructTicket(1, 7, nil, nil, nil, "T", "", vo.KindOther,
		vo.PriorityLow, vo.StatusClosed, nil, nil, now, nil, now)
	assert.Error(t, err)

	// non-terminal status with a closure timestamp is rejected
	_, err = ReconstructTicket(1, 7, nil, nil, nil, "T", "", vo.KindOther,
		vo.PriorityLow, vo.StatusOpen, nil, nil, now, &now, now)
	assert.Error(t, err)
}

func TestReplaceAssociationsDedupes(t *testing.T) {
	tk := newOpenTicket(t)

	tk.ReplaceEquipments([]uint{3, 1, 3, 0, 2})
	tk.ReplaceSites([]uint{5, 5})

	assert.ElementsMatch(t, []uint{1, 2, 3}, tk.EquipmentIDs())
	assert.ElementsMatch(t, []uint{5}, tk.SiteIDs())

	// replace-all semantics: a later edit swaps the whole set
	tk.ReplaceEquipments([]uint{9})
	assert.ElementsMatch(t, []uint{9}, tk.EquipmentIDs())
}

func TestAddCommentChecksTicket(t *testing.T) {
	tk := newOpenTicket(t)

	c, err := NewComment(tk.ID(), 3, "ras")
	require.NoError(t, err)
	require.NoError(t, tk.AddComment(c))

	other, err := NewComment(99, 3, "mauvais ticket")
	require.NoError(t, err)
	assert.Error(t, tk.AddComment(other))
}
