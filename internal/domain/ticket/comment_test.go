package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/shared/authorization"
)

func newComment(t *testing.T, authorID uint, content string) *Comment {
	t.Helper()
	c, err := NewComment(1, authorID, content)
	require.NoError(t, err)
	require.NoError(t, c.SetID(10))
	return c
}

func TestNewCommentValidation(t *testing.T) {
	t.Run("blank content rejected", func(t *testing.T) {
		_, err := NewComment(1, 2, "   \n ")
		assert.Error(t, err)
	})

	t.Run("content trimmed", func(t *testing.T) {
		c, err := NewComment(1, 2, "  bonjour  ")
		require.NoError(t, err)
		assert.Equal(t, "bonjour", c.Content())
		assert.False(t, c.IsEdited())
		assert.Nil(t, c.PreviousContent())
	})
}

func TestCommentEditByAuthor(t *testing.T) {
	c := newComment(t, 2, "A")

	outcome := c.Edit(2, authorization.RoleTechnicien, "B")

	assert.Equal(t, EditApplied, outcome)
	assert.Equal(t, "B", c.Content())
	require.NotNil(t, c.PreviousContent())
	assert.Equal(t, "A", *c.PreviousContent())
	assert.True(t, c.IsEdited())
	require.NotNil(t, c.LastEditorID())
	assert.Equal(t, uint(2), *c.LastEditorID())
}

func TestCommentEditSingleSlotHistory(t *testing.T) {
	c := newComment(t, 2, "A")

	require.Equal(t, EditApplied, c.Edit(2, authorization.RoleTechnicien, "B"))
	require.Equal(t, EditApplied, c.Edit(2, authorization.RoleTechnicien, "C"))

	// only the immediately prior content survives
	assert.Equal(t, "C", c.Content())
	require.NotNil(t, c.PreviousContent())
	assert.Equal(t, "B", *c.PreviousContent())
}

func TestCommentEditDeniedForNonAuthor(t *testing.T) {
	c := newComment(t, 2, "A")

	outcome := c.Edit(3, authorization.RoleTechnicien, "B")

	assert.Equal(t, EditDenied, outcome)
	assert.Equal(t, "A", c.Content())
	assert.Nil(t, c.PreviousContent())
	assert.Nil(t, c.UpdatedAt())
	assert.Nil(t, c.LastEditorID())
}

func TestCommentEditAllowedForAdmin(t *testing.T) {
	c := newComment(t, 2, "A")

	outcome := c.Edit(3, authorization.RoleAdmin, "B")

	assert.Equal(t, EditApplied, outcome)
	assert.Equal(t, "B", c.Content())
	require.NotNil(t, c.LastEditorID())
	assert.Equal(t, uint(3), *c.LastEditorID())
}

func TestCommentEditNoOpCases(t *testing.T) {
	t.Run("identical content", func(t *testing.T) {
		c := newComment(t, 2, "A")

		assert.Equal(t, EditNoChange, c.Edit(2, authorization.RoleTechnicien, "A"))
		assert.Nil(t, c.UpdatedAt())
		assert.Nil(t, c.PreviousContent())
	})

	t.Run("blank content", func(t *testing.T) {
		c := newComment(t, 2, "A")

		assert.Equal(t, EditNoChange, c.Edit(2, authorization.RoleTechnicien, "   "))
		assert.Equal(t, "A", c.Content())
		assert.Nil(t, c.UpdatedAt())
	})

	t.Run("read_only author can still edit own comment", func(t *testing.T) {
		c := newComment(t, 2, "A")

		assert.Equal(t, EditApplied, c.Edit(2, authorization.RoleReadOnly, "B"))
	})
}
