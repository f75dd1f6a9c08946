package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/domain/user"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
)

func TestListUsersRequiresAdmin(t *testing.T) {
	uc := NewListUsersUseCase(&mockUserRepository{}, noopLogger{})
	_, err := uc.Execute(context.Background(), ListUsersQuery{
		ActorID:   4,
		ActorRole: authorization.RoleTechnicien,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestListUsersReturnsSummaries(t *testing.T) {
	now := time.Now().UTC()
	u1, err := user.ReconstructUser(1, "admin", "Admin", "$2a$10$hash", authorization.RoleAdmin, now, now)
	require.NoError(t, err)
	u2, err := user.ReconstructUser(2, "jdurand", "J. Durand", "$2a$10$hash", authorization.RoleTechnicien, now, now)
	require.NoError(t, err)

	repo := &mockUserRepository{
		ListFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{u1, u2}, nil
		},
	}

	uc := NewListUsersUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), ListUsersQuery{
		ActorID:   1,
		ActorRole: authorization.RoleAdmin,
	})

	require.NoError(t, err)
	require.Len(t, result.Users, 2)
	assert.Equal(t, "admin", result.Users[0].Username)
	assert.Equal(t, "technicien", result.Users[1].Role)
}
