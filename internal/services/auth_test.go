package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/store"
)

func newTestRegistry() (*AccountRegistry, *fakeAccountStore) {
	accounts := newFakeAccountStore()
	tokens := NewTokenService(TokenConfig{Secret: "test-secret"})
	return NewAccountRegistry(accounts, tokens), accounts
}

func TestRegisterThenAuthenticate(t *testing.T) {
	registry, _ := newTestRegistry()
	ctx := context.Background()

	user, err := registry.Register(ctx, models.RoleUser, "Ada", "Lovelace", "ada@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	token, authed, err := registry.Authenticate(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, authed.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	registry, _ := newTestRegistry()
	ctx := context.Background()

	_, err := registry.Register(ctx, models.RoleUser, "Ada", "Lovelace", "ada@example.com", "password-one")
	require.NoError(t, err)

	// Same email always fails, regardless of role.
	_, err = registry.Register(ctx, models.RoleAdmin, "Grace", "Hopper", "ada@example.com", "password-two")
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestAuthenticateDoesNotLeakWhichPartFailed(t *testing.T) {
	registry, _ := newTestRegistry()
	ctx := context.Background()

	_, err := registry.Register(ctx, models.RoleUser, "Ada", "Lovelace", "ada@example.com", "correct horse")
	require.NoError(t, err)

	_, _, wrongPassword := registry.Authenticate(ctx, "ada@example.com", "wrong")
	_, _, unknownEmail := registry.Authenticate(ctx, "nobody@example.com", "correct horse")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestAuthenticateAdminRequiresAdminRole(t *testing.T) {
	registry, _ := newTestRegistry()
	ctx := context.Background()

	_, err := registry.Register(ctx, models.RoleUser, "Ada", "Lovelace", "user@example.com", "correct horse")
	require.NoError(t, err)
	_, err = registry.Register(ctx, models.RoleAdmin, "Grace", "Hopper", "admin@example.com", "correct horse")
	require.NoError(t, err)

	_, _, err = registry.AuthenticateAdmin(ctx, "user@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrForbidden)

	token, admin, err := registry.AuthenticateAdmin(ctx, "admin@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleAdmin, admin.Role)
}

func TestListPaged(t *testing.T) {
	registry, _ := newTestRegistry()
	ctx := context.Background()

	created := make([]*models.User, 0, 25)
	for i := 0; i < 25; i++ {
		user, err := registry.Register(ctx, models.RoleUser, "User", fmt.Sprintf("Number%02d", i),
			fmt.Sprintf("user%02d@example.com", i), "correct horse")
		require.NoError(t, err)
		created = append(created, user)
	}

	users, total, err := registry.ListPaged(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	require.Len(t, users, 10)
	// Page 2 holds the 11th through 20th accounts by creation order.
	assert.Equal(t, created[10].Email, users[0].Email)
	assert.Equal(t, created[19].Email, users[9].Email)
}

func TestListPagedClampsInput(t *testing.T) {
	registry, _ := newTestRegistry()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := registry.Register(ctx, models.RoleUser, "User", "Name",
			fmt.Sprintf("clamp%d@example.com", i), "correct horse")
		require.NoError(t, err)
	}

	users, total, err := registry.ListPaged(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, users, 3)

	users, _, err = registry.ListPaged(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
