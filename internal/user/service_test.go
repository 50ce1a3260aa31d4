// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelamos/frontdesk/internal/audit"
	"github.com/angelamos/frontdesk/internal/core"
	"github.com/angelamos/frontdesk/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.New(store.NewMemoryKV(), "test")
	return NewService(NewRepository(st), audit.NewLogger(st, slog.Default()))
}

func TestEnsureSeedAccounts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.EnsureSeed(ctx))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 6)

	teacher, err := svc.GetByEmail(ctx, "teacher@clg.com")
	require.NoError(t, err)
	require.Equal(t, "2", teacher.ID)
	require.Equal(t, RoleTeacher, teacher.Role)
	require.Equal(t, DefaultPassword, teacher.Password)

	require.NoError(t, svc.EnsureSeed(ctx))
	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 6)
}

func TestEnsureSeedSkipsEmptiedCollection(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.EnsureSeed(ctx))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	for _, u := range users {
		require.NoError(t, svc.DeleteUser(ctx, u.ID))
	}

	require.NoError(t, svc.EnsureSeed(ctx))

	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 0)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateUser(ctx, CreateUserRequest{
		Name:     "First",
		Email:    "dup@gym.com",
		Password: "secret",
		Role:     RoleMember,
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, CreateUserRequest{
		Name:     "Second",
		Email:    "DUP@gym.com",
		Password: "secret",
		Role:     RoleMember,
	})
	require.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateUser(ctx, CreateUserRequest{
		Name:     "Odd",
		Email:    "odd@gym.com",
		Password: "secret",
		Role:     "janitor",
	})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestUpdateUserPatchesFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateUser(ctx, CreateUserRequest{
		Name:     "Before",
		Email:    "patch@gym.com",
		Password: "secret",
		Role:     RoleUser,
	})
	require.NoError(t, err)

	newName := "After"
	updated, err := svc.UpdateUser(ctx, created.ID, UpdateUserRequest{
		Name: &newName,
	})
	require.NoError(t, err)
	require.Equal(t, "After", updated.Name)
	require.Equal(t, "patch@gym.com", updated.Email)
	require.Equal(t, RoleUser, updated.Role)
}

func TestUpdateUserRejectsTakenEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateUser(ctx, CreateUserRequest{
		Name:     "Holder",
		Email:    "taken@gym.com",
		Password: "secret",
		Role:     RoleMember,
	})
	require.NoError(t, err)

	other, err := svc.CreateUser(ctx, CreateUserRequest{
		Name:     "Other",
		Email:    "other@gym.com",
		Password: "secret",
		Role:     RoleMember,
	})
	require.NoError(t, err)

	taken := "TAKEN@gym.com"
	_, err = svc.UpdateUser(ctx, other.ID, UpdateUserRequest{Email: &taken})
	require.ErrorIs(t, err, core.ErrDuplicateKey)

	// Re-submitting the account's own email in a different case is not a
	// collision.
	own := "OTHER@gym.com"
	updated, err := svc.UpdateUser(ctx, other.ID, UpdateUserRequest{Email: &own})
	require.NoError(t, err)
	require.Equal(t, "OTHER@gym.com", updated.Email)
}
