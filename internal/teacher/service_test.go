// AngelaMos | 2026
// service_test.go

package teacher

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelamos/frontdesk/internal/audit"
	"github.com/angelamos/frontdesk/internal/store"
	"github.com/angelamos/frontdesk/internal/user"
)

func newTestServices(t *testing.T) (*Service, *user.Service) {
	t.Helper()

	st := store.New(store.NewMemoryKV(), "test")
	auditLog := audit.NewLogger(st, slog.Default())

	userSvc := user.NewService(user.NewRepository(st), auditLog)
	teacherSvc := NewService(NewRepository(st), userSvc, auditLog, slog.Default())

	return teacherSvc, userSvc
}

func TestCreateDualWritesPairedAccount(t *testing.T) {
	ctx := context.Background()
	svc, userSvc := newTestServices(t)

	created, err := svc.Create(ctx, CreateTeacherRequest{
		Name:       "Dr. New Teacher",
		Email:      "new.teacher@clg.com",
		Department: "Chemistry",
	})
	require.NoError(t, err)

	account, err := userSvc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Dr. New Teacher", account.Name)
	require.Equal(t, "new.teacher@clg.com", account.Email)
	require.Equal(t, user.RoleTeacher, account.Role)
	require.Equal(t, user.DefaultPassword, account.Password)
}

func TestUpdateSyncsPairedAccount(t *testing.T) {
	ctx := context.Background()
	svc, userSvc := newTestServices(t)

	created, err := svc.Create(ctx, CreateTeacherRequest{
		Name:  "Dr. Old Name",
		Email: "old@clg.com",
	})
	require.NoError(t, err)

	newName := "Dr. New Name"
	newEmail := "new@clg.com"
	_, err = svc.Update(ctx, created.ID, UpdateTeacherRequest{
		Name:  &newName,
		Email: &newEmail,
	})
	require.NoError(t, err)

	account, err := userSvc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, newName, account.Name)
	require.Equal(t, newEmail, account.Email)
}

func TestDeleteLeavesPairedAccount(t *testing.T) {
	ctx := context.Background()
	svc, userSvc := newTestServices(t)

	created, err := svc.Create(ctx, CreateTeacherRequest{
		Name:  "Dr. Gone",
		Email: "gone@clg.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.Error(t, err)

	account, err := userSvc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Dr. Gone", account.Name)
}

func TestSearchMatchesNameDepartmentSubjects(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	require.NoError(t, svc.EnsureSeed(ctx))

	byName, err := svc.Search(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, "2", byName[0].ID)

	byDept, err := svc.Search(ctx, "mathematics")
	require.NoError(t, err)
	require.Len(t, byDept, 1)
	require.Equal(t, "tea2", byDept[0].ID)

	bySubject, err := svc.Search(ctx, "optics")
	require.NoError(t, err)
	require.Len(t, bySubject, 1)
	require.Equal(t, "tea3", bySubject[0].ID)

	all, err := svc.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestEnsureSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	require.NoError(t, svc.EnsureSeed(ctx))
	require.NoError(t, svc.EnsureSeed(ctx))

	teachers, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 3)
}

func TestEnsureSeedSkipsEmptiedCollection(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	require.NoError(t, svc.EnsureSeed(ctx))

	teachers, err := svc.List(ctx)
	require.NoError(t, err)
	for _, teach := range teachers {
		require.NoError(t, svc.Delete(ctx, teach.ID))
	}

	require.NoError(t, svc.EnsureSeed(ctx))

	teachers, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 0)
}
