// AngelaMos | 2026
// service_test.go

package appointment

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

func TestBookDefaultsPending(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	a, err := svc.Book(ctx, "stu1", "Sam Student", BookAppointmentRequest{
		TeacherID: "tea1",
		Datetime:  "2026-09-10 10:00",
		Purpose:   "thesis review",
	})
	require.NoError(t, err)
	require.Equal(t, StatusPending, a.Status)
	require.False(t, a.CreatedAt.IsZero())
	require.NotEmpty(t, a.ID)
}

func TestApproveLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	a, err := svc.Book(ctx, "stu1", "Sam Student", BookAppointmentRequest{
		TeacherID: "tea1",
		Datetime:  "2026-09-10 10:00",
	})
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, a.ID, "tea1", "teacher")
	require.NoError(t, err)
	require.Equal(t, StatusApproved, approved.Status)

	again, err := svc.Approve(ctx, a.ID, "tea1", "teacher")
	require.NoError(t, err)
	require.Equal(t, StatusApproved, again.Status)
}

func TestApproveAuthority(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	a, err := svc.Book(ctx, "stu1", "Sam Student", BookAppointmentRequest{
		TeacherID: "tea1",
		Datetime:  "2026-09-10 10:00",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, a.ID, "tea2", "teacher")
	require.ErrorIs(t, err, core.ErrForbidden)

	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, StatusPending, got.Status)

	approved, err := svc.Approve(ctx, a.ID, "admin1", "admin")
	require.NoError(t, err)
	require.Equal(t, StatusApproved, approved.Status)
}

func TestApproveMissing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Approve(ctx, "ghost", "admin1", "admin")
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestScopedLists(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Book(ctx, "stu1", "Sam", BookAppointmentRequest{
		TeacherID: "tea1", Datetime: "2026-09-10 10:00",
	})
	require.NoError(t, err)
	_, err = svc.Book(ctx, "stu2", "Ana", BookAppointmentRequest{
		TeacherID: "tea1", Datetime: "2026-09-11 10:00",
	})
	require.NoError(t, err)
	_, err = svc.Book(ctx, "stu1", "Sam", BookAppointmentRequest{
		TeacherID: "tea2", Datetime: "2026-09-12 10:00",
	})
	require.NoError(t, err)

	byTeacher, err := svc.ByTeacher(ctx, "tea1")
	require.NoError(t, err)
	require.Len(t, byTeacher, 2)

	byStudent, err := svc.ByStudent(ctx, "stu1")
	require.NoError(t, err)
	require.Len(t, byStudent, 2)
}
