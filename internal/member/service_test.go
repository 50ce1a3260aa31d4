// AngelaMos | 2026
// service_test.go

package member

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

func TestMemberCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	m, err := svc.Create(ctx, CreateMemberRequest{
		Name:    "Jane Doe",
		Email:   "jane@gym.com",
		Phone:   "555-0101",
		Package: "Monthly",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, *m, *got)

	newPackage := "Quarterly"
	updated, err := svc.Update(ctx, m.ID, UpdateMemberRequest{
		Package: &newPackage,
	})
	require.NoError(t, err)
	require.Equal(t, "Quarterly", updated.Package)
	require.Equal(t, "Jane Doe", updated.Name)

	require.NoError(t, svc.Delete(ctx, m.ID))
	_, err = svc.Get(ctx, m.ID)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestGetByEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, CreateMemberRequest{
		Name:  "Jane Doe",
		Email: "Jane@Gym.com",
	})
	require.NoError(t, err)

	got, err := svc.GetByEmail(ctx, "jane@gym.com")
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", got.Name)
}

func TestSearchAndExport(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, CreateMemberRequest{
		Name:    "Jane Doe",
		Email:   "jane@gym.com",
		Phone:   "555-0101",
		Package: "Monthly",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateMemberRequest{
		Name:  "John Roe",
		Email: "john@gym.com",
	})
	require.NoError(t, err)

	matched, err := svc.Search(ctx, "jane")
	require.NoError(t, err)
	require.Len(t, matched, 1)

	body, err := svc.ExportCSV(ctx)
	require.NoError(t, err)
	want := `"Name","Email","Phone","Package"` + "\n" +
		`"Jane Doe","jane@gym.com","555-0101","Monthly"` + "\n" +
		`"John Roe","john@gym.com","",""`
	require.Equal(t, want, body)
}
