// AngelaMos | 2026
// service_test.go

package billing

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelamos/frontdesk/internal/audit"
	"github.com/angelamos/frontdesk/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.New(store.NewMemoryKV(), "test")
	return NewService(NewRepository(st), audit.NewLogger(st, slog.Default()))
}

func TestCreateDefaultsUnpaid(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	b, err := svc.Create(ctx, CreateBillRequest{
		MemberEmail: "a@x.com",
		Amount:      100,
	})
	require.NoError(t, err)
	require.Equal(t, StatusUnpaid, b.Status)
	require.NotEmpty(t, b.ID)
}

func TestPayIsOneWayAndIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	b, err := svc.Create(ctx, CreateBillRequest{
		MemberEmail: "a@x.com",
		Amount:      250,
	})
	require.NoError(t, err)

	paid, err := svc.Pay(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, StatusPaid, paid.Status)

	again, err := svc.Pay(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, StatusPaid, again.Status)
}

func TestListByMemberEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, CreateBillRequest{
		MemberEmail: "Member@Gym.com",
		Amount:      50,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateBillRequest{
		MemberEmail: "other@gym.com",
		Amount:      60,
	})
	require.NoError(t, err)

	bills, err := svc.ListByMemberEmail(ctx, "member@gym.com")
	require.NoError(t, err)
	require.Len(t, bills, 1)
	require.True(t, strings.EqualFold("member@gym.com", bills[0].MemberEmail))
}

func TestExportCSVContract(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, CreateBillRequest{
		MemberEmail: "a@x.com",
		Amount:      100,
	})
	require.NoError(t, err)

	body, err := svc.ExportCSV(ctx)
	require.NoError(t, err)

	want := `"Member Email","Amount","Due Date","Status","Notes"` + "\n" +
		`"a@x.com","100","","unpaid",""`
	require.Equal(t, want, body)
}
