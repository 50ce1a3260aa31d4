// AngelaMos | 2026
// service.go

package billing

import (
	"context"
	"strconv"
	"strings"

	"github.com/angelamos/frontdesk/internal/audit"
	"github.com/angelamos/frontdesk/internal/report"
	"github.com/angelamos/frontdesk/internal/store"
)

var csvHeader = []string{"Member Email", "Amount", "Due Date", "Status", "Notes"}

type Service struct {
	repo     Repository
	auditLog *audit.Logger
}

func NewService(repo Repository, auditLog *audit.Logger) *Service {
	return &Service{repo: repo, auditLog: auditLog}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateBillRequest,
) (*Bill, error) {
	b := Bill{
		ID:          store.NewID(),
		MemberEmail: strings.TrimSpace(req.MemberEmail),
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Notes:       req.Notes,
		Status:      StatusUnpaid,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.auditLog.Record(ctx, audit.ActionBillCreated, map[string]any{
		"billId":      b.ID,
		"memberEmail": b.MemberEmail,
		"amount":      b.Amount,
	})

	return &b, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Bill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Bill, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByMemberEmail(
	ctx context.Context,
	email string,
) ([]Bill, error) {
	return s.repo.ListByMemberEmail(ctx, email)
}

// Pay marks an unpaid bill paid. Status only ever moves one way, and
// re-paying a paid bill changes nothing.
func (s *Service) Pay(ctx context.Context, id string) (*Bill, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.Status == StatusPaid {
		return b, nil
	}

	b.Status = StatusPaid
	if err := s.repo.Update(ctx, *b); err != nil {
		return nil, err
	}

	s.auditLog.Record(ctx, audit.ActionBillPaid, map[string]any{
		"billId":      b.ID,
		"memberEmail": b.MemberEmail,
	})

	return b, nil
}

// ExportCSV renders every bill in the fixed column order of the fee report.
// Amounts are formatted the way the browser stringified them, without
// trailing zeros.
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	bills, err := s.repo.List(ctx)
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, []string{
			b.MemberEmail,
			strconv.FormatFloat(b.Amount, 'f', -1, 64),
			b.DueDate,
			b.Status,
			b.Notes,
		})
	}

	s.auditLog.Record(ctx, audit.ActionReportBillsExported, map[string]any{
		"count": len(bills),
	})

	return report.CSV(csvHeader, rows), nil
}
