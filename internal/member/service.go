// AngelaMos | 2026
// service.go

package member

import (
	"context"
	"strings"

	"github.com/angelamos/frontdesk/internal/audit"
	"github.com/angelamos/frontdesk/internal/report"
	"github.com/angelamos/frontdesk/internal/store"
)

var csvHeader = []string{"Name", "Email", "Phone", "Package"}

type Service struct {
	repo     Repository
	auditLog *audit.Logger
}

func NewService(repo Repository, auditLog *audit.Logger) *Service {
	return &Service{repo: repo, auditLog: auditLog}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateMemberRequest,
) (*Member, error) {
	m := Member{
		ID:      store.NewID(),
		Name:    req.Name,
		Email:   strings.TrimSpace(req.Email),
		Phone:   req.Phone,
		Package: req.Package,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.auditLog.Record(ctx, audit.ActionMemberCreated, map[string]any{
		"memberId": m.ID,
		"email":    m.Email,
	})

	return &m, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*Member, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]Member, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateMemberRequest,
) (*Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Email != nil {
		m.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		m.Phone = *req.Phone
	}
	if req.Package != nil {
		m.Package = *req.Package
	}

	if err := s.repo.Update(ctx, *m); err != nil {
		return nil, err
	}

	s.auditLog.Record(ctx, audit.ActionMemberUpdated, map[string]any{
		"memberId": m.ID,
	})

	return m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditLog.Record(ctx, audit.ActionMemberDeleted, map[string]any{
		"memberId": id,
	})

	return nil
}

// Search matches a case-insensitive substring against name and email.
func (s *Service) Search(ctx context.Context, query string) ([]Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return members, nil
	}

	matched := make([]Member, 0, len(members))
	for _, m := range members {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.Email), q) {
			matched = append(matched, m)
		}
	}

	s.auditLog.Record(ctx, audit.ActionSearchPerformed, map[string]any{
		"query":   query,
		"matches": len(matched),
	})

	return matched, nil
}

// ExportCSV renders the whole roster with the fixed column order the front
// desk report expects.
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{m.Name, m.Email, m.Phone, m.Package})
	}

	s.auditLog.Record(ctx, audit.ActionReportMembersExported, map[string]any{
		"count": len(members),
	})

	return report.CSV(csvHeader, rows), nil
}
