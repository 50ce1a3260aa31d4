// AngelaMos | 2026
// service.go

package notification

import (
	"context"
	"time"

	"github.com/angelamos/frontdesk/internal/audit"
	"github.com/angelamos/frontdesk/internal/store"
)

type Service struct {
	repo     Repository
	auditLog *audit.Logger
}

func NewService(repo Repository, auditLog *audit.Logger) *Service {
	return &Service{repo: repo, auditLog: auditLog}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateNotificationRequest,
) (*Notification, error) {
	audience := req.Audience
	if audience == "" {
		audience = DefaultAudience
	}

	n := Notification{
		ID:        store.NewID(),
		Text:      req.Text,
		Audience:  audience,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.auditLog.Record(ctx, audit.ActionNotificationCreated, map[string]any{
		"notificationId": n.ID,
		"audience":       n.Audience,
	})

	return &n, nil
}

func (s *Service) List(ctx context.Context) ([]Notification, error) {
	return s.repo.List(ctx)
}
