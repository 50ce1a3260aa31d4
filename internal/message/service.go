// AngelaMos | 2026
// service.go

package message

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

func (s *Service) Send(
	ctx context.Context,
	fromID string,
	req SendMessageRequest,
) (*Message, error) {
	m := Message{
		ID:        store.NewID(),
		FromID:    fromID,
		ToID:      req.ToID,
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.auditLog.Record(ctx, audit.ActionMessageSent, map[string]any{
		"messageId": m.ID,
		"toId":      m.ToID,
	})

	return &m, nil
}

func (s *Service) Inbox(ctx context.Context, userID string) ([]Message, error) {
	return s.repo.ListByRecipient(ctx, userID)
}
