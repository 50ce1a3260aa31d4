// AngelaMos | 2026
// repository.go

package message

import (
	"context"
	"fmt"

	"github.com/angelamos/frontdesk/internal/store"
)

type Repository interface {
	Create(ctx context.Context, m Message) error
	ListByRecipient(ctx context.Context, toID string) ([]Message, error)
}

type repository struct {
	messages *store.Collection[Message]
}

func NewRepository(st *store.Store) Repository {
	return &repository{
		messages: store.NewCollection[Message](st, "messages"),
	}
}

func (r *repository) Create(ctx context.Context, m Message) error {
	if err := r.messages.Insert(ctx, m); err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

func (r *repository) ListByRecipient(
	ctx context.Context,
	toID string,
) ([]Message, error) {
	messages, err := r.messages.Find(ctx, func(m Message) bool {
		return m.ToID == toID
	})
	if err != nil {
		return nil, fmt.Errorf("list messages by recipient: %w", err)
	}
	return messages, nil
}
