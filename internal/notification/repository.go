// AngelaMos | 2026
// repository.go

package notification

import (
	"context"
	"fmt"

	"github.com/angelamos/frontdesk/internal/store"
)

type Repository interface {
	Create(ctx context.Context, n Notification) error
	List(ctx context.Context) ([]Notification, error)
}

type repository struct {
	notifications *store.Collection[Notification]
}

func NewRepository(st *store.Store) Repository {
	return &repository{
		notifications: store.NewCollection[Notification](st, "notifications"),
	}
}

func (r *repository) Create(ctx context.Context, n Notification) error {
	if err := r.notifications.Insert(ctx, n); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]Notification, error) {
	notifications, err := r.notifications.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}
