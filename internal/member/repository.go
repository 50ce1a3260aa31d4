// AngelaMos | 2026
// repository.go

package member

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelamos/frontdesk/internal/store"
)

type Repository interface {
	Create(ctx context.Context, m Member) error
	GetByID(ctx context.Context, id string) (*Member, error)
	GetByEmail(ctx context.Context, email string) (*Member, error)
	Update(ctx context.Context, m Member) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Member, error)
}

type repository struct {
	members *store.Collection[Member]
}

func NewRepository(st *store.Store) Repository {
	return &repository{
		members: store.NewCollection[Member](st, "members"),
	}
}

func (r *repository) Create(ctx context.Context, m Member) error {
	if err := r.members.Insert(ctx, m); err != nil {
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Member, error) {
	m, err := r.members.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*Member, error) {
	m, err := r.members.First(ctx, func(m Member) bool {
		return strings.EqualFold(m.Email, email)
	})
	if err != nil {
		return nil, fmt.Errorf("get member by email: %w", err)
	}
	return m, nil
}

func (r *repository) Update(ctx context.Context, m Member) error {
	if err := r.members.Replace(ctx, m); err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if err := r.members.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]Member, error) {
	members, err := r.members.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}
