// AngelaMos | 2026
// repository.go

package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelamos/frontdesk/internal/store"
)

type Repository interface {
	Create(ctx context.Context, b Bill) error
	GetByID(ctx context.Context, id string) (*Bill, error)
	Update(ctx context.Context, b Bill) error
	List(ctx context.Context) ([]Bill, error)
	ListByMemberEmail(ctx context.Context, email string) ([]Bill, error)
}

type repository struct {
	bills *store.Collection[Bill]
}

func NewRepository(st *store.Store) Repository {
	return &repository{
		bills: store.NewCollection[Bill](st, "bills"),
	}
}

func (r *repository) Create(ctx context.Context, b Bill) error {
	if err := r.bills.Insert(ctx, b); err != nil {
		return fmt.Errorf("create bill: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Bill, error) {
	b, err := r.bills.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return b, nil
}

func (r *repository) Update(ctx context.Context, b Bill) error {
	if err := r.bills.Replace(ctx, b); err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]Bill, error) {
	bills, err := r.bills.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	return bills, nil
}

func (r *repository) ListByMemberEmail(
	ctx context.Context,
	email string,
) ([]Bill, error) {
	bills, err := r.bills.Find(ctx, func(b Bill) bool {
		return strings.EqualFold(b.MemberEmail, email)
	})
	if err != nil {
		return nil, fmt.Errorf("list bills by member: %w", err)
	}
	return bills, nil
}
