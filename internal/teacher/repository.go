// AngelaMos | 2026
// repository.go

package teacher

import (
	"context"
	"fmt"

	"github.com/angelamos/frontdesk/internal/store"
)

type Repository interface {
	Create(ctx context.Context, t Teacher) error
	GetByID(ctx context.Context, id string) (*Teacher, error)
	Update(ctx context.Context, t Teacher) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Teacher, error)
	Exists(ctx context.Context) (bool, error)
}

type repository struct {
	teachers *store.Collection[Teacher]
}

func NewRepository(st *store.Store) Repository {
	return &repository{
		teachers: store.NewCollection[Teacher](st, "teachers"),
	}
}

func (r *repository) Create(ctx context.Context, t Teacher) error {
	if err := r.teachers.Insert(ctx, t); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Teacher, error) {
	t, err := r.teachers.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get teacher: %w", err)
	}
	return t, nil
}

func (r *repository) Update(ctx context.Context, t Teacher) error {
	if err := r.teachers.Replace(ctx, t); err != nil {
		return fmt.Errorf("update teacher: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if err := r.teachers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]Teacher, error) {
	teachers, err := r.teachers.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// Exists reports whether the teachers collection key has ever been written,
// including an emptied-out collection.
func (r *repository) Exists(ctx context.Context) (bool, error) {
	return r.teachers.Exists(ctx)
}
