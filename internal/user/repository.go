// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelamos/frontdesk/internal/core"
	"github.com/angelamos/frontdesk/internal/store"
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]User, error)
	Exists(ctx context.Context) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type repository struct {
	users *store.Collection[User]
}

func NewRepository(st *store.Store) Repository {
	return &repository{
		users: store.NewCollection[User](st, "users"),
	}
}

func (r *repository) Create(ctx context.Context, u User) error {
	exists, err := r.ExistsByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
	}

	if err := r.users.Insert(ctx, u); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := r.users.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail matches case-insensitively, same as the login forms did.
func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	u, err := r.users.First(ctx, func(u User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *repository) Update(ctx context.Context, u User) error {
	if err := r.users.Replace(ctx, u); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if err := r.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	users, err := r.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Exists reports whether the users collection key has ever been written,
// including an emptied-out collection.
func (r *repository) Exists(ctx context.Context) (bool, error) {
	return r.users.Exists(ctx)
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	matches, err := r.users.Find(ctx, func(u User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return len(matches) > 0, nil
}
