// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelamos/frontdesk/internal/audit"
	"github.com/angelamos/frontdesk/internal/auth"
	"github.com/angelamos/frontdesk/internal/core"
	"github.com/angelamos/frontdesk/internal/store"
)

// DefaultPassword is handed to accounts created on behalf of someone else,
// such as the login paired with a new teacher profile.
const DefaultPassword = "password"

type Service struct {
	repo     Repository
	auditLog *audit.Logger
}

func NewService(repo Repository, auditLog *audit.Logger) *Service {
	return &Service{repo: repo, auditLog: auditLog}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserInfo(u), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toUserInfo(u), nil
}

func (s *Service) CreateUser(
	ctx context.Context,
	req CreateUserRequest,
) (*User, error) {
	if !ValidRole(req.Role) {
		return nil, fmt.Errorf(
			"create user: invalid role %q: %w",
			req.Role,
			core.ErrInvalidInput,
		)
	}

	u := User{
		ID:       store.NewID(),
		Name:     req.Name,
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Role:     req.Role,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateUser(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if !strings.EqualFold(email, u.Email) {
			taken, err := s.repo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, fmt.Errorf(
					"update user: %w",
					core.ErrDuplicateKey,
				)
			}
		}
		u.Email = email
	}
	if req.Password != nil {
		u.Password = *req.Password
	}
	if req.Role != nil {
		if !ValidRole(*req.Role) {
			return nil, fmt.Errorf(
				"update user: invalid role %q: %w",
				*req.Role,
				core.ErrInvalidInput,
			)
		}
		u.Role = *req.Role
	}

	if err := s.repo.Update(ctx, *u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// CreateTeacherAccount writes the login record paired with a new teacher
// profile. It shares the profile's id and starts with the default password.
func (s *Service) CreateTeacherAccount(
	ctx context.Context,
	id, name, email string,
) error {
	u := User{
		ID:       id,
		Name:     name,
		Email:    strings.TrimSpace(email),
		Password: DefaultPassword,
		Role:     RoleTeacher,
	}
	return s.repo.Create(ctx, u)
}

// SyncTeacherAccount pushes a profile's name and email onto the paired
// login record. A missing pair is left alone rather than recreated.
func (s *Service) SyncTeacherAccount(
	ctx context.Context,
	id, name, email string,
) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	u.Name = name
	u.Email = strings.TrimSpace(email)

	return s.repo.Update(ctx, *u)
}

// EnsureSeed installs the demo accounts on a blank namespace: the gym trio
// and the appointment portal trio, all sharing the default password. The
// guard is key absence, not emptiness, so an admin who deletes every
// account does not get them back on the next start.
func (s *Service) EnsureSeed(ctx context.Context) error {
	exists, err := s.repo.Exists(ctx)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if exists {
		return nil
	}

	seeds := []User{
		{ID: store.NewID(), Name: "Gym Admin", Email: "admin@gym.com", Password: DefaultPassword, Role: RoleAdmin},
		{ID: store.NewID(), Name: "Gym Member", Email: "member@gym.com", Password: DefaultPassword, Role: RoleMember},
		{ID: store.NewID(), Name: "Front Desk", Email: "user@gym.com", Password: DefaultPassword, Role: RoleUser},
		{ID: "1", Name: "College Admin", Email: "admin@clg.com", Password: DefaultPassword, Role: RoleAdmin},
		{ID: "2", Name: "Dr. Alice Smith", Email: "teacher@clg.com", Password: DefaultPassword, Role: RoleTeacher},
		{ID: "3", Name: "Sam Student", Email: "student@clg.com", Password: DefaultPassword, Role: RoleStudent},
	}

	for _, u := range seeds {
		if err := s.repo.Create(ctx, u); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	s.auditLog.RecordAs(ctx, audit.ActorSystem, audit.ActorSystem,
		"users_seeded", map[string]any{"count": len(seeds)})

	return nil
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Password: u.Password,
		Role:     u.Role,
	}
}

var _ auth.UserProvider = (*Service)(nil)
