// AngelaMos | 2026
// service.go

package teacher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/angelamos/frontdesk/internal/audit"
	"github.com/angelamos/frontdesk/internal/store"
)

// AccountProvider maintains the login record paired with a profile. The
// user service implements it.
type AccountProvider interface {
	CreateTeacherAccount(ctx context.Context, id, name, email string) error
	SyncTeacherAccount(ctx context.Context, id, name, email string) error
}

type Service struct {
	repo     Repository
	accounts AccountProvider
	auditLog *audit.Logger
	log      *slog.Logger
}

func NewService(
	repo Repository,
	accounts AccountProvider,
	auditLog *audit.Logger,
	log *slog.Logger,
) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
		auditLog: auditLog,
		log:      log,
	}
}

// Create writes the profile and then the paired login record under the
// same id. The second write is not transactional with the first; if it
// fails the profile stays and the inconsistency is logged.
func (s *Service) Create(
	ctx context.Context,
	req CreateTeacherRequest,
) (*Teacher, error) {
	t := Teacher{
		ID:         store.NewID(),
		Name:       req.Name,
		Email:      strings.TrimSpace(req.Email),
		Department: req.Department,
		Subjects:   req.Subjects,
		Bio:        req.Bio,
		Slots:      req.Slots,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	if err := s.accounts.CreateTeacherAccount(ctx, t.ID, t.Name, t.Email); err != nil {
		s.log.Warn("paired account write failed after profile create",
			"teacherId", t.ID,
			"error", err,
		)
	}

	s.auditLog.Record(ctx, audit.ActionTeacherAdded, map[string]any{
		"teacherId": t.ID,
		"name":      t.Name,
	})

	return &t, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Teacher, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Teacher, error) {
	return s.repo.List(ctx)
}

// Update patches the profile and pushes name/email onto the paired login
// record when either changed.
func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateTeacherRequest,
) (*Teacher, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	identityChanged := false

	if req.Name != nil {
		t.Name = *req.Name
		identityChanged = true
	}
	if req.Email != nil {
		t.Email = strings.TrimSpace(*req.Email)
		identityChanged = true
	}
	if req.Department != nil {
		t.Department = *req.Department
	}
	if req.Subjects != nil {
		t.Subjects = *req.Subjects
	}
	if req.Bio != nil {
		t.Bio = *req.Bio
	}
	if req.Slots != nil {
		t.Slots = *req.Slots
	}

	if err := s.repo.Update(ctx, *t); err != nil {
		return nil, err
	}

	if identityChanged {
		if err := s.accounts.SyncTeacherAccount(ctx, t.ID, t.Name, t.Email); err != nil {
			s.log.Warn("paired account sync failed after profile update",
				"teacherId", t.ID,
				"error", err,
			)
		}
	}

	s.auditLog.Record(ctx, audit.ActionTeacherUpdated, map[string]any{
		"teacherId": t.ID,
	})

	return t, nil
}

// Delete removes the profile only. The paired login record survives, which
// matches how the portal has always behaved.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditLog.Record(ctx, audit.ActionTeacherDeleted, map[string]any{
		"teacherId": id,
	})

	return nil
}

// Search matches a case-insensitive substring against name, department and
// subjects.
func (s *Service) Search(ctx context.Context, query string) ([]Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return teachers, nil
	}

	matched := make([]Teacher, 0, len(teachers))
	for _, t := range teachers {
		if matchesQuery(t, q) {
			matched = append(matched, t)
		}
	}

	return matched, nil
}

func matchesQuery(t Teacher, q string) bool {
	if strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.Department), q) {
		return true
	}
	for _, subject := range t.Subjects {
		if strings.Contains(strings.ToLower(subject), q) {
			return true
		}
	}
	return false
}

// EnsureSeed installs the demo profiles on a blank namespace. The guard is
// key absence, not emptiness, so deleting every profile sticks across
// restarts. Profile "2" pairs with the seeded teacher login; the other two
// get fresh paired accounts.
func (s *Service) EnsureSeed(ctx context.Context) error {
	exists, err := s.repo.Exists(ctx)
	if err != nil {
		return fmt.Errorf("seed teachers: %w", err)
	}
	if exists {
		return nil
	}

	seeds := []struct {
		profile     Teacher
		needAccount bool
	}{
		{
			profile: Teacher{
				ID:         "2",
				Name:       "Dr. Alice Smith",
				Email:      "teacher@clg.com",
				Department: "Computer Science",
				Subjects:   []string{"Algorithms", "Databases"},
				Bio:        "Office hours on request.",
				Slots:      []string{"Mon 10:00", "Wed 14:00"},
			},
		},
		{
			profile: Teacher{
				ID:         "tea2",
				Name:       "Prof. Bob Johnson",
				Email:      "bob.johnson@clg.com",
				Department: "Mathematics",
				Subjects:   []string{"Calculus", "Linear Algebra"},
				Slots:      []string{"Tue 09:00", "Thu 11:00"},
			},
			needAccount: true,
		},
		{
			profile: Teacher{
				ID:         "tea3",
				Name:       "Ms. Sarah Lee",
				Email:      "sarah.lee@clg.com",
				Department: "Physics",
				Subjects:   []string{"Mechanics", "Optics"},
				Slots:      []string{"Fri 13:00"},
			},
			needAccount: true,
		},
	}

	for _, seed := range seeds {
		if err := s.repo.Create(ctx, seed.profile); err != nil {
			return fmt.Errorf("seed teachers: %w", err)
		}
		if seed.needAccount {
			p := seed.profile
			if err := s.accounts.CreateTeacherAccount(ctx, p.ID, p.Name, p.Email); err != nil {
				s.log.Warn("paired account write failed during seeding",
					"teacherId", p.ID,
					"error", err,
				)
			}
		}
	}

	s.auditLog.RecordAs(ctx, audit.ActorSystem, audit.ActorSystem,
		"teachers_seeded", map[string]any{"count": len(seeds)})

	return nil
}
