// AngelaMos | 2026
// service.go

package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/angelamos/frontdesk/internal/audit"
	"github.com/angelamos/frontdesk/internal/core"
	"github.com/angelamos/frontdesk/internal/store"
)

type Service struct {
	repo     Repository
	auditLog *audit.Logger
}

func NewService(repo Repository, auditLog *audit.Logger) *Service {
	return &Service{repo: repo, auditLog: auditLog}
}

// Book files a pending request for the signed-in student.
func (s *Service) Book(
	ctx context.Context,
	studentID, studentName string,
	req BookAppointmentRequest,
) (*Appointment, error) {
	a := Appointment{
		ID:          store.NewID(),
		TeacherID:   req.TeacherID,
		StudentID:   studentID,
		StudentName: studentName,
		Datetime:    req.Datetime,
		Purpose:     req.Purpose,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.auditLog.Record(ctx, audit.ActionAppointmentBooked, map[string]any{
		"appointmentId": a.ID,
		"teacherId":     a.TeacherID,
	})

	return &a, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) ByTeacher(
	ctx context.Context,
	teacherID string,
) ([]Appointment, error) {
	return s.repo.ListByTeacher(ctx, teacherID)
}

func (s *Service) ByStudent(
	ctx context.Context,
	studentID string,
) ([]Appointment, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

// Approve moves a pending appointment to approved. Admins may approve any
// appointment; a teacher only their own. Approving an already approved
// appointment changes nothing.
func (s *Service) Approve(
	ctx context.Context,
	id, actorID, actorRole string,
) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actorRole != "admin" && a.TeacherID != actorID {
		return nil, fmt.Errorf("approve appointment: %w", core.ErrForbidden)
	}

	if a.Status == StatusApproved {
		return a, nil
	}

	a.Status = StatusApproved
	if err := s.repo.Update(ctx, *a); err != nil {
		return nil, err
	}

	s.auditLog.Record(ctx, audit.ActionAppointmentUpdated, map[string]any{
		"appointmentId": a.ID,
		"status":        a.Status,
	})

	return a, nil
}
