// AngelaMos | 2026
// repository.go

package appointment

import (
	"context"
	"fmt"

	"github.com/angelamos/frontdesk/internal/store"
)

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Update(ctx context.Context, a Appointment) error
	List(ctx context.Context) ([]Appointment, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]Appointment, error)
	ListByStudent(ctx context.Context, studentID string) ([]Appointment, error)
}

type repository struct {
	appointments *store.Collection[Appointment]
}

func NewRepository(st *store.Store) Repository {
	return &repository{
		appointments: store.NewCollection[Appointment](st, "appointments"),
	}
}

func (r *repository) Create(ctx context.Context, a Appointment) error {
	if err := r.appointments.Insert(ctx, a); err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Appointment, error) {
	a, err := r.appointments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return a, nil
}

func (r *repository) Update(ctx context.Context, a Appointment) error {
	if err := r.appointments.Replace(ctx, a); err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]Appointment, error) {
	appointments, err := r.appointments.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

func (r *repository) ListByTeacher(
	ctx context.Context,
	teacherID string,
) ([]Appointment, error) {
	appointments, err := r.appointments.Find(ctx, func(a Appointment) bool {
		return a.TeacherID == teacherID
	})
	if err != nil {
		return nil, fmt.Errorf("list appointments by teacher: %w", err)
	}
	return appointments, nil
}

func (r *repository) ListByStudent(
	ctx context.Context,
	studentID string,
) ([]Appointment, error) {
	appointments, err := r.appointments.Find(ctx, func(a Appointment) bool {
		return a.StudentID == studentID
	})
	if err != nil {
		return nil, fmt.Errorf("list appointments by student: %w", err)
	}
	return appointments, nil
}
