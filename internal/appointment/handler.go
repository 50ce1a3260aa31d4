// AngelaMos | 2026
// handler.go

package appointment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/frontdesk/internal/core"
	"github.com/angelamos/frontdesk/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/appointments", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/mine", h.Mine)
		r.Post("/{appointmentID}/approve", h.Approve)

		// Only students book; the record's studentId is always the caller.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole("student"))
			r.Post("/", h.Book)
		})

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/", h.List)
		})
	})
}

func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	ctx := r.Context()
	a, err := h.service.Book(
		ctx,
		middleware.GetUserID(ctx),
		middleware.GetUserName(ctx),
		req,
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, a)
}

// Mine lists the caller's appointments: the ones they teach when signed in
// as a teacher, the ones they booked otherwise.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var (
		appointments []Appointment
		err          error
	)
	if middleware.GetUserRole(ctx) == "teacher" {
		appointments, err = h.service.ByTeacher(ctx, userID)
	} else {
		appointments, err = h.service.ByStudent(ctx, userID)
	}
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, AppointmentListResponse{Appointments: appointments})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, AppointmentListResponse{Appointments: appointments})
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	a, err := h.service.Approve(
		ctx,
		chi.URLParam(r, "appointmentID"),
		middleware.GetUserID(ctx),
		middleware.GetUserRole(ctx),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "appointment")
			return
		}
		if errors.Is(err, core.ErrForbidden) {
			core.Forbidden(w, "not allowed to approve this appointment")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, a)
}
