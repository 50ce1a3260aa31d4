// AngelaMos | 2026
// handler.go

package teacher

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/frontdesk/internal/core"
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

// RegisterRoutes mounts profile browsing for everyone signed in and
// profile management for admins.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/teachers", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.List)
		r.Get("/search", h.Search)
		r.Get("/{teacherID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/", h.Create)
			r.Put("/{teacherID}", h.Update)
			r.Delete("/{teacherID}", h.Delete)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, TeacherListResponse{Teachers: teachers})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, TeacherListResponse{Teachers: teachers})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Get(r.Context(), chi.URLParam(r, "teacherID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "teacher")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, t)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTeacherRequest
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

	t, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, t)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateTeacherRequest
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

	t, err := h.service.Update(r.Context(), chi.URLParam(r, "teacherID"), req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "teacher")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, t)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "teacherID")); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}
