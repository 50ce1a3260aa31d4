// AngelaMos | 2026
// handler.go

package member

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/frontdesk/internal/core"
	"github.com/angelamos/frontdesk/internal/report"
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

// RegisterRoutes mounts member management. Everything here is front desk
// or admin territory.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, staffOnly func(http.Handler) http.Handler,
) {
	r.Route("/members", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(staffOnly)

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/search", h.Search)
		r.Get("/export", h.Export)
		r.Get("/{memberID}", h.Get)
		r.Put("/{memberID}", h.Update)
		r.Delete("/{memberID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, MemberListResponse{Members: members})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
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

	m, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, m)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.Get(r.Context(), chi.URLParam(r, "memberID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "member")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, m)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateMemberRequest
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

	m, err := h.service.Update(r.Context(), chi.URLParam(r, "memberID"), req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "member")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, m)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "memberID")); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, MemberListResponse{Members: members})
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	body, err := h.service.ExportCSV(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	report.WriteDownload(w, "members.csv", body)
}
