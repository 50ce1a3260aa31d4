// AngelaMos | 2026
// handler.go

package billing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/frontdesk/internal/core"
	"github.com/angelamos/frontdesk/internal/middleware"
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

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, staffOnly func(http.Handler) http.Handler,
) {
	r.Route("/bills", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/mine", h.ListMine)
		r.Post("/{billID}/pay", h.Pay)

		r.Group(func(r chi.Router) {
			r.Use(staffOnly)
			r.Get("/", h.List)
			r.Post("/", h.Create)
			r.Get("/export", h.Export)
			r.Get("/member/{email}", h.ListByMember)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bills, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, BillListResponse{Bills: bills})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBillRequest
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

	b, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, b)
}

// ListMine returns bills addressed to the signed-in account's email.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if email == "" {
		core.JSONError(w, core.UnauthorizedError("authentication required"))
		return
	}

	bills, err := h.service.ListByMemberEmail(r.Context(), email)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, BillListResponse{Bills: bills})
}

func (h *Handler) ListByMember(w http.ResponseWriter, r *http.Request) {
	bills, err := h.service.ListByMemberEmail(
		r.Context(),
		chi.URLParam(r, "email"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, BillListResponse{Bills: bills})
}

// Pay settles a bill. Members can only settle bills addressed to their own
// email; staff can settle any.
func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, "billID")

	b, err := h.service.Get(r.Context(), billID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "bill")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	role := middleware.GetUserRole(r.Context())
	if role == "member" &&
		!strings.EqualFold(b.MemberEmail, middleware.GetUserEmail(r.Context())) {
		core.Forbidden(w, "cannot pay another member's bill")
		return
	}

	paid, err := h.service.Pay(r.Context(), billID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, paid)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	body, err := h.service.ExportCSV(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	report.WriteDownload(w, "bills.csv", body)
}
