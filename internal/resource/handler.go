// AngelaMos | 2026
// handler.go

// Package resource serves the List/Get/Create/Update/Delete surface shared by
// every tenant-scoped entity. All operations address rows with ?id=.
package resource

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

// Service is implemented by each entity service. C and U are the create and
// update inputs, P the list parameters.
type Service[T, C, U, P any] interface {
	List(ctx context.Context, scope tenant.Scope, params P) ([]T, error)
	Get(ctx context.Context, scope tenant.Scope, id int64) (*T, error)
	Create(ctx context.Context, scope tenant.Scope, req C) (*T, error)
	Update(ctx context.Context, scope tenant.Scope, id int64, req U) (*T, error)
	Delete(ctx context.Context, scope tenant.Scope, id int64) (*T, error)
}

type Config[T, P any] struct {
	// Name is the human name used in messages and error codes, e.g.
	// "tax invoice" yields TAX_INVOICE_NOT_FOUND.
	Name string
	// Key is the JSON key under which a deleted row is echoed back.
	Key string
	// ParseList reads list parameters from the query string.
	ParseList func(r *http.Request) (P, error)
	// ID extracts the primary key of a row.
	ID func(row *T) int64
}

type Handler[T, C, U, P any] struct {
	service   Service[T, C, U, P]
	cfg       Config[T, P]
	validator *validator.Validate
}

func New[T, C, U, P any](service Service[T, C, U, P], cfg Config[T, P]) *Handler[T, C, U, P] {
	return &Handler[T, C, U, P]{
		service:   service,
		cfg:       cfg,
		validator: core.NewValidator(),
	}
}

func (h *Handler[T, C, U, P]) Routes(r chi.Router) {
	r.Get("/", h.Get)
	r.Post("/", h.Create)
	r.Put("/", h.Update)
	r.Delete("/", h.Delete)
}

func (h *Handler[T, C, U, P]) Validator() *validator.Validate {
	return h.validator
}

// Get serves a single row when ?id= is present and the list otherwise.
func (h *Handler[T, C, U, P]) Get(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.Current(r.Context())
	if err != nil {
		core.JSONError(w, err)
		return
	}

	if !core.HasID(r) {
		h.list(w, r, scope)
		return
	}

	id, err := core.ParseID(r)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	row, err := h.service.Get(r.Context(), scope, id)
	if err != nil {
		core.RespondError(w, err, h.cfg.Name)
		return
	}

	core.OK(w, row)
}

func (h *Handler[T, C, U, P]) list(w http.ResponseWriter, r *http.Request, scope tenant.Scope) {
	params, err := h.cfg.ParseList(r)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	rows, err := h.service.List(r.Context(), scope, params)
	if err != nil {
		core.RespondError(w, err, h.cfg.Name)
		return
	}
	if rows == nil {
		rows = []T{}
	}

	core.OK(w, rows)
}

func (h *Handler[T, C, U, P]) Create(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.Current(r.Context())
	if err != nil {
		core.JSONError(w, err)
		return
	}

	var req C
	if err := core.Bind(r, h.validator, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	row, err := h.service.Create(r.Context(), scope, req)
	if err != nil {
		core.RespondError(w, err, h.cfg.Name)
		return
	}

	core.Created(w, row)
}

func (h *Handler[T, C, U, P]) Update(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.Current(r.Context())
	if err != nil {
		core.JSONError(w, err)
		return
	}

	id, err := core.ParseID(r)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	var req U
	if err := core.Bind(r, h.validator, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	row, err := h.service.Update(r.Context(), scope, id, req)
	if err != nil {
		core.RespondError(w, err, h.cfg.Name)
		return
	}

	core.OK(w, row)
}

func (h *Handler[T, C, U, P]) Delete(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.Current(r.Context())
	if err != nil {
		core.JSONError(w, err)
		return
	}

	id, err := core.ParseID(r)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	row, err := h.service.Delete(r.Context(), scope, id)
	if err != nil {
		core.RespondError(w, err, h.cfg.Name)
		return
	}

	core.Deleted(w, h.cfg.Name, h.cfg.Key, h.cfg.ID(row), row)
}

