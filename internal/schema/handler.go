// AngelaMos | 2026
// handler.go

package schema

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/invopop/jsonschema"

	"github.com/aurex-pk/aurex-api/internal/core"
)

// Handler serves precomputed schemas keyed by the resource path segment,
// e.g. "tax-invoices".
type Handler struct {
	schemas map[string]*jsonschema.Schema
}

func NewHandler(inputs map[string]any) *Handler {
	schemas := make(map[string]*jsonschema.Schema, len(inputs))
	for name, v := range inputs {
		s := Generate(v)
		s.Title = name
		schemas[name] = s
	}
	return &Handler{schemas: schemas}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/schema", func(r chi.Router) {
		r.Get("/", h.Index)
		r.Get("/{resource}", h.Get)
	})
}

func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(h.schemas))
	for name := range h.schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	core.OK(w, map[string]any{"resources": names})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := h.schemas[chi.URLParam(r, "resource")]
	if !ok {
		core.JSONError(w, core.NotFoundError("schema"))
		return
	}

	core.OK(w, s)
}
