// AngelaMos | 2026
// handler.go

package auth

import (
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	jwt *JWTManager
}

func NewHandler(jwtManager *JWTManager) *Handler {
	return &Handler{jwt: jwtManager}
}

// RegisterRoutes publishes the verification key set so that other services
// can check the same identity tokens.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/.well-known/jwks.json", h.jwt.GetJWKSHandler())
}
