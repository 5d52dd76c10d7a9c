// AngelaMos | 2026
// service.go

package tenant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/aurex-pk/aurex-api/internal/config"
	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/events"
	"github.com/aurex-pk/aurex-api/internal/middleware"
)

type Resolver struct {
	repo      Repository
	cfg       config.TenantConfig
	publisher events.Publisher
	logger    *slog.Logger
}

func NewResolver(
	repo Repository,
	cfg config.TenantConfig,
	publisher events.Publisher,
	logger *slog.Logger,
) *Resolver {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{repo: repo, cfg: cfg, publisher: publisher, logger: logger}
}

// Resolve maps an identity to its user and company, provisioning both on the
// first request. Calling it again for a linked identity is a single read.
func (s *Resolver) Resolve(ctx context.Context, identity *middleware.Identity) (*Scope, error) {
	if identity == nil || identity.Subject == "" {
		return nil, core.UnauthorizedError("")
	}

	scope, err := s.repo.FindByAuthID(ctx, identity.Subject)
	if err == nil {
		return scope, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("resolve tenant: %w", err)
	}

	scope, created, err := s.repo.Provision(ctx, ProvisionInput{
		AuthID:          identity.Subject,
		Email:           strings.TrimSpace(identity.Email),
		Name:            displayName(identity),
		CompanyName:     s.cfg.DefaultCompanyName,
		DefaultCurrency: s.cfg.DefaultCurrency,
	})
	if err != nil {
		return nil, fmt.Errorf("provision tenant: %w", err)
	}

	if created {
		core.AddSpanEvent(ctx, "tenant.provisioned",
			attribute.Int64("user.id", scope.UserID),
			attribute.Int64("company.id", scope.CompanyID),
		)
		s.logger.InfoContext(ctx, "tenant provisioned",
			"user_id", scope.UserID,
			"company_id", scope.CompanyID,
		)
		s.publisher.Publish(ctx, events.TenantProvisioned, scope.CompanyID, map[string]any{
			"userId":    scope.UserID,
			"companyId": scope.CompanyID,
		})
	}

	return scope, nil
}

func displayName(identity *middleware.Identity) string {
	if name := strings.TrimSpace(identity.Name); name != "" {
		return name
	}
	if email := strings.TrimSpace(identity.Email); email != "" {
		return email
	}
	return identity.Subject
}
