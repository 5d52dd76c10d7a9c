// AngelaMos | 2026
// routes.go

package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/aurex-pk/aurex-api/internal/admin"
	"github.com/aurex-pk/aurex-api/internal/auth"
	"github.com/aurex-pk/aurex-api/internal/banking"
	"github.com/aurex-pk/aurex-api/internal/client"
	"github.com/aurex-pk/aurex-api/internal/company"
	"github.com/aurex-pk/aurex-api/internal/config"
	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/events"
	"github.com/aurex-pk/aurex-api/internal/health"
	"github.com/aurex-pk/aurex-api/internal/invoice"
	"github.com/aurex-pk/aurex-api/internal/item"
	"github.com/aurex-pk/aurex-api/internal/middleware"
	"github.com/aurex-pk/aurex-api/internal/payment"
	"github.com/aurex-pk/aurex-api/internal/quotation"
	"github.com/aurex-pk/aurex-api/internal/schema"
	"github.com/aurex-pk/aurex-api/internal/subscription"
	"github.com/aurex-pk/aurex-api/internal/tenant"
	"github.com/aurex-pk/aurex-api/internal/user"
)

// Deps is everything the route tree needs. Redis and Admin are optional:
// without Redis the per-IP guard is off and tier budgets are kept in process.
type Deps struct {
	Config    *config.Config
	DB        *sqlx.DB
	Redis     *core.Redis
	JWT       *auth.JWTManager
	Publisher events.Publisher
	Health    *health.Handler
	Admin     admin.HandlerConfig
	Logger    *slog.Logger
}

type registrar interface {
	RegisterRoutes(r chi.Router)
}

// Routes installs the middleware stack, the public endpoints and the
// authenticated /api tree on r.
func Routes(r chi.Router, d Deps) {
	cfg := d.Config
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	publisher := d.Publisher
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Tracing(cfg.Otel.ServiceName))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	if d.Health != nil {
		d.Health.RegisterRoutes(r)
	}
	auth.NewHandler(d.JWT).RegisterRoutes(r)

	resolver := tenant.NewResolver(
		tenant.NewRepository(d.DB),
		cfg.Tenant,
		publisher,
		logger,
	)

	d.Admin.Stats = admin.NewStatsRepository(d.DB)

	subscriptions := subscription.NewService(
		subscription.NewRepository(d.DB), cfg.Subscription, publisher,
	).WithTierCache(subscription.NewTierCache(d.Redis, cfg.Subscription.TierCacheTTL))

	var rdb *redis.Client
	if d.Redis != nil {
		rdb = d.Redis.Client
	}

	handlers := []registrar{
		company.NewHandler(company.NewService(company.NewRepository(d.DB))),
		client.NewHandler(client.NewService(client.NewRepository(d.DB))),
		item.NewHandler(item.NewService(item.NewRepository(d.DB))),
		invoice.NewHandler(invoice.NewService(invoice.NewRepository(d.DB), invoice.KindStandard, publisher)),
		invoice.NewHandler(invoice.NewService(invoice.NewRepository(d.DB), invoice.KindTax, publisher)),
		quotation.NewHandler(quotation.NewService(quotation.NewRepository(d.DB), publisher)),
		payment.NewHandler(payment.NewService(payment.NewRepository(d.DB), publisher)),
		banking.NewHandler(banking.NewService(banking.NewRepository(d.DB))),
		user.NewHandler(user.NewService(user.NewRepository(d.DB))),
		subscription.NewHandler(subscriptions),
		schema.NewHandler(createInputs()),
		admin.NewHandler(d.Admin),
	}

	r.Route("/api", func(r chi.Router) {
		if rdb != nil {
			r.Use(middleware.NewRateLimiter(rdb, middleware.RateLimitConfig{
				Limit: middleware.FromConfig(
					cfg.RateLimit.Requests,
					cfg.RateLimit.Burst,
					cfg.RateLimit.Window,
				),
				KeyFunc:  middleware.KeyByIP,
				FailOpen: true,
			}).Handler)
		}
		r.Use(middleware.Authenticator(d.JWT))
		r.Use(tenant.Middleware(resolver))
		r.Use(subscription.TierMiddleware(subscriptions, logger))
		r.Use(middleware.TieredRateLimiter(rdb, cfg.RateLimit))

		for _, h := range handlers {
			h.RegisterRoutes(r)
		}
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		core.NotFound(w, "route")
	})
}

// createInputs maps each /api resource segment to the body its POST accepts.
func createInputs() map[string]any {
	return map[string]any{
		"companies":         company.CreateCompanyRequest{},
		"clients":           client.CreateClientRequest{},
		"items":             item.CreateItemRequest{},
		"invoices":          invoice.CreateInvoiceRequest{},
		"tax-invoices":      invoice.CreateInvoiceRequest{},
		"quotations":        quotation.CreateQuotationRequest{},
		"payments":          payment.CreatePaymentRequest{},
		"bank-transactions": banking.CreateTransactionRequest{},
		"users":             user.CreateUserRequest{},
		"subscriptions":     subscription.ActionRequest{},
	}
}
