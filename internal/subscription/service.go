// AngelaMos | 2026
// service.go

package subscription

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/aurex-pk/aurex-api/internal/config"
	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/events"
)

type Service struct {
	repo      Repository
	cfg       config.SubscriptionConfig
	publisher events.Publisher
	tiers     *TierCache
	now       func() time.Time
}

func NewService(repo Repository, cfg config.SubscriptionConfig, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{repo: repo, cfg: cfg, publisher: publisher, now: time.Now}
}

// WithTierCache enables Redis caching of Tier lookups.
func (s *Service) WithTierCache(c *TierCache) *Service {
	s.tiers = c
	return s
}

// Get returns the derived status for subject, or the virtual free/inactive
// default when no row exists.
func (s *Service) Get(ctx context.Context, subject string) (*View, error) {
	sub, err := s.repo.GetBySubject(ctx, subject)
	switch {
	case errors.Is(err, core.ErrNotFound):
		def := Default(subject)
		sub = &def
	case err != nil:
		return nil, err
	}

	v := Derive(*sub, s.now())
	return &v, nil
}

func (s *Service) Apply(
	ctx context.Context,
	subject string,
	companyID int64,
	req ActionRequest,
) (*View, error) {
	now := s.now().UTC()
	sub := &Subscription{UserID: subject, Status: StatusActive}

	switch req.Action {
	case ActionActivateTrial:
		expires := now.AddDate(0, 0, s.cfg.TrialDays)
		sub.Tier = TierTrial
		sub.TrialActivatedAt = &now
		sub.TrialExpiresAt = &expires
		sub.TermsAgreedAt = &now
	case ActionUpgradePremium:
		expires := now.AddDate(0, 0, s.cfg.PremiumDays)
		plan := s.cfg.DefaultPlanType
		if req.PlanType != nil {
			plan = *req.PlanType
		}
		sub.Tier = TierPremium
		sub.PremiumStartedAt = &now
		sub.PremiumExpiresAt = &expires
		sub.PlanType = &plan
		sub.PaymentID = req.PaymentID
	default:
		return nil, core.BadRequestError("INVALID_ACTION", "action must be one of: activate_trial upgrade_premium")
	}

	if err := s.repo.Upsert(ctx, req.Action, sub); err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}
	s.tiers.forget(ctx, subject)

	core.AddSpanEvent(ctx, "subscription.changed",
		attribute.String("subscription.action", req.Action),
		attribute.String("subscription.tier", sub.Tier),
	)
	s.publisher.Publish(ctx, events.SubscriptionChanged, companyID, map[string]any{
		"action":  req.Action,
		"subject": subject,
		"tier":    sub.Tier,
	})

	v := Derive(*sub, s.now())
	return &v, nil
}
