// AngelaMos | 2026
// entity.go

package subscription

import (
	"math"
	"time"
)

const (
	TierFree    = "free"
	TierTrial   = "trial"
	TierPremium = "premium"

	StatusInactive  = "inactive"
	StatusActive    = "active"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"

	ActionActivateTrial  = "activate_trial"
	ActionUpgradePremium = "upgrade_premium"
)

// Subscription is keyed by the identity subject, not by the application user.
type Subscription struct {
	ID               int64      `db:"id"                 json:"id,omitempty"`
	UserID           string     `db:"user_id"            json:"userId"`
	Tier             string     `db:"tier"               json:"tier"`
	Status           string     `db:"status"             json:"status"`
	TrialActivatedAt *time.Time `db:"trial_activated_at" json:"trialActivatedAt"`
	TrialExpiresAt   *time.Time `db:"trial_expires_at"   json:"trialExpiresAt"`
	TermsAgreedAt    *time.Time `db:"terms_agreed_at"    json:"termsAgreedAt"`
	PremiumStartedAt *time.Time `db:"premium_started_at" json:"premiumStartedAt"`
	PremiumExpiresAt *time.Time `db:"premium_expires_at" json:"premiumExpiresAt"`
	PlanType         *string    `db:"plan_type"          json:"planType"`
	PaymentID        *string    `db:"payment_id"         json:"paymentId"`
	CreatedAt        *time.Time `db:"created_at"         json:"createdAt,omitempty"`
	UpdatedAt        *time.Time `db:"updated_at"         json:"updatedAt,omitempty"`
}

// Default is the virtual row for an identity that never activated anything.
func Default(subject string) Subscription {
	return Subscription{UserID: subject, Tier: TierFree, Status: StatusInactive}
}

// View is a Subscription with the read-time fields. None of them are stored.
type View struct {
	Subscription
	IsExpired       bool `json:"isExpired"`
	DaysRemaining   int  `json:"daysRemaining"`
	NeedsActivation bool `json:"needsActivation"`
}

// ExpiresAt is the expiry of the current tier, nil for free.
func (s Subscription) ExpiresAt() *time.Time {
	switch s.Tier {
	case TierTrial:
		return s.TrialExpiresAt
	case TierPremium:
		return s.PremiumExpiresAt
	default:
		return nil
	}
}

// Derive computes the read-time fields as of now.
func Derive(s Subscription, now time.Time) View {
	v := View{
		Subscription:    s,
		NeedsActivation: s.Status == StatusInactive,
	}

	expiry := s.ExpiresAt()
	if expiry == nil {
		return v
	}

	v.IsExpired = now.After(*expiry)
	v.DaysRemaining = daysUntil(now, *expiry)
	return v
}

// EffectiveTier is the tier the caller is served as: an expired or inactive
// subscription counts as free.
func (v View) EffectiveTier() string {
	if v.IsExpired || v.Status != StatusActive {
		return TierFree
	}
	return v.Tier
}

// daysUntil rounds partial days up and never goes below zero.
func daysUntil(now, until time.Time) int {
	left := until.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Hours() / 24))
}
