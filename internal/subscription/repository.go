// AngelaMos | 2026
// repository.go

package subscription

import (
	"context"
	"fmt"
	"strings"

	"github.com/aurex-pk/aurex-api/internal/core"
)

type Repository interface {
	// GetBySubject returns core.ErrNotFound when the identity has no row.
	GetBySubject(ctx context.Context, subject string) (*Subscription, error)
	// Upsert writes the columns owned by action, creating the row if needed.
	Upsert(ctx context.Context, action string, s *Subscription) error
}

const columns = `
	id, user_id, tier, status, trial_activated_at, trial_expires_at,
	terms_agreed_at, premium_started_at, premium_expires_at, plan_type,
	payment_id, created_at, updated_at`

// actionColumns lists what each action overwrites. Columns not listed keep
// their stored values, so a premium upgrade preserves the trial history.
var actionColumns = map[string][]string{
	ActionActivateTrial: {
		"tier", "status", "trial_activated_at", "trial_expires_at", "terms_agreed_at",
	},
	ActionUpgradePremium: {
		"tier", "status", "premium_started_at", "premium_expires_at", "plan_type", "payment_id",
	},
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) GetBySubject(ctx context.Context, subject string) (*Subscription, error) {
	query := `SELECT ` + columns + ` FROM subscriptions WHERE user_id = $1`

	var s Subscription
	if err := r.db.GetContext(ctx, &s, query, subject); err != nil {
		return nil, core.MapPGError("get subscription", err)
	}

	return &s, nil
}

func (r *repository) Upsert(ctx context.Context, action string, s *Subscription) error {
	cols, ok := actionColumns[action]
	if !ok {
		return fmt.Errorf("upsert subscription: unknown action %q", action)
	}

	if err := core.NamedGet(ctx, r.db, s, upsertQuery(cols), s); err != nil {
		return core.MapPGError("upsert subscription", err)
	}

	return nil
}

func upsertQuery(cols []string) string {
	params := make([]string, len(cols))
	sets := make([]string, len(cols))
	for i, c := range cols {
		params[i] = ":" + c
		sets[i] = c + " = EXCLUDED." + c
	}

	return fmt.Sprintf(`
		INSERT INTO subscriptions (user_id, %s)
		VALUES (:user_id, %s)
		ON CONFLICT (user_id) DO UPDATE SET
			%s,
			updated_at = NOW()
		RETURNING %s`,
		strings.Join(cols, ", "),
		strings.Join(params, ", "),
		strings.Join(sets, ",\n\t\t\t"),
		columns,
	)
}
