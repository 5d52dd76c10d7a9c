// AngelaMos | 2026
// subscription_test.go

package subscription

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurex-pk/aurex-api/internal/config"
	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/events"
	"github.com/aurex-pk/aurex-api/internal/middleware"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := epoch.Add(d)
	return &t
}

func TestDerive(t *testing.T) {
	day := 24 * time.Hour

	tests := []struct {
		name     string
		sub      Subscription
		expired  bool
		days     int
		activate bool
	}{
		{"virtual default", Default("idp|1"), false, 0, true},
		{"fresh trial", Subscription{Tier: TierTrial, Status: StatusActive, TrialExpiresAt: at(7 * day)}, false, 7, false},
		{"partial day rounds up", Subscription{Tier: TierTrial, Status: StatusActive, TrialExpiresAt: at(time.Hour)}, false, 1, false},
		{"trial past expiry", Subscription{Tier: TierTrial, Status: StatusActive, TrialExpiresAt: at(-time.Minute)}, true, 0, false},
		{"premium ignores trial dates", Subscription{
			Tier: TierPremium, Status: StatusActive,
			TrialExpiresAt: at(-day), PremiumExpiresAt: at(30 * day),
		}, false, 30, false},
		{"inactive row needs activation", Subscription{Tier: TierFree, Status: StatusInactive}, false, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := Derive(tc.sub, epoch)
			assert.Equal(t, tc.expired, v.IsExpired)
			assert.Equal(t, tc.days, v.DaysRemaining)
			assert.Equal(t, tc.activate, v.NeedsActivation)
		})
	}
}

type memRepo struct {
	rows map[string]Subscription
}

func (m *memRepo) GetBySubject(_ context.Context, subject string) (*Subscription, error) {
	s, ok := m.rows[subject]
	if !ok {
		return nil, fmt.Errorf("get subscription: %w", core.ErrNotFound)
	}
	return &s, nil
}

func (m *memRepo) Upsert(_ context.Context, action string, s *Subscription) error {
	cur, ok := m.rows[s.UserID]
	if !ok {
		cur = Default(s.UserID)
		cur.ID = int64(len(m.rows) + 1)
	}
	cur.Tier, cur.Status = s.Tier, s.Status
	switch action {
	case ActionActivateTrial:
		cur.TrialActivatedAt, cur.TrialExpiresAt, cur.TermsAgreedAt = s.TrialActivatedAt, s.TrialExpiresAt, s.TermsAgreedAt
	case ActionUpgradePremium:
		cur.PremiumStartedAt, cur.PremiumExpiresAt = s.PremiumStartedAt, s.PremiumExpiresAt
		cur.PlanType, cur.PaymentID = s.PlanType, s.PaymentID
	}
	m.rows[s.UserID] = cur
	*s = cur
	return nil
}

type fixture struct {
	repo     *memRepo
	recorder *events.Recorder
	clock    time.Time
	router   chi.Router
}

func newFixture(subject string) *fixture {
	f := &fixture{
		repo:     &memRepo{rows: map[string]Subscription{}},
		recorder: &events.Recorder{},
		clock:    epoch,
	}

	svc := NewService(f.repo, config.SubscriptionConfig{
		TrialDays: 7, PremiumDays: 30, DefaultPlanType: "basic",
	}, f.recorder)
	svc.now = func() time.Time { return f.clock }

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()
			if subject != "" {
				ctx = middleware.WithIdentity(ctx, &middleware.Identity{Subject: subject})
				ctx = tenant.WithScope(ctx, tenant.Scope{UserID: 1, CompanyID: 10})
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	NewHandler(svc).RegisterRoutes(r)
	f.router = r
	return f
}

func (f *fixture) do(t *testing.T, method, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, "/subscriptions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestSubscriptionDefault(t *testing.T) {
	f := newFixture("idp|1")

	code, body := f.do(t, http.MethodGet, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, TierFree, body["tier"])
	assert.Equal(t, StatusInactive, body["status"])
	assert.Equal(t, true, body["needsActivation"])
	assert.Empty(t, f.repo.rows)
}

func TestTrialThenExpiry(t *testing.T) {
	f := newFixture("idp|1")

	code, body := f.do(t, http.MethodPost, `{"action":"activate_trial"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, TierTrial, body["tier"])
	assert.Equal(t, StatusActive, body["status"])

	f.clock = epoch.Add(time.Second)
	_, body = f.do(t, http.MethodGet, "")
	assert.EqualValues(t, 7, body["daysRemaining"])
	assert.Equal(t, false, body["isExpired"])
	assert.Equal(t, false, body["needsActivation"])

	row := f.repo.rows["idp|1"]
	row.TrialExpiresAt = at(-time.Hour)
	f.repo.rows["idp|1"] = row

	_, body = f.do(t, http.MethodGet, "")
	assert.Equal(t, true, body["isExpired"])
	assert.EqualValues(t, 0, body["daysRemaining"])
	assert.Equal(t, StatusActive, f.repo.rows["idp|1"].Status)

	assert.Equal(t, []string{events.SubscriptionChanged}, f.recorder.Types())
	assert.EqualValues(t, 10, f.recorder.Events[0].CompanyID)
}

func TestUpgradePremium(t *testing.T) {
	f := newFixture("idp|1")
	f.do(t, http.MethodPost, `{"action":"activate_trial"}`)

	code, body := f.do(t, http.MethodPost, `{"action":"upgrade_premium","paymentId":"pay_42"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, TierPremium, body["tier"])
	assert.Equal(t, "basic", body["planType"])
	assert.Equal(t, "pay_42", body["paymentId"])
	assert.EqualValues(t, 30, body["daysRemaining"])
	assert.NotNil(t, body["trialActivatedAt"])

	_, body = f.do(t, http.MethodPost, `{"action":"upgrade_premium","planType":"pro"}`)
	assert.Equal(t, "pro", body["planType"])
	assert.Nil(t, body["paymentId"])
}

func TestSubscriptionRejections(t *testing.T) {
	f := newFixture("idp|1")

	code, body := f.do(t, http.MethodPost, `{"action":"cancel"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_ACTION", body["code"])

	code, body = f.do(t, http.MethodPost, `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "MISSING_ACTION", body["code"])

	anon := newFixture("")
	code, body = anon.do(t, http.MethodGet, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestUpsertQuery(t *testing.T) {
	q := upsertQuery(actionColumns[ActionActivateTrial])
	assert.Contains(t, q, "ON CONFLICT (user_id) DO UPDATE SET")
	assert.Contains(t, q, "trial_expires_at = EXCLUDED.trial_expires_at")
	assert.NotContains(t, q, "premium_expires_at = EXCLUDED")
}

func TestEffectiveTier(t *testing.T) {
	day := 24 * time.Hour

	tests := []struct {
		name string
		sub  Subscription
		want string
	}{
		{"virtual default", Default("idp|1"), TierFree},
		{"active trial", Subscription{Tier: TierTrial, Status: StatusActive, TrialExpiresAt: at(day)}, TierTrial},
		{"expired trial", Subscription{Tier: TierTrial, Status: StatusActive, TrialExpiresAt: at(-day)}, TierFree},
		{"active premium", Subscription{Tier: TierPremium, Status: StatusActive, PremiumExpiresAt: at(day)}, TierPremium},
		{"cancelled premium", Subscription{Tier: TierPremium, Status: StatusCancelled, PremiumExpiresAt: at(day)}, TierFree},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Derive(tc.sub, epoch).EffectiveTier())
		})
	}
}

func TestTierMiddleware(t *testing.T) {
	repo := &memRepo{rows: map[string]Subscription{
		"idp|paid":    {UserID: "idp|paid", Tier: TierPremium, Status: StatusActive, PremiumExpiresAt: at(time.Hour)},
		"idp|lapsed":  {UserID: "idp|lapsed", Tier: TierPremium, Status: StatusActive, PremiumExpiresAt: at(-time.Hour)},
		"idp|trialed": {UserID: "idp|trialed", Tier: TierTrial, Status: StatusActive, TrialExpiresAt: at(time.Hour)},
	}}
	svc := NewService(repo, config.SubscriptionConfig{}, nil)
	svc.now = func() time.Time { return epoch }

	var seen string
	handler := TierMiddleware(svc, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetUserTier(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := map[string]string{
		"idp|paid":    TierPremium,
		"idp|lapsed":  TierFree,
		"idp|trialed": TierTrial,
		"idp|new":     TierFree,
		"":            TierFree,
	}
	for subject, want := range tests {
		ctx := context.Background()
		if subject != "" {
			ctx = middleware.WithIdentity(ctx, &middleware.Identity{Subject: subject})
		}
		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil).WithContext(ctx)
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, want, seen, subject)
	}
}
