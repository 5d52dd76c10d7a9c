// AngelaMos | 2026
// config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/aurex")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "My Business", cfg.Tenant.DefaultCompanyName)
	assert.Equal(t, "PKR", cfg.Tenant.DefaultCurrency)
	assert.Equal(t, 7, cfg.Subscription.TrialDays)
	assert.Equal(t, 30, cfg.Subscription.PremiumDays)
	assert.Equal(t, "basic", cfg.Subscription.DefaultPlanType)
	assert.False(t, cfg.Events.Enabled)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, "aurex", cfg.Redis.KeyPrefix)
	assert.Equal(t, 30*time.Second, cfg.Subscription.TierCacheTTL)
	assert.Equal(t, RateTier{Requests: 60, Burst: 10}, cfg.RateLimit.Tiers["free"])
	assert.Equal(t, RateTier{Requests: 1200, Burst: 200}, cfg.RateLimit.Tiers["premium"])
}

func TestLoadRateTiers(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://file/aurex
redis:
  url: redis://file:6379/0
rate_limit:
  tiers:
    trial:
      requests: 90
      burst: 9
`)
	t.Setenv("RATE_LIMIT_PREMIUM_REQUESTS", "5000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, RateTier{Requests: 90, Burst: 9}, cfg.RateLimit.Tiers["trial"])
	assert.Equal(t, 5000, cfg.RateLimit.Tiers["premium"].Requests)
	assert.Equal(t, 60, cfg.RateLimit.Tiers["free"].Requests)

	bad := writeConfig(t, `
database:
  url: postgres://file/aurex
redis:
  url: redis://file:6379/0
rate_limit:
  tiers:
    free:
      requests: 0
`)
	_, err = Load(bad)
	assert.ErrorContains(t, err, "rate_limit.tiers.free")
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	path := writeConfig(t, `
app:
  environment: staging
server:
  port: 9090
database:
  url: postgres://file/aurex
redis:
  url: redis://file:6379/0
subscription:
  trial_days: 14
`)
	t.Setenv("PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.App.Environment)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "postgres://file/aurex", cfg.Database.URL)
	assert.Equal(t, 14, cfg.Subscription.TrialDays)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	_, err := Load(writeConfig(t, "log:\n  level: debug\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadRejectsWildcardWithCredentials(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://localhost/aurex
redis:
  url: redis://localhost:6379/0
cors:
  allowed_origins: ["*"]
  allow_credentials: true
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORS wildcard")
}

func TestLoadEventsNeedURL(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://localhost/aurex
redis:
  url: redis://localhost:6379/0
events:
  enabled: true
  nats_url: ""
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NATS_URL")
}
