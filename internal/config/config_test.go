package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// setRequired populates every variable Load treats as mandatory.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "blockflix")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ACCESS_TOKEN_TTL_MIN", "15")
	t.Setenv("BCRYPT_COST", "10")
}

func TestLoadSeedDefaults(t *testing.T) {
	setRequired(t)

	cfg := Load()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15, cfg.AccessTTLMin)
	assert.Equal(t, 10, cfg.BcryptCost)

	assert.Equal(t, "data", cfg.SeedDataDir)
	assert.Equal(t, "flat", cfg.SeedPricing)
	assert.Equal(t, time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), cfg.SeedEpoch)
	assert.Equal(t, 100, cfg.SeedInitialUsers)
	assert.InDelta(t, 3, cfg.SeedMinGrowthPct, 1e-9)
	assert.InDelta(t, 5, cfg.SeedMaxGrowthPct, 1e-9)
	assert.InDelta(t, 9.99, cfg.SeedFee, 1e-9)
	assert.Zero(t, cfg.SeedRandSeed)
}

func TestLoadSeedOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SEED_DATA_DIR", "/srv/dataset")
	t.Setenv("SEED_PRICING", "tiered")
	t.Setenv("SEED_EPOCH", "2000-06-01")
	t.Setenv("SEED_INITIAL_USERS", "250")
	t.Setenv("SEED_MIN_GROWTH_PCT", "1.5")
	t.Setenv("SEED_MAX_GROWTH_PCT", "2.5")
	t.Setenv("SEED_FEE", "14.99")
	t.Setenv("SEED_RAND_SEED", "1234")

	cfg := Load()

	assert.Equal(t, "/srv/dataset", cfg.SeedDataDir)
	assert.Equal(t, "tiered", cfg.SeedPricing)
	assert.Equal(t, time.Date(2000, 6, 1, 0, 0, 0, 0, time.UTC), cfg.SeedEpoch)
	assert.Equal(t, 250, cfg.SeedInitialUsers)
	assert.InDelta(t, 1.5, cfg.SeedMinGrowthPct, 1e-9)
	assert.InDelta(t, 2.5, cfg.SeedMaxGrowthPct, 1e-9)
	assert.InDelta(t, 14.99, cfg.SeedFee, 1e-9)
	assert.Equal(t, uint64(1234), cfg.SeedRandSeed)
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, map[string]bool{"GET": true}, cfg.Methods)
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "route_query", cfg.KeyStrategy)
	assert.Equal(t, "cache", cfg.Prefix)
	assert.Equal(t, 1048576, cfg.MaxBodyBytes)
}

func TestParseMethods(t *testing.T) {
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, parseMethods("get, head"))
	assert.Empty(t, parseMethods(" , "))
}

func TestParseDurFallsBack(t *testing.T) {
	assert.Equal(t, 45*time.Second, parseDur("45s"))
	assert.Equal(t, time.Second, parseDur("not-a-duration"))
}
