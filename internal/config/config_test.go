package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "trust", cfg.PricingMode)
	assert.Equal(t, "authenticated", cfg.JWTAudience)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, 5*time.Second, cfg.IdentityTimeout)
	assert.False(t, cfg.AutoMigrate)
	assert.Empty(t, cfg.DevMemberships)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co/")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("PRICING_MODE", "verify")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("DEV_MEMBERSHIPS", "b1:u1, b1:u2,b2:u3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://demo.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "verify", cfg.PricingMode)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"u1", "u2"}, cfg.DevMemberships["b1"])
	assert.Equal(t, []string{"u3"}, cfg.DevMemberships["b2"])
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]map[string]string{
		"no identity source": {},
		"bad storage":        {"SUPABASE_JWT_SECRET": "s", "STORAGE_DRIVER": "mongo"},
		"bad pricing":        {"SUPABASE_JWT_SECRET": "s", "PRICING_MODE": "guess"},
		"bad max conns":      {"SUPABASE_JWT_SECRET": "s", "DB_MAX_CONNS": "x"},
		"zero max conns":     {"SUPABASE_JWT_SECRET": "s", "DB_MAX_CONNS": "0"},
		"bad memberships":    {"SUPABASE_JWT_SECRET": "s", "DEV_MEMBERSHIPS": "b1"},
		"bad timeout":        {"SUPABASE_JWT_SECRET": "s", "IDENTITY_TIMEOUT": "soon"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
