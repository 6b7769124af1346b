package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "MONGODB_URI", "RATE_LIMIT", "STRICT_VALIDATION", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, 0, cfg.RateLimit)
	assert.False(t, cfg.StrictValidation)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("POSTGRES_URL", "postgres://localhost/register")
	t.Setenv("RATE_LIMIT", "120")
	t.Setenv("STRICT_VALIDATION", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 120, cfg.RateLimit)
	assert.True(t, cfg.StrictValidation)
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]map[string]string{
		"bad rate limit":  {"RATE_LIMIT": "lots"},
		"negative limit":  {"RATE_LIMIT": "-1"},
		"bad strict flag": {"STRICT_VALIDATION": "maybe"},
		"unknown driver":  {"STORE_DRIVER": "redis"},
		"postgres no url": {"STORE_DRIVER": "postgres", "POSTGRES_URL": ""},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
