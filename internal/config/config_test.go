package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/storefront-checkout/internal/core"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "123456", cfg.OTPCode)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, BackendMemory, cfg.SessionBackend)
	assert.Equal(t, CouponsBuiltin, cfg.CouponSource)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, core.Development, cfg.Environment())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")
	t.Setenv("DB_HOST", "pg")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, BackendRedis, cfg.SessionBackend)
	assert.Equal(t, "redis://cache:6379/2", cfg.Redis.URL)
	assert.Equal(t, "pg", cfg.Postgres.Host)
	assert.True(t, cfg.Environment().IsProduction())
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OTP_CODE=246810\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("OTP_CODE") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "246810", cfg.OTPCode)
}

func TestLoad_MinimumSessionTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "1s")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, MinSessionTTL, cfg.SessionTTL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"otp not digits", "OTP_CODE", "12ab"},
		{"unknown backend", "SESSION_BACKEND", "memcached"},
		{"unknown coupon source", "COUPON_SOURCE", "s3"},
		{"negative ttl", "SESSION_TTL", "-1m"},
		{"nanosecond ttl", "SESSION_TTL", "1ns"},
		{"sub-second ttl", "SESSION_TTL", "500ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
