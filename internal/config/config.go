// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Cheertaboi/storefront-checkout/internal/checkout"
	"github.com/Cheertaboi/storefront-checkout/internal/core"
	"github.com/Cheertaboi/storefront-checkout/pkg/db"
	pkgredis "github.com/Cheertaboi/storefront-checkout/pkg/redis"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"

	CouponsBuiltin  = "builtin"
	CouponsPostgres = "postgres"
)

// MinSessionTTL bounds SESSION_TTL from below; the in-memory sweeper ticks
// at half the TTL.
const MinSessionTTL = time.Second

type HTTPConfig struct {
	Addr            string        `envconfig:"HTTP_ADDR" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"15s"`
}

// AppConfig is sourced from environment variables, optionally seeded from a
// .env file for local runs.
type AppConfig struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	HTTP HTTPConfig

	OTPCode        string        `envconfig:"OTP_CODE" default:"123456"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SessionBackend string        `envconfig:"SESSION_BACKEND" default:"memory"`
	CouponSource   string        `envconfig:"COUPON_SOURCE" default:"builtin"`

	Redis    pkgredis.Config
	Postgres db.PostgresConfig `envconfig:"DB"`
}

func (c AppConfig) Environment() core.Environment {
	return core.ParseEnvironment(c.Env)
}

func (c AppConfig) Validate() error {
	if _, err := checkout.NewStaticCode(c.OTPCode); err != nil {
		return fmt.Errorf("OTP_CODE: %w", err)
	}
	if c.SessionTTL < MinSessionTTL {
		return fmt.Errorf("SESSION_TTL must be at least %s, got %s", MinSessionTTL, c.SessionTTL)
	}
	switch c.SessionBackend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("SESSION_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, c.SessionBackend)
	}
	switch c.CouponSource {
	case CouponsBuiltin, CouponsPostgres:
	default:
		return fmt.Errorf("COUPON_SOURCE must be %q or %q, got %q", CouponsBuiltin, CouponsPostgres, c.CouponSource)
	}
	return nil
}

// Load reads envFile if present, then the process environment.
func Load(envFile string) (AppConfig, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load(envFile)

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("process environment config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
