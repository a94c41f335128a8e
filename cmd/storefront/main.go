package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Cheertaboi/storefront-checkout/internal/api"
	"github.com/Cheertaboi/storefront-checkout/internal/checkout"
	"github.com/Cheertaboi/storefront-checkout/internal/config"
	"github.com/Cheertaboi/storefront-checkout/internal/coupon"
	"github.com/Cheertaboi/storefront-checkout/internal/models"
	"github.com/Cheertaboi/storefront-checkout/internal/repository"
	"github.com/Cheertaboi/storefront-checkout/internal/service"
	"github.com/Cheertaboi/storefront-checkout/internal/store"
	"github.com/Cheertaboi/storefront-checkout/pkg/db"
	logx "github.com/Cheertaboi/storefront-checkout/pkg/logger"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logx.Fatal().Err(err).Msg("load config")
	}
	logx.Init(logx.LoggerOpts{Environment: cfg.Environment()})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resolver, err := loadCoupons(ctx, cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("load coupons")
	}
	logx.Info().Str("source", cfg.CouponSource).Int("coupons", resolver.Len()).Msg("coupon table ready")

	carts, sessions, cleanup, err := newStores(ctx, cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("init session store")
	}
	defer cleanup()

	otp, err := checkout.NewStaticCode(cfg.OTPCode)
	if err != nil {
		logx.Fatal().Err(err).Msg("init otp verifier")
	}
	cartSvc := service.NewCartService(carts)

	handler := api.NewRouter(api.Services{
		Carts:    cartSvc,
		Checkout: service.NewCheckoutService(sessions, cartSvc, resolver, otp),
		Coupons:  service.NewCouponService(resolver),
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logx.Error().Err(err).Msg("http server shutdown")
		}
		close(idleConnsClosed)
	}()

	logx.Info().Str("addr", cfg.HTTP.Addr).Str("sessions", cfg.SessionBackend).Msg("starting storefront")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logx.Fatal().Err(err).Msg("listen")
	}

	<-idleConnsClosed
	logx.Info().Msg("server stopped")
}

// loadCoupons builds the immutable coupon table once at startup.
func loadCoupons(ctx context.Context, cfg config.AppConfig) (*coupon.Resolver, error) {
	if cfg.CouponSource != config.CouponsPostgres {
		return coupon.Default(), nil
	}
	conn, err := db.NewPostgresConnection(ctx, cfg.Postgres)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := repository.NewCouponRepo(conn).ListCoupons(ctx)
	if err != nil {
		return nil, err
	}
	return coupon.NewResolver(rows)
}

func newStores(ctx context.Context, cfg config.AppConfig) (store.Store[models.Cart], store.Store[models.CheckoutSession], func(), error) {
	if cfg.SessionBackend != config.BackendRedis {
		carts := store.NewMemory[models.Cart](cfg.SessionTTL)
		sessions := store.NewMemory[models.CheckoutSession](cfg.SessionTTL)
		stopSweep := sweep(ctx, cfg.SessionTTL, carts, sessions)
		return carts, sessions, stopSweep, nil
	}

	rdb, err := cfg.Redis.New()
	if err != nil {
		return nil, nil, nil, err
	}
	carts := store.NewRedis[models.Cart](rdb, "storefront:cart", cfg.SessionTTL)
	sessions := store.NewRedis[models.CheckoutSession](rdb, "storefront:checkout", cfg.SessionTTL)
	return carts, sessions, func() { rdb.Close() }, nil
}

type sweeper interface {
	Sweep() int
}

// sweep periodically drops expired in-memory entries.
func sweep(ctx context.Context, ttl time.Duration, stores ...sweeper) func() {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		t := time.NewTicker(ttl / 2)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				n := 0
				for _, s := range stores {
					n += s.Sweep()
				}
				if n > 0 {
					logx.Debug().Int("expired", n).Msg("swept expired sessions")
				}
			}
		}
	}()
	return cancel
}
