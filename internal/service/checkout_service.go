package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Cheertaboi/storefront-checkout/internal/checkout"
	"github.com/Cheertaboi/storefront-checkout/internal/models"
	"github.com/Cheertaboi/storefront-checkout/internal/store"
	logx "github.com/Cheertaboi/storefront-checkout/pkg/logger"
)

// CheckoutService drives checkout wizards held in a session store. Every
// call loads the session, applies one action and saves it back.
type CheckoutService struct {
	sessions store.Store[models.CheckoutSession]
	carts    *CartService
	coupons  checkout.Coupons
	otp      checkout.Verifier
	locks    stripedLock
}

func NewCheckoutService(sessions store.Store[models.CheckoutSession], carts *CartService, coupons checkout.Coupons, otp checkout.Verifier) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		carts:    carts,
		coupons:  coupons,
		otp:      otp,
	}
}

// Open starts a fresh session over the current contents of cartID.
func (s *CheckoutService) Open(ctx context.Context, cartID string) (checkout.View, error) {
	snap, err := s.carts.Snapshot(ctx, cartID)
	if err != nil {
		return checkout.View{}, err
	}
	if len(snap.Items) == 0 {
		return checkout.View{}, ErrEmptyCart
	}

	w := checkout.New(uuid.NewString(), cartID, snap, s.coupons, s.otp)
	if err := s.sessions.Put(ctx, w.ID(), w.Record()); err != nil {
		return checkout.View{}, fmt.Errorf("store session: %w", err)
	}
	logx.Info().Str("sessionID", w.ID()).Str("cartID", cartID).Str("subtotal", snap.Subtotal.String()).Msg("checkout opened")
	return w.Snapshot(), nil
}

func (s *CheckoutService) Get(ctx context.Context, id string) (checkout.View, error) {
	w, err := s.load(ctx, id)
	if err != nil {
		return checkout.View{}, err
	}
	return w.Snapshot(), nil
}

func (s *CheckoutService) SubmitAddress(ctx context.Context, id string, a models.Address) (checkout.View, error) {
	return s.apply(ctx, id, "submit_address", func(w *checkout.Wizard) error {
		return w.SubmitAddress(a)
	})
}

func (s *CheckoutService) SubmitOTP(ctx context.Context, id, code string) (checkout.View, error) {
	return s.apply(ctx, id, "submit_otp", func(w *checkout.Wizard) error {
		return w.SubmitOTP(code)
	})
}

func (s *CheckoutService) SelectPayment(ctx context.Context, id string, m models.PaymentMethod) (checkout.View, error) {
	return s.apply(ctx, id, "select_payment", func(w *checkout.Wizard) error {
		return w.SelectPayment(m)
	})
}

func (s *CheckoutService) ApplyCoupon(ctx context.Context, id, code string) (checkout.View, error) {
	return s.apply(ctx, id, "apply_coupon", func(w *checkout.Wizard) error {
		return w.ApplyCoupon(code)
	})
}

// ConfirmPayment accepts the order. The confirmed session stays readable,
// receipt included, until it is closed or expires.
func (s *CheckoutService) ConfirmPayment(ctx context.Context, id string) (models.Receipt, checkout.View, error) {
	defer s.locks.lock(id)()

	w, err := s.load(ctx, id)
	if err != nil {
		return models.Receipt{}, checkout.View{}, err
	}
	r, err := w.ConfirmPayment()
	if err != nil {
		return models.Receipt{}, w.Snapshot(), err
	}
	if err := s.sessions.Put(ctx, id, w.Record()); err != nil {
		return models.Receipt{}, checkout.View{}, fmt.Errorf("store session: %w", err)
	}
	logx.Info().
		Str("sessionID", id).
		Str("method", string(r.PaymentMethod)).
		Str("coupon", r.CouponCode).
		Str("final", r.FinalAmount.StringFixed(2)).
		Msg("payment confirmed")
	return r, w.Snapshot(), nil
}

// Close discards the session and all progress in it.
func (s *CheckoutService) Close(ctx context.Context, id string) error {
	defer s.locks.lock(id)()

	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	logx.Debug().Str("sessionID", id).Msg("checkout closed")
	return nil
}

func (s *CheckoutService) load(ctx context.Context, id string) (*checkout.Wizard, error) {
	rec, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	w, err := checkout.Restore(rec, s.coupons, s.otp)
	if err != nil {
		logx.Error().Err(err).Str("sessionID", id).Msg("discarding corrupt checkout session")
		_ = s.sessions.Delete(ctx, id)
		return nil, ErrSessionNotFound
	}
	return w, nil
}

// apply runs fn and saves the session. Validation failures are saved too so
// the inline error shows up on the next read; any other error leaves the
// stored session untouched.
func (s *CheckoutService) apply(ctx context.Context, id, action string, fn func(*checkout.Wizard) error) (checkout.View, error) {
	defer s.locks.lock(id)()

	w, err := s.load(ctx, id)
	if err != nil {
		return checkout.View{}, err
	}

	actErr := fn(w)
	var verr *checkout.ValidationError
	switch {
	case actErr == nil:
		logx.Debug().Str("sessionID", id).Str("action", action).Str("step", string(w.Step())).Msg("checkout advanced")
	case errors.As(actErr, &verr):
		logx.Debug().Str("sessionID", id).Str("action", action).Str("field", verr.Field).Msg(verr.Message)
	default:
		return w.Snapshot(), actErr
	}

	if err := s.sessions.Put(ctx, id, w.Record()); err != nil {
		return checkout.View{}, fmt.Errorf("store session: %w", err)
	}
	return w.Snapshot(), actErr
}
