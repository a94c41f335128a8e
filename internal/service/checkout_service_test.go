package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/storefront-checkout/internal/checkout"
	"github.com/Cheertaboi/storefront-checkout/internal/coupon"
	"github.com/Cheertaboi/storefront-checkout/internal/models"
	"github.com/Cheertaboi/storefront-checkout/internal/store"
)

var address = models.Address{
	FullName: "Jane Doe",
	Phone:    "9876543210",
	Street:   "1 Infinite Loop",
	City:     "Cupertino",
	State:    "CA",
	ZipCode:  "95014",
}

type fixture struct {
	carts    *CartService
	checkout *CheckoutService
	sessions *store.Memory[models.CheckoutSession]
}

func newFixture() fixture {
	sessions := store.NewMemory[models.CheckoutSession](time.Hour)
	carts := NewCartService(store.NewMemory[models.Cart](time.Hour))
	return fixture{
		carts:    carts,
		checkout: NewCheckoutService(sessions, carts, coupon.Default(), checkout.StaticCode(checkout.DefaultOTP)),
		sessions: sessions,
	}
}

func (f fixture) cartWith(t *testing.T, productIDs ...int) string {
	t.Helper()
	ctx := context.Background()
	c, err := f.carts.Create(ctx)
	require.NoError(t, err)
	for _, id := range productIDs {
		_, err := f.carts.AddItem(ctx, c.ID, id)
		require.NoError(t, err)
	}
	return c.ID
}

func TestCartService(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.cartWith(t, 2, 2, 9)

	snap, err := f.carts.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(999*2+449).Equal(snap.Subtotal))

	_, err = f.carts.AddItem(ctx, id, 99)
	assert.ErrorIs(t, err, ErrProductNotFound)

	c, err := f.carts.UpdateQuantity(ctx, id, 9, 0)
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)

	_, err = f.carts.RemoveItem(ctx, id, 9)
	assert.ErrorIs(t, err, ErrItemNotInCart)

	c, err = f.carts.Clear(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	_, err = f.carts.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCheckout_Open(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.checkout.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrCartNotFound)

	empty := f.cartWith(t)
	_, err = f.checkout.Open(ctx, empty)
	assert.ErrorIs(t, err, ErrEmptyCart)

	v, err := f.checkout.Open(ctx, f.cartWith(t, 1))
	require.NoError(t, err)
	assert.Equal(t, checkout.StepAddress, v.Step)
	assert.True(t, decimal.NewFromInt(2499).Equal(v.Subtotal))
	assert.Equal(t, 1, f.sessions.Len())
}

func TestCheckout_SnapshotIgnoresLaterCartChanges(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	cartID := f.cartWith(t, 5)

	v, err := f.checkout.Open(ctx, cartID)
	require.NoError(t, err)
	_, err = f.carts.AddItem(ctx, cartID, 1)
	require.NoError(t, err)

	v, err = f.checkout.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(799).Equal(v.Subtotal))
}

func TestCheckout_FullFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	v, err := f.checkout.Open(ctx, f.cartWith(t, 1)) // 2499
	require.NoError(t, err)
	id := v.ID

	v, err = f.checkout.SubmitAddress(ctx, id, address)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepOTP, v.Step)

	v, err = f.checkout.SubmitOTP(ctx, id, "111111")
	require.ErrorIs(t, err, checkout.ErrInvalidOTP)
	assert.Equal(t, checkout.StepOTP, v.Step)

	// the inline error survives a reload
	v, err = f.checkout.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Invalid OTP. Please try again.", v.Errors[checkout.FieldOTP])

	v, err = f.checkout.SubmitOTP(ctx, id, checkout.DefaultOTP)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepPayment, v.Step)
	assert.Empty(t, v.Errors)

	_, _, err = f.checkout.ConfirmPayment(ctx, id)
	require.ErrorIs(t, err, checkout.ErrNoPaymentMethod)

	v, err = f.checkout.ApplyCoupon(ctx, id, "ANKITA")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("24.99").Equal(v.FinalAmount))

	_, err = f.checkout.SelectPayment(ctx, id, models.PaymentUPI)
	require.NoError(t, err)

	r, v, err := f.checkout.ConfirmPayment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepConfirmation, v.Step)
	assert.Equal(t, 99, r.DiscountPercent)
	assert.True(t, decimal.RequireFromString("2474.01").Equal(r.DiscountAmount))
	assert.Equal(t, "Payment successful! You saved $2474.01 with your coupon. Thank you for your order!", r.Message)

	// the confirmed session survives a reload until closed
	v, err = f.checkout.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepConfirmation, v.Step)
	require.NotNil(t, v.Receipt)
	assert.Equal(t, r.Message, v.Receipt.Message)
	assert.True(t, r.FinalAmount.Equal(v.Receipt.FinalAmount))

	_, _, err = f.checkout.ConfirmPayment(ctx, id)
	assert.ErrorIs(t, err, checkout.ErrWrongStep, "an order is confirmed once")

	require.NoError(t, f.checkout.Close(ctx, id))
	_, err = f.checkout.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCheckout_WrongStepIsNotSaved(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	v, err := f.checkout.Open(ctx, f.cartWith(t, 3))
	require.NoError(t, err)

	_, err = f.checkout.ApplyCoupon(ctx, v.ID, "FLASH50")
	require.ErrorIs(t, err, checkout.ErrWrongStep)

	v, err = f.checkout.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepAddress, v.Step)
	assert.Empty(t, v.Errors)
}

func TestCheckout_Close(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	v, err := f.checkout.Open(ctx, f.cartWith(t, 3))
	require.NoError(t, err)

	require.NoError(t, f.checkout.Close(ctx, v.ID))
	assert.ErrorIs(t, f.checkout.Close(ctx, v.ID), ErrSessionNotFound)
	_, err = f.checkout.SubmitAddress(ctx, v.ID, address)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCheckout_CorruptSessionDiscarded(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	require.NoError(t, f.sessions.Put(ctx, "bad", models.CheckoutSession{ID: "bad", Step: "otp"}))

	_, err := f.checkout.Get(ctx, "bad")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, f.sessions.Len())
}

func TestCouponService_Quote(t *testing.T) {
	s := NewCouponService(coupon.Default())

	q := s.Quote(models.QuoteRequest{CouponCode: "flash50", OrderTotal: decimal.RequireFromString("999.00")})
	assert.True(t, q.IsValid)
	assert.Equal(t, "FLASH50", q.CouponCode)
	assert.Equal(t, 50, q.DiscountPercent)
	assert.True(t, decimal.RequireFromString("499.50").Equal(q.Discount))
	assert.True(t, decimal.RequireFromString("499.50").Equal(q.FinalAmount))

	q = s.Quote(models.QuoteRequest{CouponCode: "BOGUS", OrderTotal: decimal.NewFromInt(799)})
	assert.False(t, q.IsValid)
	assert.True(t, decimal.NewFromInt(799).Equal(q.FinalAmount))

	q = s.Quote(models.QuoteRequest{CouponCode: "  ", OrderTotal: decimal.NewFromInt(5)})
	assert.False(t, q.IsValid)
	assert.Equal(t, "Please enter a coupon code", q.Message)

	assert.Len(t, s.List("popular"), 6)
	assert.Len(t, s.List(""), 24)
	assert.Len(t, s.List("all"), 52)
}
