// Package checkout implements the checkout wizard: a linear state machine
// that moves a session from address capture through OTP verification to
// payment selection with an optional coupon, and finally confirmation.
//
// Each step is a distinct type carrying exactly the data that step has
// collected, so a session in the otp step always has an address and a
// session in the payment step has always passed verification.
package checkout

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/storefront-checkout/internal/coupon"
	"github.com/Cheertaboi/storefront-checkout/internal/models"
)

type Step string

const (
	StepAddress      Step = "address"
	StepOTP          Step = "otp"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// Number is the position shown as "Step n of 3". Confirmation shares the
// payment screen.
func (s Step) Number() int {
	switch s {
	case StepAddress:
		return 1
	case StepOTP:
		return 2
	default:
		return 3
	}
}

// Coupons is the subset of the coupon resolver the wizard needs.
type Coupons interface {
	IsValid(code string) bool
	Percent(code string) int
	DiscountAmount(subtotal decimal.Decimal, code string) decimal.Decimal
}

type state interface {
	step() Step
}

type addressStep struct{}

type otpStep struct {
	address models.Address
}

type paymentStep struct {
	address models.Address
	method  models.PaymentMethod
	coupon  string
}

type confirmedStep struct {
	paymentStep
	receipt models.Receipt
}

func (addressStep) step() Step   { return StepAddress }
func (otpStep) step() Step       { return StepOTP }
func (paymentStep) step() Step   { return StepPayment }
func (confirmedStep) step() Step { return StepConfirmation }

// Wizard is not safe for concurrent use; callers serialize access per session.
type Wizard struct {
	id      string
	cartID  string
	cart    models.CartSnapshot
	coupons Coupons
	otp     Verifier
	st      state
	errs    map[string]string
}

// New starts a wizard at the address step over a snapshot of the cart.
func New(id, cartID string, cart models.CartSnapshot, coupons Coupons, otp Verifier) *Wizard {
	return &Wizard{
		id:      id,
		cartID:  cartID,
		cart:    cart,
		coupons: coupons,
		otp:     otp,
		st:      addressStep{},
	}
}

func (w *Wizard) ID() string { return w.id }

func (w *Wizard) Step() Step { return w.st.step() }

// SubmitAddress stores the address and advances to OTP verification.
func (w *Wizard) SubmitAddress(a models.Address) error {
	if _, ok := w.st.(addressStep); !ok {
		return w.wrongStep("submit address")
	}
	if err := validateAddress(a); err != nil {
		return w.fail(err)
	}
	w.succeed(otpStep{address: a})
	return nil
}

// SubmitOTP advances to payment when the verifier accepts code.
func (w *Wizard) SubmitOTP(code string) error {
	s, ok := w.st.(otpStep)
	if !ok {
		return w.wrongStep("submit otp")
	}
	if !w.otp.Verify(s.address.Phone, code) {
		return w.fail(invalid(FieldOTP, ErrInvalidOTP, "Invalid OTP. Please try again."))
	}
	w.succeed(paymentStep{address: s.address})
	return nil
}

// SelectPayment records the payment method without advancing.
func (w *Wizard) SelectPayment(m models.PaymentMethod) error {
	s, ok := w.st.(paymentStep)
	if !ok {
		return w.wrongStep("select payment")
	}
	if !m.Valid() {
		return w.fail(invalid(FieldPayment, ErrInvalidPaymentMethod, "Please select a valid payment method."))
	}
	s.method = m
	w.succeed(s)
	return nil
}

// ApplyCoupon records code when it resolves. The code is looked up exactly
// as given (case-insensitively); blank input is rejected separately.
func (w *Wizard) ApplyCoupon(code string) error {
	s, ok := w.st.(paymentStep)
	if !ok {
		return w.wrongStep("apply coupon")
	}
	if strings.TrimSpace(code) == "" {
		return w.fail(invalid(FieldCoupon, ErrEmptyCoupon, "Please enter a coupon code"))
	}
	if !w.coupons.IsValid(code) {
		return w.fail(invalid(FieldCoupon, ErrInvalidCoupon, "Invalid coupon code. Please check and try again."))
	}
	s.coupon = coupon.Normalize(code)
	w.succeed(s)
	return nil
}

// CanPay reports whether ConfirmPayment would take effect.
func (w *Wizard) CanPay() bool {
	s, ok := w.st.(paymentStep)
	return ok && s.method != ""
}

// ConfirmPayment accepts the order. It has no effect unless a payment method
// has been selected. No payment is authorized anywhere.
func (w *Wizard) ConfirmPayment() (models.Receipt, error) {
	s, ok := w.st.(paymentStep)
	if !ok {
		return models.Receipt{}, w.wrongStep("confirm payment")
	}
	if s.method == "" {
		return models.Receipt{}, ErrNoPaymentMethod
	}
	r := w.receipt(s)
	w.succeed(confirmedStep{paymentStep: s, receipt: r})
	return r, nil
}

func (w *Wizard) receipt(s paymentStep) models.Receipt {
	t := w.totals(s.coupon)
	return models.Receipt{
		SessionID:       w.id,
		PaymentMethod:   s.method,
		CouponCode:      s.coupon,
		Subtotal:        t.subtotal,
		DiscountPercent: t.percent,
		DiscountAmount:  t.discount,
		FinalAmount:     t.final,
		Message: fmt.Sprintf("Payment successful! You saved $%s with your coupon. Thank you for your order!",
			t.discount.StringFixed(2)),
	}
}

type totals struct {
	subtotal decimal.Decimal
	percent  int
	discount decimal.Decimal
	final    decimal.Decimal
}

func (w *Wizard) totals(coupon string) totals {
	t := totals{subtotal: w.cart.Subtotal, discount: decimal.Zero}
	if coupon != "" {
		t.percent = w.coupons.Percent(coupon)
		t.discount = w.coupons.DiscountAmount(t.subtotal, coupon)
	}
	t.final = t.subtotal.Sub(t.discount)
	return t
}

func (w *Wizard) wrongStep(action string) error {
	return fmt.Errorf("%w: cannot %s in %s step", ErrWrongStep, action, w.st.step())
}

func (w *Wizard) fail(err *ValidationError) error {
	if w.errs == nil {
		w.errs = make(map[string]string)
	}
	w.errs[err.Field] = err.Message
	return err
}

func (w *Wizard) succeed(next state) {
	w.st = next
	w.errs = nil
}
