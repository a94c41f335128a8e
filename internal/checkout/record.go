package checkout

import (
	"fmt"

	"github.com/Cheertaboi/storefront-checkout/internal/models"
)

// Record flattens the wizard into its storage form.
func (w *Wizard) Record() models.CheckoutSession {
	rec := models.CheckoutSession{
		ID:     w.id,
		CartID: w.cartID,
		Step:   string(w.st.step()),
		Cart:   w.cart,
		Errors: copyErrors(w.errs),
	}
	switch s := w.st.(type) {
	case otpStep:
		rec.Address = addressPtr(s.address)
	case paymentStep:
		flattenPayment(&rec, s)
	case confirmedStep:
		flattenPayment(&rec, s.paymentStep)
	}
	return rec
}

func flattenPayment(rec *models.CheckoutSession, s paymentStep) {
	rec.Address = addressPtr(s.address)
	rec.OTPVerified = true
	rec.PaymentMethod = s.method
	rec.CouponCode = s.coupon
	rec.DiscountApplied = s.coupon != ""
}

// Restore rebuilds a wizard from its storage form, rejecting records whose
// fields contradict their step.
func Restore(rec models.CheckoutSession, coupons Coupons, otp Verifier) (*Wizard, error) {
	w := New(rec.ID, rec.CartID, rec.Cart, coupons, otp)
	w.errs = copyErrors(rec.Errors)

	corrupt := func(reason string) error {
		return fmt.Errorf("%w: %s step %s", ErrCorruptSession, rec.Step, reason)
	}

	switch Step(rec.Step) {
	case StepAddress:
		return w, nil
	case StepOTP:
		if rec.Address == nil {
			return nil, corrupt("without address")
		}
		w.st = otpStep{address: *rec.Address}
		return w, nil
	case StepPayment, StepConfirmation:
	default:
		return nil, corrupt("unknown")
	}

	if rec.Address == nil {
		return nil, corrupt("without address")
	}
	if !rec.OTPVerified {
		return nil, corrupt("without otp verification")
	}
	if rec.PaymentMethod != "" && !rec.PaymentMethod.Valid() {
		return nil, corrupt("with unknown payment method")
	}
	if rec.DiscountApplied != (rec.CouponCode != "") {
		return nil, corrupt("with inconsistent coupon flag")
	}
	if rec.CouponCode != "" && !coupons.IsValid(rec.CouponCode) {
		return nil, corrupt("with unknown coupon")
	}
	ps := paymentStep{address: *rec.Address, method: rec.PaymentMethod, coupon: rec.CouponCode}

	if Step(rec.Step) == StepPayment {
		w.st = ps
		return w, nil
	}
	if ps.method == "" {
		return nil, corrupt("without payment method")
	}
	w.st = confirmedStep{paymentStep: ps, receipt: w.receipt(ps)}
	return w, nil
}
