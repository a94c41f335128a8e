package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/storefront-checkout/internal/models"
)

// View is the read model handed to the presentation layer.
type View struct {
	ID              string               `json:"id"`
	CartID          string               `json:"cart_id"`
	Step            Step                 `json:"step"`
	StepNumber      int                  `json:"step_number"`
	StepCount       int                  `json:"step_count"`
	Address         *models.Address      `json:"address,omitempty"`
	OTPVerified     bool                 `json:"otp_verified"`
	PaymentMethod   models.PaymentMethod `json:"payment_method,omitempty"`
	CouponCode      string               `json:"coupon_code"`
	DiscountApplied bool                 `json:"discount_applied"`
	Items           []models.CartItem    `json:"items"`
	Subtotal        decimal.Decimal      `json:"subtotal"`
	DiscountPercent int                  `json:"discount_percent"`
	DiscountAmount  decimal.Decimal      `json:"discount_amount"`
	FinalAmount     decimal.Decimal      `json:"final_amount"`
	CanPay          bool                 `json:"can_pay"`
	Errors          map[string]string    `json:"errors,omitempty"`
	Receipt         *models.Receipt      `json:"receipt,omitempty"`
}

func (w *Wizard) Snapshot() View {
	v := View{
		ID:        w.id,
		CartID:    w.cartID,
		Step:      w.st.step(),
		StepCount: 3,
		Items:     w.cart.Items,
		CanPay:    w.CanPay(),
		Errors:    copyErrors(w.errs),
	}
	v.StepNumber = v.Step.Number()

	var coupon string
	switch s := w.st.(type) {
	case otpStep:
		v.Address = addressPtr(s.address)
	case paymentStep:
		v.Address = addressPtr(s.address)
		v.OTPVerified = true
		v.PaymentMethod = s.method
		coupon = s.coupon
	case confirmedStep:
		v.Address = addressPtr(s.address)
		v.OTPVerified = true
		v.PaymentMethod = s.method
		coupon = s.coupon
		r := s.receipt
		v.Receipt = &r
	}
	v.CouponCode = coupon
	v.DiscountApplied = coupon != ""

	t := w.totals(coupon)
	v.Subtotal = t.subtotal
	v.DiscountPercent = t.percent
	v.DiscountAmount = t.discount
	v.FinalAmount = t.final
	return v
}

func addressPtr(a models.Address) *models.Address {
	return &a
}

func copyErrors(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
