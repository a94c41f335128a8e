package models

import "github.com/shopspring/decimal"

type Address struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone" validate:"required,phone"`
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	ZipCode  string `json:"zip_code" validate:"required"`
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentUPI
}

// CheckoutSession is the flat storage form of a checkout wizard.
type CheckoutSession struct {
	ID              string            `json:"id"`
	CartID          string            `json:"cart_id"`
	Step            string            `json:"step"`
	Address         *Address          `json:"address,omitempty"`
	OTPVerified     bool              `json:"otp_verified"`
	PaymentMethod   PaymentMethod     `json:"payment_method,omitempty"`
	CouponCode      string            `json:"coupon_code"`
	DiscountApplied bool              `json:"discount_applied"`
	Cart            CartSnapshot      `json:"cart"`
	Errors          map[string]string `json:"errors,omitempty"`
}

type Receipt struct {
	SessionID       string          `json:"session_id"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent int             `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	FinalAmount     decimal.Decimal `json:"final_amount"`
	Message         string          `json:"message"`
}
