package checkout

import "errors"

var (
	ErrWrongStep            = errors.New("checkout: action not allowed at current step")
	ErrInvalidAddress       = errors.New("checkout: invalid address")
	ErrInvalidOTP           = errors.New("checkout: invalid otp")
	ErrEmptyCoupon          = errors.New("checkout: empty coupon code")
	ErrInvalidCoupon        = errors.New("checkout: invalid coupon code")
	ErrInvalidPaymentMethod = errors.New("checkout: invalid payment method")
	ErrNoPaymentMethod      = errors.New("checkout: no payment method selected")
	ErrCorruptSession       = errors.New("checkout: session record violates step invariants")
)

// Inline error keys, one per form on the checkout screen.
const (
	FieldAddress = "address"
	FieldOTP     = "otp"
	FieldPayment = "payment"
	FieldCoupon  = "coupon"
)

// ValidationError is a recoverable, user-facing input error. It unwraps to
// one of the sentinel errors above.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg, Err: err}
}
