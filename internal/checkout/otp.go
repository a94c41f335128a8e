package checkout

import (
	"fmt"
	"regexp"
)

// DefaultOTP is the placeholder code accepted when no other is configured.
const DefaultOTP = "123456"

var otpPattern = regexp.MustCompile(`^\d{6}$`)

// Verifier decides whether code verifies phone.
type Verifier interface {
	Verify(phone, code string) bool
}

// StaticCode accepts one fixed code for every phone number. There is no
// per-session generation or expiry.
type StaticCode string

func NewStaticCode(code string) (StaticCode, error) {
	if !otpPattern.MatchString(code) {
		return "", fmt.Errorf("otp code must be 6 digits, got %q", code)
	}
	return StaticCode(code), nil
}

func (s StaticCode) Verify(_, code string) bool {
	return code == string(s)
}
