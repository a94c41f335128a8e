package checkout

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Cheertaboi/storefront-checkout/internal/models"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ValidatePhone reports whether phone is exactly ten digits.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("phone", validatePhoneField); err != nil {
		panic(err)
	}
	return v
}

func validatePhoneField(fl validator.FieldLevel) bool {
	return ValidatePhone(fl.Field().String())
}

var fieldLabels = map[string]string{
	"full_name": "Full name",
	"phone":     "Phone number",
	"street":    "Street address",
	"city":      "City",
	"state":     "State",
	"zip_code":  "ZIP code",
}

func validateAddress(a models.Address) *ValidationError {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return invalid(FieldAddress, ErrInvalidAddress, "Please check your address details.")
	}
	fe := verrs[0]
	label := fieldLabels[fe.Field()]
	if fe.Tag() == "phone" {
		return invalid(FieldAddress, ErrInvalidAddress, "Please enter a valid 10-digit phone number.")
	}
	return invalid(FieldAddress, ErrInvalidAddress, label+" is required.")
}
