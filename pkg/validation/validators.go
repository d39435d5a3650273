package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Enum is implemented by closed enumerations that know their own members.
type Enum interface {
	IsValid() bool
}

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("strong_password", StrongPassword)
	_ = v.RegisterValidation("valid_enum", ValidEnum)
}

// StrongPassword requires at least one lowercase letter, one uppercase letter,
// one digit and one character that is none of those.
func StrongPassword(fl validator.FieldLevel) bool {
	var lower, upper, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}
	return lower && upper && digit && special
}

// ValidEnum rejects values outside the field type's declared members.
func ValidEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}
	e, ok := field.Interface().(Enum)
	if !ok {
		return false
	}
	return e.IsValid()
}
