package validators

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to echo's Validator interface and
// renders failures as a field-keyed 400 payload.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the shared request validator with the custom
// password rule registered.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterValidation("password", passwordRule)
	return &Validator{validate: v}
}

// Validate implements echo.Validator
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = messageFor(fe)
		}
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"errors": fields})
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

// passwordRule enforces the account password policy: at least 8 characters
// with an uppercase letter, a lowercase letter, a digit, and a special
// character.
func passwordRule(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		}
	}
	return upper && lower && digit && special
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "password":
		return "must be at least 8 characters and include an uppercase letter, a lowercase letter, a digit, and a special character (@$!%*?&)"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "url":
		return "must be a valid URL"
	default:
		return "invalid value"
	}
}
