// internal/utils/validator.go
package utils

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("strong_password", validateStrongPassword)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// passwordSymbols is the fixed set of accepted special characters.
const passwordSymbols = "@$!%*?&"

// validateStrongPassword enforces: minimum length 8, at least one uppercase
// letter, one digit, one symbol from passwordSymbols, and no characters
// outside letters, digits and that symbol set.
func validateStrongPassword(fl validator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasDigit, hasSymbol bool

	for _, char := range password {
		switch {
		case unicode.IsUpper(char) && char <= unicode.MaxASCII:
			hasUpper = true
		case unicode.IsLower(char) && char <= unicode.MaxASCII:
			// allowed, no class requirement
		case char >= '0' && char <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, char):
			hasSymbol = true
		default:
			return false
		}
	}

	return hasUpper && hasDigit && hasSymbol
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "strong_password":
		return "Password must contain at least 8 characters with an uppercase letter, a digit, and a symbol from " + passwordSymbols
	default:
		return e.Field() + " is invalid"
	}
}
