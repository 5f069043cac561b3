package dto

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const maxCurrencyTextRunes = 32

// RegisterValidators adds the custom binding rules to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currencytext", validateCurrencyText)
}

// validateCurrencyText accepts codes, names and symbols: no digits or control
// characters and at most 32 runes. Empty values pass so required rules decide.
func validateCurrencyText(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true
	}
	if utf8.RuneCountInString(s) > maxCurrencyTextRunes {
		return false
	}
	for _, r := range s {
		if unicode.IsDigit(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
