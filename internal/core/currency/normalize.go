// Package currency turns free-form user input into canonical currency codes.
package currency

import (
	"fmt"
	"strings"

	"github.com/SscSPs/currency_converter/internal/apperrors"
)

// Normalize maps a currency name, symbol or code to its canonical uppercase code.
//
// Input of exactly three ASCII letters is taken as an ISO code and uppercased,
// even when the alias table also lists it ("yen" gives YEN). Anything else
// (English, Russian, symbols like "$" or "₽") resolves through the alias table.
func Normalize(nameOrCode string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(nameOrCode))
	if s == "" {
		return "", fmt.Errorf("%w: empty currency name", apperrors.ErrRecognition)
	}
	if isBareCode(s) {
		return strings.ToUpper(s), nil
	}
	if code, ok := aliases[s]; ok {
		return code, nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrRecognition, strings.TrimSpace(nameOrCode))
}

// KnownCodes returns every canonical code reachable through the alias table.
func KnownCodes() []string {
	seen := make(map[string]struct{}, len(aliases))
	out := make([]string, 0, len(aliases))
	for _, code := range aliases {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

func isBareCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
