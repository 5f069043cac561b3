package currency

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/SscSPs/currency_converter/internal/apperrors"
)

var (
	dashes     = regexp.MustCompile(`[–—]+`)
	spaces     = regexp.MustCompile(`\s+`)
	separators = regexp.MustCompile(`(?i)\s*[-/\\→]+\s*|\s+(?:to|в)\s+`)
)

// ErrMissingPair is returned when the input does not contain two currencies.
var ErrMissingPair = fmt.Errorf("%w: missing currency pair, e.g. \"RUB - USD\" or \"RUB USD\"", apperrors.ErrParse)

// ParsePair splits strings like "RUB - USD", "usd/eur", "usd to eur", "usd в eur"
// or "usd eur" into two canonical codes.
func ParsePair(pair string) (string, string, error) {
	s := strings.TrimSpace(pair)
	if s == "" {
		return "", "", ErrMissingPair
	}
	s = dashes.ReplaceAllString(s, "-")
	s = spaces.ReplaceAllString(s, " ")

	left, right, ok := splitOnce(s)
	if !ok {
		return "", "", ErrMissingPair
	}

	a, err := Normalize(left)
	if err != nil {
		return "", "", unrecognized(left, err)
	}
	b, err := Normalize(right)
	if err != nil {
		return "", "", unrecognized(right, err)
	}
	return a, b, nil
}

// splitOnce splits on the first separator match, falling back to a single
// space when the string is exactly two tokens.
func splitOnce(s string) (string, string, bool) {
	var left, right string
	if loc := separators.FindStringIndex(s); loc != nil {
		left, right = s[:loc[0]], s[loc[1]:]
	} else {
		toks := strings.Split(s, " ")
		if len(toks) != 2 {
			return "", "", false
		}
		left, right = toks[0], toks[1]
	}
	left, right = strings.TrimSpace(left), strings.TrimSpace(right)
	if left == "" || right == "" {
		return "", "", false
	}
	return left, right, true
}

func unrecognized(text string, cause error) error {
	if !errors.Is(cause, apperrors.ErrRecognition) {
		return cause
	}
	return fmt.Errorf("%w: unrecognized currency %q", apperrors.ErrParse, text)
}
