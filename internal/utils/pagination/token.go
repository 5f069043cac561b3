package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeMultiFieldToken creates a token with any number of string fields.
// The token is URL safe so it can travel in a query string.
func EncodeMultiFieldToken(fields ...string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

// EncodeRateCursor creates a token that resumes a rate listing for base after symbol.
func EncodeRateCursor(base, symbol string) string {
	return EncodeMultiFieldToken(base, symbol)
}

// DecodeRateCursor parses a token created by EncodeRateCursor.
func DecodeRateCursor(token string) (base, symbol string, err error) {
	fields, err := DecodeMultiFieldToken(token)
	if err != nil {
		return "", "", err
	}
	if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
		return "", "", fmt.Errorf("invalid pagination token format (split)")
	}
	return fields[0], fields[1], nil
}
