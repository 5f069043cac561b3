package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRateCursor(t *testing.T) {
	token := EncodeRateCursor("USD", "EUR")
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.NotContains(t, token, "=", "Token should be unpadded")

	base, symbol, err := DecodeRateCursor(token)
	require.NoError(t, err)
	assert.Equal(t, "USD", base)
	assert.Equal(t, "EUR", symbol)
}

func TestDecodeRateCursorError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeRateCursor("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// Single field
	_, _, err = DecodeRateCursor(EncodeMultiFieldToken("USD"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Empty symbol
	_, _, err = DecodeRateCursor(EncodeMultiFieldToken("USD", ""))
	assert.Error(t, err)
}

func TestMultiFieldToken(t *testing.T) {
	fields := []string{"USD", "BTC", "extra"}
	decoded, err := DecodeMultiFieldToken(EncodeMultiFieldToken(fields...))
	require.NoError(t, err)
	assert.Equal(t, fields, decoded)
}
