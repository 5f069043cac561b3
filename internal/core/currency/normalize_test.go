package currency_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Aliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"usd", "USD"},
		{"  Dollar ", "USD"},
		{"US Dollar", "USD"},
		{"$", "USD"},
		{"€", "EUR"},
		{"₽", "RUB"},
		{"руб", "RUB"},
		{"Рубль", "RUB"},
		{"фунт стерлингов", "GBP"},
		{"йена", "JPY"},
		{"сом", "KGS"},
		{"bitcoin", "BTC"},
		{"Биткоин", "BTC"},
		{"usdt", "USDT"},
		{"usd coin", "USDC"},
		{"the open network", "TON"},
		{"MATIC", "MATIC"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := currency.Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_UnlistedThreeLetterCodesPassThrough(t *testing.T) {
	for _, in := range []string{"xyz", "ABC", "qAr", " vnd "} {
		got, err := currency.Normalize(in)
		require.NoError(t, err, in)
		assert.Len(t, got, 3)
		assert.Equal(t, strings.ToUpper(strings.TrimSpace(in)), got)
	}
}

func TestNormalize_ThreeLettersWinOverAliases(t *testing.T) {
	tests := map[string]string{
		"yen": "YEN",
		"krs": "KRS",
		"won": "WON",
		"som": "SOM",
		"rmb": "RMB",
		"Usd": "USD",
	}
	for in, want := range tests {
		got, err := currency.Normalize(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNormalize_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", "dollars", "us", "shib", "x1z", "абв", "eu ro"} {
		_, err := currency.Normalize(in)
		assert.ErrorIs(t, err, apperrors.ErrRecognition, in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"usd", "euro", "₽", "tether", "krs", "xyz", "dogecoin", "сомони"}
	for _, in := range inputs {
		first, err := currency.Normalize(in)
		if err != nil {
			continue
		}
		second, err := currency.Normalize(first)
		require.NoError(t, err, in)
		assert.Equal(t, first, second, in)
	}
}

func TestKnownCodes_ResolveToThemselves(t *testing.T) {
	codes := currency.KnownCodes()
	require.NotEmpty(t, codes)
	for _, code := range codes {
		got, err := currency.Normalize(code)
		require.NoError(t, err, code)
		assert.Equal(t, code, got)
	}
}
