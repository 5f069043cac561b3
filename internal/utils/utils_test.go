package utils_test

import (
	"testing"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"100", "100"},
		{" 1 000,50 ", "1000.5"},
		{"1\u00a0000", "1000"},
		{"1 000", "1000"},
		{"1_000.25", "1000.25"},
		{"0.001", "0.001"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := utils.ParseAmount(tt.raw)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseAmount_Rejects(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "1.2.3", "0", "-5", "0,000", "1e50000000", "1e-50000000", "1e18", "0,00000000000000000000000000001"} {
		t.Run(raw, func(t *testing.T) {
			_, err := utils.ParseAmount(raw)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	amount := decimal.RequireFromString("1234567.8915")

	assert.Equal(t, "1,234,567.892", utils.FormatAmount(amount, utils.LangEnglish))
	assert.Equal(t, "1 234 567,892", utils.FormatAmount(amount, utils.LangRussian))
	assert.Equal(t, "12.000", utils.FormatAmount(decimal.NewFromInt(12), utils.LangEnglish))
	assert.Equal(t, "-1,000.000", utils.FormatAmount(decimal.NewFromInt(-1000), utils.LangEnglish))
	assert.Equal(t, "100.000", utils.FormatAmount(decimal.NewFromInt(100), utils.LangEnglish))
}

func TestFormatRate(t *testing.T) {
	rate := decimal.RequireFromString("0.0111111111")

	assert.Equal(t, "0.011111", utils.FormatRate(rate, utils.LangEnglish))
	assert.Equal(t, "0,011111", utils.FormatRate(rate, utils.LangRussian))
	assert.Equal(t, "1.000001", utils.FormatRate(decimal.RequireFromString("1.0000005"), utils.LangEnglish))
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", utils.FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", utils.FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
}
