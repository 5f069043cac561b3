package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertRequestValidation(t *testing.T) {
	require.NoError(t, dto.RegisterValidators())

	tests := []struct {
		name  string
		req   dto.ConvertRequest
		valid bool
	}{
		{"pair only", dto.ConvertRequest{Pair: "usd to eur", Amount: "10"}, true},
		{"from and to", dto.ConvertRequest{From: "доллар", To: "€", Amount: "10"}, true},
		{"pair wins over partial codes", dto.ConvertRequest{Pair: "usd eur", From: "usd", Amount: "1"}, true},
		{"missing quote", dto.ConvertRequest{From: "usd", Amount: "10"}, false},
		{"missing amount", dto.ConvertRequest{Pair: "usd eur"}, false},
		{"digits in code", dto.ConvertRequest{From: "US1", To: "EUR", Amount: "1"}, false},
		{"name too long", dto.ConvertRequest{From: "an extremely long currency name that goes on", To: "EUR", Amount: "1"}, false},
		{"unknown language", dto.ConvertRequest{Pair: "usd eur", Amount: "1", Lang: "de"}, false},
		{"russian", dto.ConvertRequest{Pair: "usd eur", Amount: "1", Lang: "ru"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestToConversionResponse(t *testing.T) {
	fetched := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	res := &domain.ConversionResult{
		Base:      "USD",
		Quote:     "RUB",
		Amount:    decimal.RequireFromString("1500"),
		Rate:      decimal.RequireFromString("92.1234567"),
		Result:    decimal.RequireFromString("138185.19"),
		FetchedAt: fetched,
		Source:    "ECB+CoinGecko",
	}

	eng := dto.ToConversionResponse(res, "")
	assert.Equal(t, "1,500.000", eng.AmountDisplay)
	assert.Equal(t, "92.123457", eng.RateDisplay)
	assert.Equal(t, "138,185.190", eng.ResultDisplay)
	assert.Equal(t, fetched, eng.FetchedAt)

	ru := dto.ToConversionResponse(res, "ru")
	assert.Equal(t, "1 500,000", ru.AmountDisplay)
	assert.Equal(t, "92,123457", ru.RateDisplay)
	assert.Equal(t, "138 185,190", ru.ResultDisplay)
}
