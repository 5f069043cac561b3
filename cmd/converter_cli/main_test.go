package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConverter struct {
	gotPair   string
	gotAmount decimal.Decimal
	res       *domain.ConversionResult
	err       error
}

func (s *stubConverter) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (*domain.ConversionResult, error) {
	return nil, errors.New("not used")
}

func (s *stubConverter) ConvertPair(ctx context.Context, pair string, amount decimal.Decimal) (*domain.ConversionResult, error) {
	s.gotPair, s.gotAmount = pair, amount
	return s.res, s.err
}

var fetchedAt = time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC)

func rubToUsd() *domain.ConversionResult {
	return &domain.ConversionResult{
		Base:      "RUB",
		Quote:     "USD",
		Amount:    decimal.RequireFromString("1500.5"),
		Rate:      decimal.RequireFromString("0.0111111111"),
		Result:    decimal.RequireFromString("16.67"),
		FetchedAt: fetchedAt,
		Source:    "ECB+CoinGecko",
	}
}

func TestRun_English(t *testing.T) {
	conv := &stubConverter{res: rubToUsd()}
	var out bytes.Buffer

	err := run(context.Background(), strings.NewReader("ENG\nRUB - USD\nabc\n0\n1 500,5\n"), &out, conv)

	require.NoError(t, err)
	assert.Equal(t, "RUB - USD", conv.gotPair)
	assert.True(t, decimal.RequireFromString("1500.5").Equal(conv.gotAmount))
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid amount, try again."))
	assert.Contains(t, out.String(), "1,500.500 RUB = 16.670 USD\n")
	assert.Contains(t, out.String(), "Rate: 0.011111 | Updated: "+fetchedAt.Local().Format(updatedLayout)+" | Source: ECB+CoinGecko\n")
}

func TestRun_Russian(t *testing.T) {
	conv := &stubConverter{res: rubToUsd()}
	var out bytes.Buffer

	err := run(context.Background(), strings.NewReader("de\nru\nрубль в доллар\n1500.5\n"), &out, conv)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Please type 'ru' or 'eng'")
	assert.Contains(t, out.String(), "Введите сумму: ")
	assert.Contains(t, out.String(), "1 500,500 RUB = 16,670 USD\n")
	assert.Contains(t, out.String(), "Курс: 0,011111 | Обновлено: ")
	assert.Contains(t, out.String(), "| Источник: ECB+CoinGecko")
}

func TestRun_ConversionErrorIsPrinted(t *testing.T) {
	conv := &stubConverter{err: &apperrors.RateUnavailableError{Symbols: []string{"XYZ"}}}
	var out bytes.Buffer

	err := run(context.Background(), strings.NewReader("eng\nusd xyz\n5\n"), &out, conv)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Error: rate(s) XYZ unavailable from providers")
}

func TestRun_InputEndsEarly(t *testing.T) {
	err := run(context.Background(), strings.NewReader("eng\n"), io.Discard, &stubConverter{})

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
