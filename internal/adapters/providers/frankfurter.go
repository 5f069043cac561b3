package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsproviders "github.com/SscSPs/currency_converter/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// FrankfurterURL is the public Frankfurter API root.
const FrankfurterURL = "https://api.frankfurter.app"

const frankfurterName = "Frankfurter(ECB)"

// FrankfurterProvider queries Frankfurter for rates relative to any base it supports.
type FrankfurterProvider struct {
	url    string
	client *http.Client
}

var (
	_ portsproviders.RateProvider     = (*FrankfurterProvider)(nil)
	_ portsproviders.BaseRateProvider = (*FrankfurterProvider)(nil)
)

// NewFrankfurterProvider creates a Frankfurter provider. An empty url uses FrankfurterURL.
func NewFrankfurterProvider(url string, client *http.Client) *FrankfurterProvider {
	if url == "" {
		url = FrankfurterURL
	}
	if client == nil {
		client = NewHTTPClient(DefaultTimeout)
	}
	return &FrankfurterProvider{url: strings.TrimRight(url, "/"), client: client}
}

func (p *FrankfurterProvider) Name() string { return frankfurterName }

// FetchRates returns units of each currency per 1 USD.
func (p *FrankfurterProvider) FetchRates(ctx context.Context) (domain.Rates, error) {
	return p.FetchRatesForBase(ctx, domain.PivotCurrency)
}

// FetchRatesForBase returns units of each currency per 1 unit of base, base included at 1.
func (p *FrankfurterProvider) FetchRatesForBase(ctx context.Context, base string) (domain.Rates, error) {
	base = strings.ToUpper(base)
	endpoint := fmt.Sprintf("%s/latest?from=%s", p.url, url.QueryEscape(base))

	body, err := getBody(ctx, p.client, endpoint, "application/json")
	if err != nil {
		return nil, apperrors.NewProviderError(frankfurterName, err)
	}

	var response struct {
		Rates map[string]decimal.Decimal `json:"rates"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, apperrors.NewProviderError(frankfurterName, fmt.Errorf("decoding json: %w", err))
	}
	if response.Rates == nil {
		return nil, apperrors.NewProviderError(frankfurterName, errors.New("response has no rates"))
	}

	rates := make(domain.Rates, len(response.Rates)+1)
	for code, rate := range response.Rates {
		rates[strings.ToUpper(code)] = rate
	}
	rates[base] = decimal.NewFromInt(1)
	return rates, nil
}
