package providers

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsproviders "github.com/SscSPs/currency_converter/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// ECBDailyURL is the European Central Bank daily reference rate feed.
const ECBDailyURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"

const ecbName = "ECB"

// ECBProvider reads the ECB daily XML feed and re-expresses it against USD.
type ECBProvider struct {
	url    string
	client *http.Client
}

var _ portsproviders.RateProvider = (*ECBProvider)(nil)

// NewECBProvider creates an ECB provider. An empty url uses ECBDailyURL.
func NewECBProvider(url string, client *http.Client) *ECBProvider {
	if url == "" {
		url = ECBDailyURL
	}
	if client == nil {
		client = NewHTTPClient(DefaultTimeout)
	}
	return &ECBProvider{url: url, client: client}
}

func (p *ECBProvider) Name() string { return ecbName }

// FetchRates returns units of each currency per 1 USD.
func (p *ECBProvider) FetchRates(ctx context.Context) (domain.Rates, error) {
	body, err := getBody(ctx, p.client, p.url, "application/xml")
	if err != nil {
		return nil, apperrors.NewProviderError(ecbName, err)
	}

	perEUR, err := parseECBCubes(body)
	if err != nil {
		return nil, apperrors.NewProviderError(ecbName, err)
	}

	eurUSD, ok := perEUR[domain.PivotCurrency]
	if !ok || !eurUSD.IsPositive() {
		return nil, apperrors.NewProviderError(ecbName, errors.New("USD rate missing from feed"))
	}

	perUSD := make(domain.Rates, len(perEUR))
	for code, rate := range perEUR {
		perUSD[code] = domain.Ratio(rate, eurUSD)
	}
	perUSD[domain.PivotCurrency] = decimal.NewFromInt(1)
	return perUSD, nil
}

// parseECBCubes collects every element carrying both currency and rate
// attributes. EUR is added at 1 since the feed is EUR-based.
func parseECBCubes(body []byte) (domain.Rates, error) {
	rates := domain.Rates{"EUR": decimal.NewFromInt(1)}
	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding xml: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		var code, raw string
		for _, attr := range start.Attr {
			switch attr.Name.Local {
			case "currency":
				code = attr.Value
			case "rate":
				raw = attr.Value
			}
		}
		if code == "" || raw == "" {
			continue
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("bad rate for %s: %w", code, err)
		}
		rates[strings.ToUpper(code)] = rate
	}
	return rates, nil
}
