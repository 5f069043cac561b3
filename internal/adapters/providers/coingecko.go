package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsproviders "github.com/SscSPs/currency_converter/internal/core/ports/providers"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// CoinGeckoURL is the public CoinGecko API root.
const CoinGeckoURL = "https://api.coingecko.com/api/v3"

const coinGeckoName = "CoinGecko"

// CoinGeckoIDs maps supported tickers to CoinGecko asset ids.
var CoinGeckoIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"USDT":  "tether",
	"USDC":  "usd-coin",
	"BNB":   "binancecoin",
	"XRP":   "ripple",
	"ADA":   "cardano",
	"SOL":   "solana",
	"TRX":   "tron",
	"DOGE":  "dogecoin",
	"TON":   "the-open-network",
	"DOT":   "polkadot",
	"LINK":  "chainlink",
	"LTC":   "litecoin",
	"BCH":   "bitcoin-cash",
	"AVAX":  "avalanche-2",
	"XMR":   "monero",
	"ETC":   "ethereum-classic",
	"ATOM":  "cosmos",
	"NEAR":  "near",
	"MATIC": "matic-network",
	"DAI":   "dai",
}

// CoinGeckoProvider prices crypto assets in USD and inverts the quotes.
type CoinGeckoProvider struct {
	url     string
	client  *http.Client
	symbols map[string]string // ticker -> id, restricted to supported tickers
}

var _ portsproviders.RateProvider = (*CoinGeckoProvider)(nil)

// NewCoinGeckoProvider creates a provider for symbols. Tickers without a
// CoinGecko id are dropped. A nil symbols slice means every known ticker.
func NewCoinGeckoProvider(url string, client *http.Client, symbols []string) *CoinGeckoProvider {
	if url == "" {
		url = CoinGeckoURL
	}
	if client == nil {
		client = NewHTTPClient(DefaultTimeout)
	}

	supported := make(map[string]string)
	if symbols == nil {
		for sym, id := range CoinGeckoIDs {
			supported[sym] = id
		}
	}
	for _, sym := range symbols {
		sym = strings.ToUpper(sym)
		if id, ok := CoinGeckoIDs[sym]; ok {
			supported[sym] = id
		}
	}

	return &CoinGeckoProvider{url: strings.TrimRight(url, "/"), client: client, symbols: supported}
}

func (p *CoinGeckoProvider) Name() string { return coinGeckoName }

// FetchRates returns units of each supported asset per 1 USD. Assets without
// a usable quote are left out. With no supported symbols no request is made.
func (p *CoinGeckoProvider) FetchRates(ctx context.Context) (domain.Rates, error) {
	if len(p.symbols) == 0 {
		return domain.Rates{}, nil
	}

	ids := make([]string, 0, len(p.symbols))
	for _, id := range p.symbols {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	endpoint := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd",
		p.url, url.QueryEscape(strings.Join(ids, ",")))

	body, err := getBody(ctx, p.client, endpoint, "application/json")
	if err != nil {
		return nil, apperrors.NewProviderError(coinGeckoName, err)
	}
	if !gjson.ValidBytes(body) {
		return nil, apperrors.NewProviderError(coinGeckoName, errors.New("malformed json"))
	}

	rates := make(domain.Rates, len(p.symbols))
	for sym, id := range p.symbols {
		price, ok := usdQuote(gjson.GetBytes(body, id+".usd"))
		if !ok {
			continue
		}
		rates[sym] = domain.Invert(price)
	}
	return rates, nil
}

// usdQuote extracts a positive decimal price from a gjson value.
func usdQuote(v gjson.Result) (decimal.Decimal, bool) {
	var raw string
	switch v.Type {
	case gjson.Number:
		raw = v.Raw
	case gjson.String:
		raw = v.Str
	default:
		return decimal.Zero, false
	}
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !price.IsPositive() {
		return decimal.Zero, false
	}
	return price, true
}
