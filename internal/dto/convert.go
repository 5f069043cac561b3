package dto

import (
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/shopspring/decimal"
)

// ConvertRequest is accepted as a JSON body or as query parameters.
// Pair wins when both Pair and From/To are given.
type ConvertRequest struct {
	Pair   string `json:"pair" form:"pair" binding:"max=64"`
	From   string `json:"from" form:"from" binding:"required_without=Pair,currencytext"`
	To     string `json:"to" form:"to" binding:"required_without=Pair,currencytext"`
	Amount string `json:"amount" form:"amount" binding:"required,max=64"`
	Lang   string `json:"lang" form:"lang" binding:"omitempty,oneof=eng ru"`
}

// ConversionResponse defines the data returned for a conversion.
type ConversionResponse struct {
	Base      string          `json:"base"`
	Quote     string          `json:"quote"`
	Amount    decimal.Decimal `json:"amount"`
	Rate      decimal.Decimal `json:"rate"`
	Result    decimal.Decimal `json:"result"`
	FetchedAt time.Time       `json:"fetchedAt"`
	Source    string          `json:"source"`

	// Display renderings in the requested language.
	AmountDisplay string `json:"amountDisplay"`
	RateDisplay   string `json:"rateDisplay"`
	ResultDisplay string `json:"resultDisplay"`
}

// ToConversionResponse converts a domain.ConversionResult to a ConversionResponse DTO.
func ToConversionResponse(res *domain.ConversionResult, lang string) ConversionResponse {
	if lang == "" {
		lang = utils.LangEnglish
	}
	return ConversionResponse{
		Base:          res.Base,
		Quote:         res.Quote,
		Amount:        res.Amount,
		Rate:          res.Rate,
		Result:        res.Result,
		FetchedAt:     res.FetchedAt,
		Source:        res.Source,
		AmountDisplay: utils.FormatAmount(res.Amount, lang),
		RateDisplay:   utils.FormatRate(res.Rate, lang),
		ResultDisplay: utils.FormatAmount(res.Result, lang),
	}
}

// NormalizeResponse is the canonical code a currency name resolves to.
type NormalizeResponse struct {
	Input string `json:"input"`
	Code  string `json:"code"`
}
