package dto

import (
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListRatesParams defines the query parameters for listing stored rates.
type ListRatesParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken" binding:"omitempty,max=256"`
}

// RateResponse is one stored rate: 1 Base = Rate Symbol.
type RateResponse struct {
	Base      string          `json:"base"`
	Symbol    string          `json:"symbol"`
	Rate      decimal.Decimal `json:"rate"`
	FetchedAt time.Time       `json:"fetchedAt"`
	Source    string          `json:"source"`
}

// ListRatesResponse is a page of stored rates.
type ListRatesResponse struct {
	Base      string         `json:"base"`
	Rates     []RateResponse `json:"rates"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// RefreshResponse describes a completed forced refresh.
type RefreshResponse struct {
	Base      string    `json:"base"`
	FetchedAt time.Time `json:"fetchedAt"`
	Source    string    `json:"source"`
}

// ToRateResponse converts a domain.RateRecord to a RateResponse DTO.
func ToRateResponse(rec domain.RateRecord) RateResponse {
	return RateResponse{
		Base:      rec.Base,
		Symbol:    rec.Symbol,
		Rate:      rec.Rate,
		FetchedAt: rec.FetchedAt,
		Source:    rec.Source,
	}
}

// ToRateResponses converts a slice of records.
func ToRateResponses(recs []domain.RateRecord) []RateResponse {
	out := make([]RateResponse, len(recs))
	for i, rec := range recs {
		out[i] = ToRateResponse(rec)
	}
	return out
}
