package dto

import (
	"github.com/SscSPs/growth_storefront/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
}

// UpdateCurrencyPreferenceRequest selects the visitor's display currency.
type UpdateCurrencyPreferenceRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=3,currencycode"`
}

// ConvertCurrencyParams defines query parameters for a one-off conversion.
type ConvertCurrencyParams struct {
	Amount float64 `form:"amount" binding:"gte=0"`
	From   string  `form:"from" binding:"required,len=3"`
	To     string  `form:"to" binding:"required,len=3"`
}

// ConvertCurrencyResponse is the result of a conversion.
type ConvertCurrencyResponse struct {
	Amount    float64          `json:"amount"`
	From      string           `json:"from"`
	To        CurrencyResponse `json:"to"`
	Converted float64          `json:"converted"`
	Formatted string           `json:"formatted"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:   curr.Code,
		Symbol: curr.Symbol,
		Name:   curr.Name,
		Rate:   curr.Rate,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(curr)
	}
	return res
}
