package services

import (
	"context"

	"github.com/SscSPs/growth_storefront/internal/core/domain"
)

// CurrencyReaderSvc defines read operations over the currency registry
type CurrencyReaderSvc interface {
	// ListCurrencies returns every supported currency, base first.
	ListCurrencies(ctx context.Context) []domain.Currency

	// GetCurrency resolves a code against the registry.
	GetCurrency(ctx context.Context, code string) (domain.Currency, error)
}

// CurrencyConverterSvc defines conversion between registry currencies
type CurrencyConverterSvc interface {
	// Convert converts amount from one currency code into another. The target must be supported.
	Convert(ctx context.Context, amount float64, fromCode, toCode string) (float64, domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyConverterSvc
}

// CurrencyPreferenceSvc remembers the display currency chosen by a visitor.
type CurrencyPreferenceSvc interface {
	// Load returns the visitor's currency, falling back to the base currency. It never fails.
	Load(ctx context.Context, sessionID string) domain.Currency

	// Save persists the full currency record for the visitor.
	Save(ctx context.Context, sessionID string, currency domain.Currency) error

	// ChangeCurrency validates code and saves it as the visitor's preference.
	ChangeCurrency(ctx context.Context, sessionID string, code string) (domain.Currency, error)
}
