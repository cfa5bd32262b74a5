package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/growth_storefront/internal/apperrors"
	"github.com/SscSPs/growth_storefront/internal/core/domain"
	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
)

// currencyService serves the static currency registry.
type currencyService struct {
	BaseService
}

// NewCurrencyService creates a registry-backed currency service.
func NewCurrencyService() portssvc.CurrencySvcFacade {
	return &currencyService{}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) ListCurrencies(ctx context.Context) []domain.Currency {
	return domain.SupportedCurrencies()
}

func (s *currencyService) GetCurrency(ctx context.Context, code string) (domain.Currency, error) {
	curr, ok := domain.LookupCurrency(code)
	if !ok {
		return domain.Currency{}, apperrors.NewValidationError(fmt.Sprintf("unsupported currency code %q", code))
	}
	return curr, nil
}

// Convert converts between registry currencies. An unknown source code is treated as the base
// currency; an unknown target is rejected.
func (s *currencyService) Convert(ctx context.Context, amount float64, fromCode, toCode string) (float64, domain.Currency, error) {
	target, err := s.GetCurrency(ctx, toCode)
	if err != nil {
		return 0, domain.Currency{}, err
	}
	if _, ok := domain.LookupCurrency(fromCode); !ok {
		s.LogDebug(ctx, "Unknown source currency, converting from base",
			slog.String("from", fromCode))
	}
	return domain.Convert(amount, fromCode, target), target, nil
}
