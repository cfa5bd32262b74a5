package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/growth_storefront/internal/apperrors"
	"github.com/SscSPs/growth_storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/growth_storefront/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/platform/metrics"
)

// EventTracker receives product analytics events. *utils.PosthogClientWrapper satisfies it.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

const currencyChangedEvent = "currency_changed"

type currencyPreferenceService struct {
	BaseService
	store   portsrepo.PreferenceStore
	tracker EventTracker
}

// PreferenceOption is a functional option for configuring the preference service
type PreferenceOption func(*currencyPreferenceService)

// WithEventTracker reports currency changes to tracker.
func WithEventTracker(tracker EventTracker) PreferenceOption {
	return func(s *currencyPreferenceService) {
		s.tracker = tracker
	}
}

// NewCurrencyPreferenceService creates a preference service over store.
func NewCurrencyPreferenceService(store portsrepo.PreferenceStore, options ...PreferenceOption) portssvc.CurrencyPreferenceSvc {
	svc := &currencyPreferenceService{store: store}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CurrencyPreferenceSvc = (*currencyPreferenceService)(nil)

// storedCurrency is the persisted form of a preferred currency.
type storedCurrency struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
}

// Load never fails: anything unusable in the store yields the base currency.
func (s *currencyPreferenceService) Load(ctx context.Context, sessionID string) domain.Currency {
	base := domain.BaseCurrency()
	if sessionID == "" {
		return base
	}

	raw, err := s.store.GetPreference(ctx, sessionID, domain.CurrencyPreferenceKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return base
		}
		s.LogWarn(ctx, err, "Failed to load currency preference, using base currency")
		metrics.RecordPreferenceFallback("store_error")
		return base
	}

	var stored storedCurrency
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.LogWarn(ctx, err, "Stored currency preference is not valid JSON, using base currency")
		metrics.RecordPreferenceFallback("malformed")
		return base
	}
	if stored.Code == "" || stored.Symbol == "" || stored.Name == "" {
		s.LogDebug(ctx, "Stored currency preference is incomplete, using base currency")
		metrics.RecordPreferenceFallback("incomplete")
		return base
	}

	// The registry is authoritative; a stale stored rate is ignored.
	curr, ok := domain.LookupCurrency(stored.Code)
	if !ok {
		s.LogDebug(ctx, "Stored currency is no longer supported, using base currency",
			slog.String("currency_code", stored.Code))
		metrics.RecordPreferenceFallback("unsupported")
		return base
	}
	return curr
}

func (s *currencyPreferenceService) Save(ctx context.Context, sessionID string, currency domain.Currency) error {
	if sessionID == "" {
		return apperrors.NewValidationError("visitor session is required")
	}

	payload, err := json.Marshal(storedCurrency{
		Code:   currency.Code,
		Symbol: currency.Symbol,
		Name:   currency.Name,
		Rate:   currency.Rate,
	})
	if err != nil {
		return fmt.Errorf("failed to encode currency preference: %w", err)
	}

	if err := s.store.SetPreference(ctx, sessionID, domain.CurrencyPreferenceKey, string(payload)); err != nil {
		s.LogError(ctx, err, "Failed to save currency preference",
			slog.String("currency_code", currency.Code))
		return fmt.Errorf("failed to save currency preference: %w", err)
	}
	return nil
}

// ChangeCurrency resolves code and persists it as the visitor's preference.
func (s *currencyPreferenceService) ChangeCurrency(ctx context.Context, sessionID string, code string) (domain.Currency, error) {
	curr, ok := domain.LookupCurrency(code)
	if !ok {
		return domain.Currency{}, apperrors.NewValidationError(fmt.Sprintf("unsupported currency code %q", code))
	}

	previous := s.Load(ctx, sessionID)
	if err := s.Save(ctx, sessionID, curr); err != nil {
		return domain.Currency{}, err
	}

	s.LogInfo(ctx, "Currency preference changed",
		slog.String("from", previous.Code),
		slog.String("to", curr.Code))
	if s.tracker != nil {
		s.tracker.Enqueue(sessionID, currencyChangedEvent, map[string]any{
			"from": previous.Code,
			"to":   curr.Code,
		})
	}
	return curr, nil
}
