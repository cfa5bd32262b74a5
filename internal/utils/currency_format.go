package utils

import (
	"context"
	"fmt"

	"github.com/SscSPs/growth_storefront/internal/core/domain"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// supportedLocales are the display locales the storefront formats prices for.
// The first entry is the fallback.
var supportedLocales = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.MustParse("en-IN"),
	language.German,
	language.French,
	language.Spanish,
	language.BrazilianPortuguese,
	language.Japanese,
	language.Arabic,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// LocaleFromAcceptLanguage picks the closest supported locale for an Accept-Language header.
// An empty or unparsable header yields American English.
func LocaleFromAcceptLanguage(header string) language.Tag {
	if header == "" {
		return supportedLocales[0]
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return supportedLocales[0]
	}
	_, idx, _ := localeMatcher.Match(tags...)
	return supportedLocales[idx]
}

type localeCtxKey struct{}

// WithLocale returns a copy of ctx carrying the display locale.
func WithLocale(ctx context.Context, locale language.Tag) context.Context {
	return context.WithValue(ctx, localeCtxKey{}, locale)
}

// LocaleFromCtx returns the display locale stored by WithLocale, or the fallback locale.
func LocaleFromCtx(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(localeCtxKey{}).(language.Tag); ok {
		return tag
	}
	return supportedLocales[0]
}

// FormatMoney formats an already converted amount with the currency's symbol,
// using the grouping, decimal separator and precision conventions of locale.
// Example: 1234.5 with USD in en-US returns "$ 1,234.50"
// Example: 1234.5 with JPY in en-US returns "¥ 1,235"
func FormatMoney(amount float64, curr domain.Currency, locale language.Tag) string {
	unit, err := currency.ParseISO(curr.Code)
	if err != nil {
		return fmt.Sprintf("%s%.2f", curr.Symbol, amount)
	}
	p := message.NewPrinter(locale)
	return p.Sprint(currency.Symbol(unit.Amount(amount)))
}
