package domain

// CurrencyPreferenceKey is the preference slot holding the visitor's display currency.
const CurrencyPreferenceKey = "currency"
