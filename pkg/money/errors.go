package money

import "errors"

// Every failure the package produces wraps one of these sentinels, so
// callers can branch with errors.Is without parsing messages.
var (
	// ErrInvalidAmount indicates a value that does not parse to a finite decimal.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrCurrencyNotFound indicates a currency code absent from the registry.
	ErrCurrencyNotFound = errors.New("currency not found")
	// ErrCurrencyMismatch indicates a binary operation across two currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrDivisionByZero indicates a scalar division by exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrEmptyRatios indicates an Allocate call with no ratios.
	ErrEmptyRatios = errors.New("allocation requires at least one ratio")
	// ErrInvalidRatios indicates a negative ratio or a ratio list summing to zero.
	ErrInvalidRatios = errors.New("invalid allocation ratios")
	// ErrInvalidExchangeRate indicates a conversion with a non-positive rate.
	ErrInvalidExchangeRate = errors.New("exchange rate must be positive")
)
