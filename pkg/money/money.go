// Package money provides an exact, currency-aware monetary value type.
//
// A Money wraps an arbitrary-precision decimal amount together with a
// snapshot of its currency's configuration, resolved from the currency
// registry at construction time. Every operation is pure: it validates its
// inputs up front and returns a fresh value, so no Money is ever mutated
// and no cent is ever lost to binary floating point.
package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/SscSPs/monetary/pkg/currency"
	"github.com/shopspring/decimal"
)

// Money is an immutable monetary amount in a single currency.
//
// The zero value is not usable; construct values with New and friends.
// Money values are safe to copy and to share between goroutines.
type Money struct {
	amount          decimal.Decimal
	config          currency.Config
	calcDecimals    int32
	displayDecimals int32
	rounding        RoundingMode

	// negative preserves the sign of "-0" inputs, which the decimal backend
	// normalizes away. A negative zero is numerically zero everywhere but
	// still formats with a leading minus.
	negative bool
}

type options struct {
	symbol          *string
	decimals        *int32
	displayDecimals *int32
	rounding        *RoundingMode
	registry        *currency.Registry
}

// Option overrides one resolved field at construction time.
type Option func(*options)

// WithSymbol overrides the display symbol from the registry config.
func WithSymbol(symbol string) Option {
	return func(o *options) { o.symbol = &symbol }
}

// WithDecimals overrides the calculation precision. Display precision
// follows it unless WithDisplayDecimals is also given.
func WithDecimals(decimals int32) Option {
	return func(o *options) { o.decimals = &decimals }
}

// WithDisplayDecimals overrides the precision used only for rendering.
func WithDisplayDecimals(decimals int32) Option {
	return func(o *options) { o.displayDecimals = &decimals }
}

// WithRounding overrides the rounding mode for this value.
func WithRounding(mode RoundingMode) Option {
	return func(o *options) { o.rounding = &mode }
}

// WithRegistry resolves the currency code against an explicit registry
// instead of the process default.
func WithRegistry(r *currency.Registry) Option {
	return func(o *options) { o.registry = r }
}

// New parses value as a decimal amount in the given currency.
//
// It fails with ErrInvalidAmount when value is not a finite decimal string,
// and with ErrCurrencyNotFound when code is not registered.
func New(value, code string, opts ...Option) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("%w: cannot parse %q as a decimal", ErrInvalidAmount, value)
	}
	neg := d.IsNegative() || (d.IsZero() && strings.HasPrefix(strings.TrimSpace(value), "-"))
	return build(d, neg, code, opts)
}

// NewFromFloat builds a value from a float64. NaN and infinities fail with
// ErrInvalidAmount.
func NewFromFloat(value float64, code string, opts ...Option) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, fmt.Errorf("%w: %v is not finite", ErrInvalidAmount, value)
	}
	d := decimal.NewFromFloat(value)
	neg := d.IsNegative() || (d.IsZero() && math.Signbit(value))
	return build(d, neg, code, opts)
}

// NewFromInt builds a value from an int64 amount of major units.
func NewFromInt(value int64, code string, opts ...Option) (Money, error) {
	d := decimal.NewFromInt(value)
	return build(d, d.IsNegative(), code, opts)
}

// NewFromDecimal builds a value from an existing decimal.
func NewFromDecimal(d decimal.Decimal, code string, opts ...Option) (Money, error) {
	return build(d, d.IsNegative(), code, opts)
}

// Zero returns a zero amount in the given currency.
func Zero(code string, opts ...Option) (Money, error) {
	return build(decimal.Zero, false, code, opts)
}

// MustNew is like New but panics on error. It simplifies initialization of
// fixtures and package-level values.
func MustNew(value, code string, opts ...Option) Money {
	m, err := New(value, code, opts...)
	if err != nil {
		panic(fmt.Sprintf("money.New(%q, %q) failed: %v", value, code, err))
	}
	return m
}

func build(d decimal.Decimal, neg bool, code string, opts []Option) (Money, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	reg := o.registry
	if reg == nil {
		reg = currency.Default()
	}
	cfg, ok := reg.Get(code)
	if !ok {
		return Money{}, fmt.Errorf("%w: %q is not registered; add it with currency.Register before use", ErrCurrencyNotFound, code)
	}
	if o.symbol != nil {
		cfg.Symbol = *o.symbol
	}

	m := Money{
		amount:          d,
		config:          cfg,
		calcDecimals:    cfg.Decimals,
		displayDecimals: cfg.Decimals,
		rounding:        DefaultRounding(),
		negative:        neg,
	}
	if o.decimals != nil {
		m.calcDecimals = *o.decimals
		m.displayDecimals = *o.decimals
	}
	if o.displayDecimals != nil {
		m.displayDecimals = *o.displayDecimals
	}
	if o.rounding != nil {
		m.rounding = *o.rounding
	}
	return m, nil
}

// derive produces a new value carrying the receiver's configuration and a
// new amount. The sign flag is recomputed from the amount: derived zeros
// are plain zeros, negative zero only survives parsing.
func (m Money) derive(d decimal.Decimal) Money {
	m.amount = d
	m.negative = d.IsNegative()
	return m
}

// Value returns the canonical decimal string of the exact amount, trailing
// zeros trimmed. A negative zero renders as "-0".
func (m Money) Value() string {
	if m.negative && m.amount.IsZero() {
		return "-0"
	}
	return m.amount.String()
}

// Decimal returns the exact underlying amount.
func (m Money) Decimal() decimal.Decimal { return m.amount }

// CurrencyCode returns the resolved currency code.
func (m Money) CurrencyCode() string { return m.config.Code }

// Symbol returns the resolved display symbol.
func (m Money) Symbol() string { return m.config.Symbol }

// Config returns the currency config snapshot taken at construction.
func (m Money) Config() currency.Config { return m.config }

// Decimals returns the calculation precision.
func (m Money) Decimals() int32 { return m.calcDecimals }

// DisplayDecimals returns the rendering precision.
func (m Money) DisplayDecimals() int32 { return m.displayDecimals }

// Rounding returns the value's rounding mode.
func (m Money) Rounding() RoundingMode { return m.rounding }

// IsCrypto reports whether the resolved currency is flagged as a crypto
// asset.
func (m Money) IsCrypto() bool { return m.config.IsCrypto }

// Round returns the value rounded to the given number of fractional digits
// (default: the calculation precision) under the value's rounding mode.
func (m Money) Round(decimals ...int32) Money {
	places := m.calcDecimals
	if len(decimals) > 0 {
		places = decimals[0]
	}
	return m.derive(applyRounding(m.amount, places, m.rounding))
}
