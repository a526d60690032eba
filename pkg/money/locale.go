package money

import (
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LocaleStyle selects how the currency is identified in locale-aware output.
type LocaleStyle int

const (
	// StyleSymbol renders the locale's currency symbol, e.g. "$".
	StyleSymbol LocaleStyle = iota
	// StyleNarrowSymbol prefers the narrow symbol variant where one exists.
	StyleNarrowSymbol
	// StyleCode renders the ISO code instead of a symbol, e.g. "USD 1,234.50".
	StyleCode
)

type localeOptions struct {
	style LocaleStyle
}

// LocaleOption adjusts ToLocaleString output.
type LocaleOption func(*localeOptions)

// WithStyle overrides the currency display style.
func WithStyle(style LocaleStyle) LocaleOption {
	return func(o *localeOptions) { o.style = style }
}

// ToLocaleString renders the amount for the given BCP 47 locale using
// x/text's CLDR data, the Go counterpart of Intl.NumberFormat.
//
// Crypto currencies bypass the locale formatter entirely, since CLDR does
// not know their codes, and fall back to FormattedValueWithSymbol. The same
// fallback applies when the locale or the currency code fails to parse.
//
// The display value goes through float64 on its way into the locale
// formatter, so amounts beyond 2^53 minor units may render with reduced
// precision. The stored amount is not affected; use FormattedValue for
// exact rendering at any magnitude.
func (m Money) ToLocaleString(locale string, opts ...LocaleOption) string {
	if m.config.IsCrypto {
		return m.FormattedValueWithSymbol()
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return m.FormattedValueWithSymbol()
	}
	unit, err := xcurrency.ParseISO(m.config.Code)
	if err != nil {
		return m.FormattedValueWithSymbol()
	}

	var o localeOptions
	for _, opt := range opts {
		opt(&o)
	}

	rounded := applyRounding(m.amount, m.displayDecimals, m.rounding)
	f, _ := rounded.Abs().Float64()
	p := message.NewPrinter(tag)
	num := number.Decimal(f,
		number.MinFractionDigits(int(m.displayDecimals)),
		number.MaxFractionDigits(int(m.displayDecimals)),
	)

	var body string
	switch o.style {
	case StyleCode:
		body = p.Sprintf("%v %v", unit, num)
	case StyleNarrowSymbol:
		body = p.Sprintf("%v%v", xcurrency.NarrowSymbol(unit), num)
	default:
		body = p.Sprintf("%v%v", xcurrency.Symbol(unit), num)
	}
	if m.isDisplayNegative(rounded) {
		return "-" + body
	}
	return body
}
