package money

import (
	"strings"

	"github.com/SscSPs/monetary/pkg/currency"
	"github.com/shopspring/decimal"
)

// FormattedValue renders the amount at the display precision under the
// value's rounding mode, grouping integer digits in threes with the
// currency's separators. Negative values keep their minus sign, including
// negative zero.
func (m Money) FormattedValue() string {
	rounded := applyRounding(m.amount, m.displayDecimals, m.rounding)
	body := m.formatNumber(rounded.Abs())
	if m.isDisplayNegative(rounded) {
		return "-" + body
	}
	return body
}

// FormattedValueWithSymbol renders like FormattedValue with the currency
// symbol affixed per its configured position. The sign stays outside the
// symbol: "-$100.00", never "$-100.00".
func (m Money) FormattedValueWithSymbol() string {
	rounded := applyRounding(m.amount, m.displayDecimals, m.rounding)
	body := m.affixSymbol(m.formatNumber(rounded.Abs()))
	if m.isDisplayNegative(rounded) {
		return "-" + body
	}
	return body
}

// String renders the value with its symbol.
func (m Money) String() string {
	return m.FormattedValueWithSymbol()
}

// AbbreviatedValue renders the amount scaled down by the largest applicable
// power of 1000, suffixed K, M, B or T, rounded to maxDecimals places with
// trailing zeros trimmed. Rounding is re-evaluated after scaling, so a
// value like 999,999.95 promotes into the next bucket instead of rendering
// as "1000K".
func (m Money) AbbreviatedValue(maxDecimals int32, withSymbol bool) string {
	abs := m.amount.Abs()
	i := 0
	for ; i < len(abbrevBuckets)-1; i++ {
		if abs.GreaterThanOrEqual(decimal.New(1, abbrevBuckets[i].exp)) {
			break
		}
	}
	var body string
	for {
		scaled := applyRounding(abs.Shift(-abbrevBuckets[i].exp), maxDecimals, m.rounding)
		if i > 0 && scaled.GreaterThanOrEqual(abbrevThousand) {
			i--
			continue
		}
		body = scaled.String() + abbrevBuckets[i].suffix
		break
	}
	if withSymbol {
		body = m.affixSymbol(body)
	}
	if m.isDisplayNegative(m.amount) {
		return "-" + body
	}
	return body
}

var abbrevBuckets = []struct {
	exp    int32
	suffix string
}{
	{12, "T"},
	{9, "B"},
	{6, "M"},
	{3, "K"},
	{0, ""},
}

var abbrevThousand = decimal.NewFromInt(1000)

// isDisplayNegative reports whether the rendered form carries a minus sign:
// either the (possibly rounded) amount is below zero, or the value was
// constructed from a negative zero.
func (m Money) isDisplayNegative(rounded decimal.Decimal) bool {
	return rounded.IsNegative() || m.negative
}

func (m Money) affixSymbol(body string) string {
	if m.config.SymbolPosition == currency.PositionSuffix {
		return body + m.config.Symbol
	}
	return m.config.Symbol + body
}

// formatNumber renders a non-negative decimal with the configured
// separators at the display precision.
func (m Money) formatNumber(d decimal.Decimal) string {
	fixed := d.StringFixed(m.displayDecimals)
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")
	out := groupThousands(intPart, m.config.ThousandsSeparator)
	if hasFrac {
		out += m.config.DecimalSeparator + fracPart
	}
	return out
}

// groupThousands inserts sep every three digits from the right.
func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	first := len(digits) % 3
	if first > 0 {
		b.WriteString(digits[:first])
	}
	for i := first; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
