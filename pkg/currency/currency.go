// Package currency holds the process-wide registry that maps currency codes
// to their formatting and precision metadata. Monetary values resolve their
// configuration here at construction time.
package currency

import "regexp"

// Position controls where a currency symbol is rendered relative to the amount.
type Position int

const (
	// PositionPrefix renders the symbol before the amount, e.g. "$100.00".
	PositionPrefix Position = iota
	// PositionSuffix renders the symbol after the amount, e.g. "100.00Kč".
	PositionSuffix
)

// Config describes one currency or token.
//
// MinorUnits records how many minor units compose one major unit (100 for
// two-decimal currencies, 10^18 for ETH). It is informational metadata for
// callers; monetary arithmetic and allocation derive their granularity from
// the calculation precision, which tracks Decimals and can be overridden
// per value.
type Config struct {
	Code               string   `json:"code" mapstructure:"code" validate:"required"`
	Name               string   `json:"name" mapstructure:"name" validate:"required"`
	Symbol             string   `json:"symbol" mapstructure:"symbol" validate:"required"`
	SymbolPosition     Position `json:"symbolPosition" mapstructure:"symbolPosition"`
	DecimalSeparator   string   `json:"decimalSeparator" mapstructure:"decimalSeparator"`
	ThousandsSeparator string   `json:"thousandsSeparator" mapstructure:"thousandsSeparator"`
	Decimals           int32    `json:"decimals" mapstructure:"decimals" validate:"gte=0"`
	MinorUnits         int64    `json:"minorUnits" mapstructure:"minorUnits" validate:"gte=0"`
	IsCrypto           bool     `json:"isCrypto" mapstructure:"isCrypto"`
}

// normalize fills in the derivable fields a caller is allowed to omit:
// separators default to "." and ",", MinorUnits to 10^Decimals.
func (c Config) normalize() Config {
	if c.DecimalSeparator == "" {
		c.DecimalSeparator = "."
	}
	if c.ThousandsSeparator == "" {
		c.ThousandsSeparator = ","
	}
	if c.MinorUnits == 0 {
		c.MinorUnits = pow10(c.Decimals)
	}
	return c
}

func pow10(n int32) int64 {
	out := int64(1)
	for i := int32(0); i < n; i++ {
		out *= 10
	}
	return out
}

var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// IsValidCode reports whether code is exactly three uppercase ASCII letters.
// Registration itself does not require this shape (token codes like "USDT"
// are registrable); it exists for callers validating ISO-style input.
func IsValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// IsConfig reports whether v is a Config or *Config.
func IsConfig(v any) bool {
	switch v.(type) {
	case Config, *Config:
		return true
	}
	return false
}
