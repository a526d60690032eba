package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateInput reports whether value would be accepted by New, without
// touching the currency registry. It returns nil for valid input and an
// error wrapping ErrInvalidAmount otherwise.
func ValidateInput(value string) error {
	if _, err := decimal.NewFromString(value); err != nil {
		return fmt.Errorf("%w: cannot parse %q as a decimal", ErrInvalidAmount, value)
	}
	return nil
}

// IsMoney reports whether v is a Money or *Money.
func IsMoney(v any) bool {
	switch v.(type) {
	case Money, *Money:
		return true
	}
	return false
}
