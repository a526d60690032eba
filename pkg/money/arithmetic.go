package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// divisionGuardDigits is the extra precision kept beyond the calculation
// precision when a quotient does not terminate.
const divisionGuardDigits = 16

func (m Money) sameCurrency(other Money) error {
	if m.config.Code != other.config.Code {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.config.Code, other.config.Code)
	}
	return nil
}

// Add returns m + other. Both values must share a currency code; the result
// carries the receiver's display and rounding configuration.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return m.derive(m.amount.Add(other.amount)), nil
}

// Subtract returns m - other. Both values must share a currency code; the
// result carries the receiver's display and rounding configuration.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return m.derive(m.amount.Sub(other.amount)), nil
}

// Multiply returns m scaled by an exact decimal factor.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return m.derive(m.amount.Mul(factor))
}

// MultiplyFloat returns m scaled by a float factor. NaN and infinities fail
// with ErrInvalidAmount.
func (m Money) MultiplyFloat(factor float64) (Money, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Money{}, fmt.Errorf("%w: factor %v is not finite", ErrInvalidAmount, factor)
	}
	return m.Multiply(decimal.NewFromFloat(factor)), nil
}

// Divide returns m divided by an exact decimal divisor, keeping
// divisionGuardDigits beyond the calculation precision when the quotient
// does not terminate. Dividing by zero fails with ErrDivisionByZero.
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, fmt.Errorf("%w: cannot divide %s by zero", ErrDivisionByZero, m.config.Code)
	}
	return m.derive(m.amount.DivRound(divisor, m.calcDecimals+divisionGuardDigits)), nil
}

// DivideFloat returns m divided by a float divisor.
func (m Money) DivideFloat(divisor float64) (Money, error) {
	if math.IsNaN(divisor) || math.IsInf(divisor, 0) {
		return Money{}, fmt.Errorf("%w: divisor %v is not finite", ErrInvalidAmount, divisor)
	}
	return m.Divide(decimal.NewFromFloat(divisor))
}

// Equals reports whether both values hold numerically equal amounts. The
// comparison is exact; currencies must match.
func (m Money) Equals(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.Equal(other.amount), nil
}

// GreaterThan reports m > other.
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// LessThan reports m < other.
func (m Money) LessThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

// GreaterThanOrEqual reports m >= other.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThanOrEqual(other.amount), nil
}

// LessThanOrEqual reports m <= other.
func (m Money) LessThanOrEqual(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThanOrEqual(other.amount), nil
}

// Cmp compares two amounts of the same currency and returns -1, 0 or +1.
// It performs the currency check once, unlike chaining the predicates.
func (m Money) Cmp(other Money) (int, error) {
	if err := m.sameCurrency(other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

// IsZero reports whether the amount is numerically zero. Negative zero is
// zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// IsPositive reports whether the amount is non-negative. Zero counts as
// positive.
func (m Money) IsPositive() bool { return !m.amount.IsNegative() }

// IsNegative reports whether the amount is strictly below zero. Negative
// zero is numerically zero and reports false, even though it formats with a
// minus sign.
func (m Money) IsNegative() bool { return m.amount.IsNegative() }
