package money

import "fmt"

// ConvertTo converts m into the rate's currency. The rate expresses how
// much one unit of m's currency is worth in the target currency, so the
// result is amount × rate, carrying the rate's currency and configuration.
//
// A zero or negative rate fails with ErrInvalidExchangeRate.
func (m Money) ConvertTo(rate Money) (Money, error) {
	if rate.amount.Sign() <= 0 {
		return Money{}, fmt.Errorf("%w: got %s converting %s to %s", ErrInvalidExchangeRate,
			rate.amount, m.config.Code, rate.config.Code)
	}
	return rate.derive(m.amount.Mul(rate.amount)), nil
}
