package money

import (
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how an amount is rounded when precision is reduced.
// The modes are pure numeric semantics, independent of the decimal backend.
type RoundingMode int32

const (
	// RoundHalfEven rounds half values to the nearest even digit (banker's
	// rounding). This is the package default: it is the least biased mode
	// under repeated aggregation.
	RoundHalfEven RoundingMode = iota
	// RoundUp rounds away from zero.
	RoundUp
	// RoundDown rounds toward zero (truncation).
	RoundDown
	// RoundCeil rounds toward positive infinity.
	RoundCeil
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundHalfUp rounds half values away from zero.
	RoundHalfUp
	// RoundHalfDown rounds half values toward zero.
	RoundHalfDown
	// RoundHalfCeil rounds half values toward positive infinity.
	RoundHalfCeil
	// RoundHalfFloor rounds half values toward negative infinity.
	RoundHalfFloor
)

// String returns the conventional name of the mode.
func (m RoundingMode) String() string {
	switch m {
	case RoundUp:
		return "ROUND_UP"
	case RoundDown:
		return "ROUND_DOWN"
	case RoundCeil:
		return "ROUND_CEIL"
	case RoundFloor:
		return "ROUND_FLOOR"
	case RoundHalfUp:
		return "ROUND_HALF_UP"
	case RoundHalfDown:
		return "ROUND_HALF_DOWN"
	case RoundHalfCeil:
		return "ROUND_HALF_CEIL"
	case RoundHalfFloor:
		return "ROUND_HALF_FLOOR"
	default:
		return "ROUND_HALF_EVEN"
	}
}

// defaultRounding is the mode new values pick up when no per-value override
// is given. Historical builds of the original library defaulted to half-up;
// half-even is canonical here, with SetDefaultRounding as the migration knob.
var defaultRounding atomic.Int32

// DefaultRounding returns the process-wide default rounding mode.
func DefaultRounding() RoundingMode {
	return RoundingMode(defaultRounding.Load())
}

// SetDefaultRounding changes the process-wide default rounding mode for
// values constructed afterwards. Existing values are unaffected.
func SetDefaultRounding(mode RoundingMode) {
	defaultRounding.Store(int32(mode))
}

// applyRounding rounds d to places fractional digits under mode.
//
// shopspring/decimal covers six of the nine modes natively. The remaining
// three differ from their native counterparts only on exact halves, so they
// are resolved by truncating and comparing the lost fraction against half a
// unit of the target precision.
func applyRounding(d decimal.Decimal, places int32, mode RoundingMode) decimal.Decimal {
	switch mode {
	case RoundUp:
		return d.RoundUp(places)
	case RoundDown:
		return d.RoundDown(places)
	case RoundCeil:
		return d.RoundCeil(places)
	case RoundFloor:
		return d.RoundFloor(places)
	case RoundHalfUp:
		return d.Round(places)
	case RoundHalfEven:
		return d.RoundBank(places)
	}

	trunc := d.Truncate(places)
	lost := d.Sub(trunc).Abs()
	half := decimal.New(5, -places-1)
	if !lost.Equal(half) {
		// Not an exact half: all half modes agree on nearest.
		return d.Round(places)
	}
	ulp := decimal.New(1, -places)
	switch mode {
	case RoundHalfDown:
		return trunc
	case RoundHalfCeil:
		if d.IsNegative() {
			return trunc
		}
		return trunc.Add(ulp)
	case RoundHalfFloor:
		if d.IsNegative() {
			return trunc.Sub(ulp)
		}
		return trunc
	}
	return d.RoundBank(places)
}
