package money

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Allocate splits the amount into one share per ratio, proportionally,
// without losing or creating a single minor unit. Shares come back in ratio
// order and sum exactly to the original amount.
//
// Each share is first floored toward zero at the calculation precision. The
// minor units left over are then handed out one at a time to the shares
// that lost the largest fraction to flooring; equal fractions are resolved
// in favor of the earlier index, so allocation is deterministic.
//
// A zero ratio yields a zero share. Ratios must be finite and non-negative
// and cannot all be zero.
func (m Money) Allocate(ratios ...float64) ([]Money, error) {
	if len(ratios) == 0 {
		return nil, ErrEmptyRatios
	}

	decRatios := make([]decimal.Decimal, len(ratios))
	total := decimal.Zero
	for i, r := range ratios {
		if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
			return nil, fmt.Errorf("%w: ratio %v at index %d", ErrInvalidRatios, r, i)
		}
		decRatios[i] = decimal.NewFromFloat(r)
		total = total.Add(decRatios[i])
	}
	if total.IsZero() {
		return nil, fmt.Errorf("%w: ratios sum to zero", ErrInvalidRatios)
	}

	// QuoRem gives the share truncated toward zero at the calculation
	// precision plus the exact numerator it lost, in one step. Ranking on
	// the raw remainders is exact because every share has the same
	// denominator.
	shares := make([]decimal.Decimal, len(ratios))
	lost := make([]decimal.Decimal, len(ratios))
	floorSum := decimal.Zero
	for i, r := range decRatios {
		q, rem := m.amount.Mul(r).QuoRem(total, m.calcDecimals)
		shares[i] = q
		lost[i] = rem.Abs()
		floorSum = floorSum.Add(q)
	}

	remainder := m.amount.Sub(floorSum)
	ulp := decimal.New(1, -m.calcDecimals)
	if remainder.IsNegative() {
		// Negative amounts floor toward zero, so the leftover is handed
		// back as negative minor units.
		ulp = ulp.Neg()
	}
	units := remainder.Abs().Shift(m.calcDecimals).IntPart()

	order := make([]int, len(ratios))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return lost[order[a]].GreaterThan(lost[order[b]])
	})

	for k := int64(0); k < units && k < int64(len(order)); k++ {
		i := order[k]
		shares[i] = shares[i].Add(ulp)
	}

	// Amounts carrying more precision than the currency leave a residue
	// smaller than one minor unit; it goes to the top-ranked share so the
	// shares still sum exactly to the original amount.
	residue := remainder.Sub(ulp.Mul(decimal.NewFromInt(units)))
	if !residue.IsZero() {
		i := order[0]
		shares[i] = shares[i].Add(residue)
	}

	out := make([]Money, len(shares))
	for i, s := range shares {
		out[i] = m.derive(s)
	}
	return out, nil
}
