package money_test

import (
	"math"
	"testing"

	"github.com/SscSPs/monetary/pkg/currency"
	"github.com/SscSPs/monetary/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		ratios []float64
		want   []string
	}{
		{
			name:   "indivisible cent goes to earliest shares",
			amount: "100.01",
			ratios: []float64{1, 1, 1},
			want:   []string{"33.34", "33.34", "33.33"},
		},
		{
			name:   "exact proportional split",
			amount: "100",
			ratios: []float64{2, 3, 5},
			want:   []string{"20", "30", "50"},
		},
		{
			name:   "single ratio returns the full amount",
			amount: "100.01",
			ratios: []float64{7},
			want:   []string{"100.01"},
		},
		{
			name:   "zero ratio yields a zero share",
			amount: "100.01",
			ratios: []float64{1, 0, 1},
			want:   []string{"50.01", "0", "50"},
		},
		{
			name:   "zero amount yields all-zero shares",
			amount: "0",
			ratios: []float64{1, 2, 3},
			want:   []string{"0", "0", "0"},
		},
		{
			name:   "skewed ratios",
			amount: "0.05",
			ratios: []float64{3, 7},
			want:   []string{"0.02", "0.03"},
		},
		{
			name:   "fractional ratios",
			amount: "10",
			ratios: []float64{0.5, 0.5},
			want:   []string{"5", "5"},
		},
		{
			name:   "negative amount splits symmetrically",
			amount: "-100.01",
			ratios: []float64{1, 1, 1},
			want:   []string{"-33.34", "-33.34", "-33.33"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := money.MustNew(tt.amount, "USD")
			shares, err := m.Allocate(tt.ratios...)
			require.NoError(t, err)
			require.Len(t, shares, len(tt.want))

			sum := decimal.Zero
			for i, s := range shares {
				assert.Equal(t, tt.want[i], s.Value(), "share %d", i)
				assert.Equal(t, "USD", s.CurrencyCode())
				sum = sum.Add(s.Decimal())
			}
			assert.True(t, sum.Equal(m.Decimal()), "shares sum to %s, want %s", sum, m.Decimal())
		})
	}
}

func TestAllocate_EmptyRatios(t *testing.T) {
	_, err := money.MustNew("1", "USD").Allocate()
	assert.ErrorIs(t, err, money.ErrEmptyRatios)
}

func TestAllocate_InvalidRatios(t *testing.T) {
	m := money.MustNew("1", "USD")

	_, err := m.Allocate(1, -1)
	assert.ErrorIs(t, err, money.ErrInvalidRatios)

	_, err = m.Allocate(0, 0)
	assert.ErrorIs(t, err, money.ErrInvalidRatios)

	_, err = m.Allocate(1, math.NaN())
	assert.ErrorIs(t, err, money.ErrInvalidRatios)

	_, err = m.Allocate(1, math.Inf(1))
	assert.ErrorIs(t, err, money.ErrInvalidRatios)
}

// Conservation and fairness must hold across amounts and ratio shapes, not
// just the handpicked vectors.
func TestAllocate_ConservationAndFairness(t *testing.T) {
	amounts := []string{
		"0.01", "0.99", "1", "7.35", "100.01", "999.97", "12345.67",
		"-0.01", "-100.01", "0.001", "1000000.01",
	}
	ratioSets := [][]float64{
		{1},
		{1, 1},
		{1, 1, 1},
		{2, 3, 5},
		{1, 0, 1},
		{3, 7},
		{1, 2, 3, 4, 5, 6, 7},
		{0.5, 0.25, 0.25},
		{97, 2, 1},
	}

	for _, amount := range amounts {
		for _, ratios := range ratioSets {
			m := money.MustNew(amount, "USD")
			shares, err := m.Allocate(ratios...)
			require.NoError(t, err)

			total := decimal.Zero
			for _, r := range ratios {
				total = total.Add(decimal.NewFromFloat(r))
			}

			sum := decimal.Zero
			for i, s := range shares {
				sum = sum.Add(s.Decimal())

				// Fairness: every share stays within one minor unit of its
				// exact proportional share.
				exact := m.Decimal().Mul(decimal.NewFromFloat(ratios[i])).Div(total)
				diff := s.Decimal().Sub(exact).Abs()
				assert.True(t, diff.LessThanOrEqual(decimal.New(1, -2)),
					"amount %s ratios %v share %d: |%s - %s| > 0.01", amount, ratios, i, s.Decimal(), exact)
			}
			assert.True(t, sum.Equal(m.Decimal()),
				"amount %s ratios %v: shares sum to %s", amount, ratios, sum)
		}
	}
}

func TestAllocate_TieBreakIsStable(t *testing.T) {
	// Four equal shares of 1.03: three cents left over after flooring at
	// 0.25, handed out in index order.
	shares, err := money.MustNew("1.03", "USD").Allocate(1, 1, 1, 1)
	require.NoError(t, err)

	got := make([]string, len(shares))
	for i, s := range shares {
		got[i] = s.Value()
	}
	assert.Equal(t, []string{"0.26", "0.26", "0.26", "0.25"}, got)
}

func TestAllocate_HighPrecisionCurrency(t *testing.T) {
	// 18-decimal tokens allocate at their own precision.
	m := money.MustNew("0.000000000000000001", "ETH")
	shares, err := m.Allocate(1, 1)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s.Decimal())
	}
	assert.True(t, sum.Equal(m.Decimal()))
	assert.Equal(t, "0.000000000000000001", shares[0].Value())
	assert.Equal(t, "0", shares[1].Value())
}

func TestAllocate_GranularityFollowsCalcPrecision(t *testing.T) {
	// The minor unit handed out during remainder distribution comes from
	// the calculation precision, not the config's MinorUnits metadata, and
	// it tracks a per-value precision override.
	reg := currency.NewRegistry()
	_, err := reg.Register(currency.Config{
		Code: "XTS", Name: "Test Currency", Symbol: "X",
		Decimals: 2, MinorUnits: 1000,
	})
	require.NoError(t, err)

	m, err := money.New("100.01", "XTS", money.WithRegistry(reg))
	require.NoError(t, err)
	shares, err := m.Allocate(1, 1, 1)
	require.NoError(t, err)

	got := make([]string, len(shares))
	for i, s := range shares {
		got[i] = s.Value()
	}
	assert.Equal(t, []string{"33.34", "33.34", "33.33"}, got)

	coarse, err := money.New("100.01", "XTS", money.WithRegistry(reg), money.WithDecimals(0))
	require.NoError(t, err)
	shares, err = coarse.Allocate(1, 1, 1)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s.Decimal())
	}
	assert.True(t, sum.Equal(coarse.Decimal()), "shares sum to %s", sum)
	assert.Equal(t, "33", shares[2].Value(), "whole-unit floors at zero calc decimals")
}

func TestAllocate_AmountFinerThanCurrency(t *testing.T) {
	// An amount carrying more precision than the currency still allocates
	// without losing the sub-cent residue.
	m := money.MustNew("100.005", "USD")
	shares, err := m.Allocate(1, 1)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s.Decimal())
	}
	assert.True(t, sum.Equal(m.Decimal()), "shares sum to %s", sum)
}
