package money_test

import (
	"testing"

	"github.com/SscSPs/monetary/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound_ModeTable(t *testing.T) {
	// The reference vectors for "100.555" at two decimals.
	tests := []struct {
		mode money.RoundingMode
		want string
	}{
		{money.RoundUp, "100.56"},
		{money.RoundDown, "100.55"},
		{money.RoundCeil, "100.56"},
		{money.RoundFloor, "100.55"},
		{money.RoundHalfUp, "100.56"},
		{money.RoundHalfDown, "100.55"},
		{money.RoundHalfEven, "100.56"},
		{money.RoundHalfCeil, "100.56"},
		{money.RoundHalfFloor, "100.55"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			m := money.MustNew("100.555", "USD", money.WithRounding(tt.mode))
			assert.Equal(t, tt.want, m.Round(2).Value())
		})
	}
}

func TestRound_NegativeAmounts(t *testing.T) {
	tests := []struct {
		mode money.RoundingMode
		want string
	}{
		{money.RoundUp, "-100.56"},
		{money.RoundDown, "-100.55"},
		{money.RoundCeil, "-100.55"},
		{money.RoundFloor, "-100.56"},
		{money.RoundHalfUp, "-100.56"},
		{money.RoundHalfDown, "-100.55"},
		{money.RoundHalfEven, "-100.56"},
		{money.RoundHalfCeil, "-100.55"},
		{money.RoundHalfFloor, "-100.56"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			m := money.MustNew("-100.555", "USD", money.WithRounding(tt.mode))
			assert.Equal(t, tt.want, m.Round(2).Value())
		})
	}
}

func TestRound_HalfEvenPairs(t *testing.T) {
	// Banker's rounding alternates direction so repeated aggregation does
	// not drift.
	tests := []struct {
		value string
		want  string
	}{
		{"2.125", "2.12"},
		{"2.135", "2.14"},
		{"2.145", "2.14"},
		{"2.155", "2.16"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			m := money.MustNew(tt.value, "USD")
			assert.Equal(t, tt.want, m.Round(2).Value())
		})
	}
}

func TestRound_NonHalfValuesAgreeAcrossHalfModes(t *testing.T) {
	// Away from an exact half, every half mode rounds to nearest.
	for _, mode := range []money.RoundingMode{
		money.RoundHalfUp, money.RoundHalfDown, money.RoundHalfEven,
		money.RoundHalfCeil, money.RoundHalfFloor,
	} {
		t.Run(mode.String(), func(t *testing.T) {
			m := money.MustNew("100.556", "USD", money.WithRounding(mode))
			assert.Equal(t, "100.56", m.Round(2).Value())

			m = money.MustNew("100.554", "USD", money.WithRounding(mode))
			assert.Equal(t, "100.55", m.Round(2).Value())
		})
	}
}

func TestRound_DefaultPlaces(t *testing.T) {
	// Without an argument, Round targets the calculation precision.
	m := money.MustNew("12.3456", "USD")
	assert.Equal(t, "12.35", m.Round().Value())

	m = money.MustNew("12.3456", "USD", money.WithDecimals(3))
	assert.Equal(t, "12.346", m.Round().Value())
}

func TestRound_IsPure(t *testing.T) {
	m := money.MustNew("100.555", "USD")
	rounded := m.Round(2)
	require.Equal(t, "100.56", rounded.Value())
	assert.Equal(t, "100.555", m.Value(), "rounding must not mutate the receiver")
}

func TestRoundingMode_String(t *testing.T) {
	assert.Equal(t, "ROUND_HALF_EVEN", money.RoundHalfEven.String())
	assert.Equal(t, "ROUND_UP", money.RoundUp.String())
	assert.Equal(t, "ROUND_HALF_FLOOR", money.RoundHalfFloor.String())
}
