package money

import "encoding/json"

// Snapshot is the JSON shape of a Money value. Negative is a sign flag
// distinct from IsNegative: it is also true for negative zero, which is
// numerically zero.
type Snapshot struct {
	Currency        string `json:"currency"`
	Symbol          string `json:"symbol"`
	Decimals        int32  `json:"decimals"`
	DisplayDecimals int32  `json:"displayDecimals"`
	Value           string `json:"value"`
	PrettyValue     string `json:"prettyValue"`
	Negative        bool   `json:"negative"`
}

// Snapshot returns the structured form serialized by MarshalJSON.
func (m Money) Snapshot() Snapshot {
	return Snapshot{
		Currency:        m.config.Code,
		Symbol:          m.config.Symbol,
		Decimals:        m.calcDecimals,
		DisplayDecimals: m.displayDecimals,
		Value:           m.Value(),
		PrettyValue:     m.FormattedValueWithSymbol(),
		Negative:        m.negative || m.amount.IsNegative(),
	}
}

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Snapshot())
}
