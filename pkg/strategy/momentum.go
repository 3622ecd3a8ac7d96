package strategy

import (
	"github.com/peter-kozarec/tradekit/pkg/series"
)

// MomentumSignals classifies each position by the sign of the first
// difference of closes. Position 0 has no previous close and holds.
func MomentumSignals(closes series.Observations) (series.Signals, error) {
	if len(closes) == 0 {
		return nil, series.ErrEmptyInput
	}

	signals := make(series.Signals, len(closes))
	signals[0] = series.Signal{Action: series.Hold, Valid: true}

	for i := 1; i < len(closes); i++ {
		action := series.Hold
		if closes[i].Gt(closes[i-1]) {
			action = series.Buy
		} else if closes[i].Lt(closes[i-1]) {
			action = series.Sell
		}
		signals[i] = series.Signal{Action: action, Valid: true}
	}
	return signals, nil
}
