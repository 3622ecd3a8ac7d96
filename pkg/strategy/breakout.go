package strategy

import (
	"github.com/peter-kozarec/tradekit/pkg/series"
	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

// Breakouts returns the positions where the close breaks above the given
// resistance level.
func Breakouts(closes series.Observations, resistance fixed.Point) ([]int, error) {
	if len(closes) == 0 {
		return nil, series.ErrEmptyInput
	}

	var positions []int
	for i, c := range closes {
		if c.Gt(resistance) {
			positions = append(positions, i)
		}
	}
	return positions, nil
}

// BreakoutSignals buys every position above the resistance level and holds
// everywhere else.
func BreakoutSignals(closes series.Observations, resistance fixed.Point) (series.Signals, error) {
	if len(closes) == 0 {
		return nil, series.ErrEmptyInput
	}

	signals := make(series.Signals, len(closes))
	for i, c := range closes {
		action := series.Hold
		if c.Gt(resistance) {
			action = series.Buy
		}
		signals[i] = series.Signal{Action: action, Valid: true}
	}
	return signals, nil
}
