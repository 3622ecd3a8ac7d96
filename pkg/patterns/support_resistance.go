package patterns

import (
	"github.com/peter-kozarec/tradekit/pkg/series"
	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

// Levels is a single support/resistance snapshot over the trailing window
// of a high/low series pair.
type Levels struct {
	Support    fixed.Point
	Resistance fixed.Point
}

// SupportResistance extracts the minimum of the trailing window lows and the
// maximum of the trailing window highs. This is one snapshot over the tail
// of the series, not a rolling indicator.
func SupportResistance(highs, lows series.Observations, window int) (Levels, error) {
	if len(highs) == 0 || len(lows) == 0 {
		return Levels{}, series.ErrEmptyInput
	}
	if len(highs) != len(lows) {
		return Levels{}, series.ErrInvalidData
	}
	if window <= 0 || window > len(highs) {
		return Levels{}, series.ErrInvalidWindow
	}

	return Levels{
		Support:    fixed.Min(lows[len(lows)-window:]),
		Resistance: fixed.Max(highs[len(highs)-window:]),
	}, nil
}
