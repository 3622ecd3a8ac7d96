package strategy

import (
	"fmt"

	"github.com/peter-kozarec/tradekit/pkg/series"
	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

// ZScores standardizes the whole series against its own mean and sample
// standard deviation. A series too short or too flat to have a nonzero
// sample deviation fails with ErrDegenerateSeries so that the division by
// zero never leaks out as a silent NaN. Intermediate overflow of the
// deviation arithmetic surfaces as ErrInvalidData.
func ZScores(data series.Observations) ([]fixed.Point, error) {
	if len(data) == 0 {
		return nil, series.ErrEmptyInput
	}

	mean, err := fixed.Mean(data)
	if err != nil {
		return nil, fmt.Errorf("%w: mean: %v", series.ErrInvalidData, err)
	}
	stdDev, err := fixed.SampleStdDev(data, mean)
	if err != nil {
		return nil, fmt.Errorf("%w: deviation: %v", series.ErrInvalidData, err)
	}
	if stdDev.IsZero() {
		return nil, series.ErrDegenerateSeries
	}

	result := make([]fixed.Point, len(data))
	for i, v := range data {
		diff, err := v.SubChecked(mean)
		if err != nil {
			return nil, fmt.Errorf("%w: z-score at %d: %v", series.ErrInvalidData, i, err)
		}
		z, err := diff.DivChecked(stdDev)
		if err != nil {
			return nil, fmt.Errorf("%w: z-score at %d: %v", series.ErrInvalidData, i, err)
		}
		result[i] = z
	}
	return result, nil
}

// MeanReversionSignals classifies each position of the series by its z-score:
// below -entry buys, above entry sells, inside [-exit, exit] holds. Scores
// strictly between the exit and entry thresholds keep the initial hold
// classification; no rule reassigns them and that default is intentional.
func MeanReversionSignals(data series.Observations, entry, exit fixed.Point) (series.Signals, error) {
	if entry.Lt(fixed.Zero) || exit.Lt(fixed.Zero) {
		return nil, series.ErrInvalidThreshold
	}

	zScores, err := ZScores(data)
	if err != nil {
		return nil, err
	}

	signals := make(series.Signals, len(data))
	for i, z := range zScores {
		action := series.Hold
		if z.Lt(entry.Neg()) {
			action = series.Buy
		} else if z.Gt(entry) {
			action = series.Sell
		}
		signals[i] = series.Signal{Action: action, Valid: true}
	}
	return signals, nil
}
