package backtest

import (
	"fmt"

	"github.com/peter-kozarec/tradekit/pkg/series"
	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

// SharpeRatio computes the risk-adjusted excess return of a return series
// against a risk-free rate, using the population standard deviation. A
// dispersion of zero fails with ErrDegenerateSeries instead of producing
// a NaN sentinel; intermediate overflow surfaces as ErrInvalidData.
func SharpeRatio(returns []fixed.Point, riskFreeRate fixed.Point) (fixed.Point, error) {
	if len(returns) == 0 {
		return fixed.Point{}, series.ErrEmptyInput
	}

	excess := make([]fixed.Point, len(returns))
	for i, r := range returns {
		e, err := r.SubChecked(riskFreeRate)
		if err != nil {
			return fixed.Point{}, fmt.Errorf("%w: excess return at %d: %v", series.ErrInvalidData, i, err)
		}
		excess[i] = e
	}

	mean, err := fixed.Mean(excess)
	if err != nil {
		return fixed.Point{}, fmt.Errorf("%w: mean excess return: %v", series.ErrInvalidData, err)
	}
	volatility, err := fixed.StdDev(excess, mean)
	if err != nil {
		return fixed.Point{}, fmt.Errorf("%w: volatility: %v", series.ErrInvalidData, err)
	}
	if volatility.IsZero() {
		return fixed.Point{}, series.ErrDegenerateSeries
	}

	ratio, err := mean.DivChecked(volatility)
	if err != nil {
		return fixed.Point{}, fmt.Errorf("%w: ratio: %v", series.ErrInvalidData, err)
	}
	return ratio, nil
}
