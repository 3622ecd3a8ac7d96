package indicators

import (
	"fmt"

	"github.com/peter-kozarec/tradekit/pkg/series"
	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

// Wma computes the linearly weighted moving average over a trailing window.
// The most recent observation carries weight window, the oldest weight 1.
// The first window-1 positions of the result are undefined.
func Wma(data series.Observations, window int) (series.Indicator, error) {
	if window <= 0 {
		return nil, series.ErrInvalidWindow
	}
	if len(data) == 0 {
		return nil, series.ErrEmptyInput
	}

	result := make(series.Indicator, len(data))
	weightSum := window * (window + 1) / 2

	for i := window - 1; i < len(data); i++ {
		weighted := fixed.Zero
		for k := 0; k < window; k++ {
			term, err := data[i-window+1+k].MulIntChecked(k + 1)
			if err != nil {
				return nil, fmt.Errorf("%w: weighted sum at %d: %v", series.ErrInvalidData, i, err)
			}
			if weighted, err = weighted.AddChecked(term); err != nil {
				return nil, fmt.Errorf("%w: weighted sum at %d: %v", series.ErrInvalidData, i, err)
			}
		}
		result[i] = series.Value{Point: weighted.DivInt(weightSum), Valid: true}
	}
	return result, nil
}

// WmaPrecision is Wma with each defined value rounded to the given number of
// decimal digits using half-even rounding.
func WmaPrecision(data series.Observations, window, precision int) (series.Indicator, error) {
	if precision < 0 {
		return nil, series.ErrInvalidData
	}

	result, err := Wma(data, window)
	if err != nil {
		return nil, err
	}

	for i, v := range result {
		if v.Valid {
			result[i].Point = v.Point.Rescale(precision)
		}
	}
	return result, nil
}
