package indicators

import (
	"fmt"

	"github.com/peter-kozarec/tradekit/pkg/series"
	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

// Sma computes the simple moving average over a trailing window. The first
// window-1 positions of the result are undefined. A window larger than the
// series yields an all-undefined result.
func Sma(data series.Observations, window int) (series.Indicator, error) {
	if window <= 0 {
		return nil, series.ErrInvalidWindow
	}
	if len(data) == 0 {
		return nil, series.ErrEmptyInput
	}

	result := make(series.Indicator, len(data))

	sum := fixed.Zero
	var err error
	for i, v := range data {
		if sum, err = sum.AddChecked(v); err != nil {
			return nil, fmt.Errorf("%w: rolling sum at %d: %v", series.ErrInvalidData, i, err)
		}
		if i >= window {
			if sum, err = sum.SubChecked(data[i-window]); err != nil {
				return nil, fmt.Errorf("%w: rolling sum at %d: %v", series.ErrInvalidData, i, err)
			}
		}
		if i >= window-1 {
			result[i] = series.Value{Point: sum.DivInt(window), Valid: true}
		}
	}
	return result, nil
}
