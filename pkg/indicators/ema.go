package indicators

import (
	"fmt"

	"github.com/peter-kozarec/tradekit/pkg/series"
	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

// Ema computes the exponential moving average with alpha = 2/(window+1).
//
// The recursion is deliberately not the textbook SMA-seeded variant: position
// 0 is seeded with the raw observation and is always defined, positions
// 1..window-2 are undefined, and the first position at or after window-1
// falls back to the raw observation whenever the previous sample is
// undefined. Existing consumers depend on this exact warm-up behavior.
func Ema(data series.Observations, window int) (series.Indicator, error) {
	if window <= 0 {
		return nil, series.ErrInvalidWindow
	}
	if len(data) == 0 {
		return nil, series.ErrEmptyInput
	}

	alpha := fixed.Two.DivInt(window + 1)
	decay := fixed.One.Sub(alpha)

	result := make(series.Indicator, len(data))
	result[0] = series.Value{Point: data[0], Valid: true}

	for i := 1; i < len(data); i++ {
		if i < window-1 {
			continue
		}
		prev := result[i-1]
		if !prev.Valid {
			result[i] = series.Value{Point: data[i], Valid: true}
			continue
		}
		weighted, err := alpha.MulChecked(data[i])
		if err != nil {
			return nil, fmt.Errorf("%w: smoothing at %d: %v", series.ErrInvalidData, i, err)
		}
		carried, err := decay.MulChecked(prev.Point)
		if err != nil {
			return nil, fmt.Errorf("%w: smoothing at %d: %v", series.ErrInvalidData, i, err)
		}
		smoothed, err := weighted.AddChecked(carried)
		if err != nil {
			return nil, fmt.Errorf("%w: smoothing at %d: %v", series.ErrInvalidData, i, err)
		}
		result[i] = series.Value{Point: smoothed, Valid: true}
	}
	return result, nil
}
