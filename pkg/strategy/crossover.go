package strategy

import (
	"time"

	"github.com/peter-kozarec/tradekit/pkg/indicators"
	"github.com/peter-kozarec/tradekit/pkg/series"
)

// TrendAnalysis holds the two weighted moving averages of a crossover run
// together with the classified signals. All three are aligned 1:1 with the
// input prices.
type TrendAnalysis struct {
	ShortWma series.Indicator
	LongWma  series.Indicator
	Signals  series.Signals
}

// AnalyzeTrend classifies each position of the price series by comparing a
// short-window WMA against a long-window WMA. Positions before longWindow-1
// are undefined regardless of the short window's own warm-up. The caller is
// expected to pass shortWindow < longWindow, but the roles simply swap if
// the windows are reversed.
func AnalyzeTrend(prices series.Observations, shortWindow, longWindow, precision int) (TrendAnalysis, error) {
	shortWma, err := indicators.WmaPrecision(prices, shortWindow, precision)
	if err != nil {
		return TrendAnalysis{}, err
	}
	longWma, err := indicators.WmaPrecision(prices, longWindow, precision)
	if err != nil {
		return TrendAnalysis{}, err
	}

	signals := make(series.Signals, len(prices))
	for i := longWindow - 1; i < len(prices); i++ {
		// When the windows are passed in reverse order the short average can
		// still be warming up here; neither comparison fires and the
		// position classifies as hold.
		action := series.Hold
		if shortWma[i].Valid && longWma[i].Valid {
			if shortWma[i].Point.Gt(longWma[i].Point) {
				action = series.Buy
			} else if shortWma[i].Point.Lt(longWma[i].Point) {
				action = series.Sell
			}
		}
		signals[i] = series.Signal{Action: action, Valid: true}
	}

	return TrendAnalysis{
		ShortWma: shortWma,
		LongWma:  longWma,
		Signals:  signals,
	}, nil
}

// DatedTrendAnalysis pairs a trend analysis with the timestamp keys of its
// input series, for callers that chart or report the result.
type DatedTrendAnalysis struct {
	Dates []time.Time
	TrendAnalysis
}

// AnalyzeTrendDated runs AnalyzeTrend over a price series keyed by dates.
// The two slices must have equal length.
func AnalyzeTrendDated(dates []time.Time, prices series.Observations, shortWindow, longWindow, precision int) (DatedTrendAnalysis, error) {
	if len(dates) != len(prices) {
		return DatedTrendAnalysis{}, series.ErrInvalidData
	}

	analysis, err := AnalyzeTrend(prices, shortWindow, longWindow, precision)
	if err != nil {
		return DatedTrendAnalysis{}, err
	}

	return DatedTrendAnalysis{
		Dates:         dates,
		TrendAnalysis: analysis,
	}, nil
}
