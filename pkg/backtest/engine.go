package backtest

import (
	"errors"

	"github.com/peter-kozarec/tradekit/pkg/series"
	"github.com/peter-kozarec/tradekit/pkg/utility"
)

var ErrNilStrategy = errors.New("strategy must not be nil")

// Strategy is an opaque signal generator. The engine never looks inside it;
// any function from observations to aligned signals can be backtested.
type Strategy func(series.Observations) (series.Signals, error)

// Result summarizes one strategy run over a data set.
type Result struct {
	RunID   utility.RunID
	Signals series.Signals

	Buys      int
	Sells     int
	Holds     int
	Undefined int
}

// Run applies the strategy to the data and tallies the generated signals.
func Run(data series.Observations, strategy Strategy) (Result, error) {
	if strategy == nil {
		return Result{}, ErrNilStrategy
	}
	if len(data) == 0 {
		return Result{}, series.ErrEmptyInput
	}

	signals, err := strategy(data)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		RunID:   utility.GetRunID(),
		Signals: signals,
	}
	for _, s := range signals {
		switch {
		case !s.Valid:
			result.Undefined++
		case s.Action == series.Buy:
			result.Buys++
		case s.Action == series.Sell:
			result.Sells++
		default:
			result.Holds++
		}
	}
	return result, nil
}
