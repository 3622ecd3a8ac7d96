package chart

import (
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/peter-kozarec/tradekit/pkg/series"
	"github.com/peter-kozarec/tradekit/pkg/strategy"
)

const dateLayout = "2006-01-02"

// RenderTrend writes an HTML line chart of the close prices and the two
// crossover averages, with buy and sell positions marked at the close
// price. Warm-up positions render as gaps.
func RenderTrend(w io.Writer, symbol string, dates []time.Time, closes series.Observations, analysis strategy.TrendAnalysis) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    symbol,
			Subtitle: "weighted moving average crossover",
		}),
	)

	xAxis := make([]string, len(dates))
	for i, d := range dates {
		xAxis[i] = d.Format(dateLayout)
	}

	line.SetXAxis(xAxis).
		AddSeries("close", pricePoints(closes)).
		AddSeries("short wma", indicatorPoints(analysis.ShortWma)).
		AddSeries("long wma", indicatorPoints(analysis.LongWma))

	markers := charts.NewScatter()
	markers.SetXAxis(xAxis).
		AddSeries("buy", signalPoints(closes, analysis.Signals, series.Buy)).
		AddSeries("sell", signalPoints(closes, analysis.Signals, series.Sell))
	line.Overlap(markers)

	return line.Render(w)
}

func pricePoints(data series.Observations) []opts.LineData {
	result := make([]opts.LineData, len(data))
	for i, v := range data {
		f, _ := v.Float64()
		result[i] = opts.LineData{Value: f}
	}
	return result
}

func indicatorPoints(ind series.Indicator) []opts.LineData {
	result := make([]opts.LineData, len(ind))
	for i, v := range ind {
		if !v.Valid {
			result[i] = opts.LineData{Value: nil}
			continue
		}
		f, _ := v.Point.Float64()
		result[i] = opts.LineData{Value: f}
	}
	return result
}

// signalPoints places a marker at the close price of every position carrying
// the given action; all other positions stay empty so nothing is drawn there.
func signalPoints(closes series.Observations, signals series.Signals, action series.Action) []opts.ScatterData {
	result := make([]opts.ScatterData, len(signals))
	for i, sig := range signals {
		if !sig.Valid || sig.Action != action {
			result[i] = opts.ScatterData{Value: nil}
			continue
		}
		f, _ := closes[i].Float64()
		result[i] = opts.ScatterData{Value: f}
	}
	return result
}
