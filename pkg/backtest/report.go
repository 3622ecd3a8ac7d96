package backtest

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"
)

// Report is the printable summary of a strategy run.
type Report struct {
	Symbol    string
	DataSize  int
	Buys      int
	Sells     int
	Holds     int
	Undefined int
}

func NewReport(symbol string, dataSize int, result Result) Report {
	return Report{
		Symbol:    symbol,
		DataSize:  dataSize,
		Buys:      result.Buys,
		Sells:     result.Sells,
		Holds:     result.Holds,
		Undefined: result.Undefined,
	}
}

func (report Report) Print(logger *zap.Logger) {
	logger.Info("signal report",
		zap.String("symbol", report.Symbol),
		zap.Int("observations", report.DataSize),
		zap.Int("buys", report.Buys),
		zap.Int("sells", report.Sells),
		zap.Int("holds", report.Holds),
		zap.Int("warmup", report.Undefined),
	)
}

// Table renders the report as a plain-text table.
func (report Report) Table() string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"symbol", report.Symbol},
		{"observations", report.DataSize},
		{"buy signals", report.Buys},
		{"sell signals", report.Sells},
		{"hold signals", report.Holds},
		{"warm-up positions", report.Undefined},
	})
	return t.Render()
}
