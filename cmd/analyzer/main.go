package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/peter-kozarec/tradekit/internal/chart"
	"github.com/peter-kozarec/tradekit/internal/dbg"
	"github.com/peter-kozarec/tradekit/pkg/backtest"
	"github.com/peter-kozarec/tradekit/pkg/common"
	"github.com/peter-kozarec/tradekit/pkg/data/csvdata"
	"github.com/peter-kozarec/tradekit/pkg/data/duckdb"
	"github.com/peter-kozarec/tradekit/pkg/patterns"
	"github.com/peter-kozarec/tradekit/pkg/series"
	"github.com/peter-kozarec/tradekit/pkg/strategy"
	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

const dateLayout = "2006-01-02"

func main() {
	configPath := flag.String("config", "analyzer.toml", "path to the TOML configuration file")
	flag.Parse()

	logger := dbg.NewDevLogger()
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	defer logger.Info("done")

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("error loading configuration", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dates, closes, err := loadCloses(ctx, cfg)
	if err != nil {
		logger.Fatal("error loading price data", zap.Error(err))
	}
	logger.Info("price data loaded",
		zap.String("symbol", cfg.Symbol),
		zap.Int("observations", len(closes)))

	analysis, err := strategy.AnalyzeTrendDated(dates, closes,
		cfg.Crossover.ShortWindow, cfg.Crossover.LongWindow, cfg.Crossover.Precision)
	if err != nil {
		logger.Fatal("error running crossover analysis", zap.Error(err))
	}

	entry, err := fixed.FromFloat64(cfg.Reversion.EntryThreshold)
	if err != nil {
		logger.Fatal("invalid entry threshold", zap.Error(err))
	}
	exit, err := fixed.FromFloat64(cfg.Reversion.ExitThreshold)
	if err != nil {
		logger.Fatal("invalid exit threshold", zap.Error(err))
	}
	reversion, err := strategy.MeanReversionSignals(closes, entry, exit)
	if err != nil {
		logger.Fatal("error running mean reversion analysis", zap.Error(err))
	}
	logger.Info("mean reversion summary",
		zap.Int("buys", reversion.Count(series.Buy)),
		zap.Int("sells", reversion.Count(series.Sell)))

	levels, err := patterns.SupportResistance(closes, closes, cfg.Levels.Window)
	if err != nil {
		logger.Fatal("error detecting trading range", zap.Error(err))
	}
	logger.Info("recent trading range",
		zap.Stringer("support", levels.Support),
		zap.Stringer("resistance", levels.Resistance))

	result, err := backtest.Run(closes, func(data series.Observations) (series.Signals, error) {
		out, err := strategy.AnalyzeTrend(data,
			cfg.Crossover.ShortWindow, cfg.Crossover.LongWindow, cfg.Crossover.Precision)
		if err != nil {
			return nil, err
		}
		return out.Signals, nil
	})
	if err != nil {
		logger.Fatal("error running backtest", zap.Error(err))
	}

	report := backtest.NewReport(cfg.Symbol, len(closes), result)
	report.Print(logger)
	fmt.Println(report.Table())

	if cfg.Output.Chart != "" {
		if err := writeChart(cfg, analysis, closes); err != nil {
			logger.Fatal("error writing chart", zap.Error(err))
		}
		logger.Info("chart written", zap.String("path", cfg.Output.Chart))
	}
}

func loadCloses(ctx context.Context, cfg config) ([]time.Time, series.Observations, error) {
	if cfg.Data.Csv != "" {
		history, err := csvdata.Load(cfg.Data.Csv)
		if err != nil {
			return nil, nil, err
		}
		return history.Dates, history.Closes, nil
	}

	from, err := time.Parse(dateLayout, cfg.Data.From)
	if err != nil {
		return nil, nil, fmt.Errorf("parse data.from: %w", err)
	}
	to, err := time.Parse(dateLayout, cfg.Data.To)
	if err != nil {
		return nil, nil, fmt.Errorf("parse data.to: %w", err)
	}

	reader := duckdb.NewReader(cfg.Data.DuckDb)
	if err := reader.Connect(); err != nil {
		return nil, nil, err
	}
	defer reader.Close()

	var dates []time.Time
	var closes series.Observations
	err = reader.LoadBars(ctx, cfg.Symbol, from, to, func(bar common.Bar) error {
		dates = append(dates, bar.TimeStamp)
		closes = append(closes, bar.Close)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return dates, closes, nil
}

func writeChart(cfg config, analysis strategy.DatedTrendAnalysis, closes series.Observations) error {
	f, err := os.Create(cfg.Output.Chart)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	return chart.RenderTrend(f, cfg.Symbol, analysis.Dates, closes, analysis.TrendAnalysis)
}
