package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type dataConfig struct {
	Csv    string `toml:"csv"`
	DuckDb string `toml:"duckdb"`
	From   string `toml:"from"`
	To     string `toml:"to"`
}

type crossoverConfig struct {
	ShortWindow int `toml:"short_window"`
	LongWindow  int `toml:"long_window"`
	Precision   int `toml:"precision"`
}

type reversionConfig struct {
	EntryThreshold float64 `toml:"entry_threshold"`
	ExitThreshold  float64 `toml:"exit_threshold"`
}

type levelsConfig struct {
	Window int `toml:"window"`
}

type outputConfig struct {
	Chart string `toml:"chart"`
}

type config struct {
	Symbol    string          `toml:"symbol"`
	Data      dataConfig      `toml:"data"`
	Crossover crossoverConfig `toml:"crossover"`
	Reversion reversionConfig `toml:"mean_reversion"`
	Levels    levelsConfig    `toml:"levels"`
	Output    outputConfig    `toml:"output"`
}

func defaultConfig() config {
	return config{
		Symbol:    "EURUSD",
		Crossover: crossoverConfig{ShortWindow: 20, LongWindow: 50, Precision: 4},
		Reversion: reversionConfig{EntryThreshold: 1.5, ExitThreshold: 0.5},
		Levels:    levelsConfig{Window: 20},
		Output:    outputConfig{Chart: "trend.html"},
	}
}

func loadConfig(path string) (config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultConfig()
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
