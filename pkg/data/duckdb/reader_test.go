package duckdb

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestReader_LoadBarsRejectsBadSymbol(t *testing.T) {
	// Validation runs before any database work, so no Connect is needed.
	reader := NewReader("bars.db")

	symbols := []string{
		"",
		"eur usd",
		"eurusd; DROP TABLE eurusd_bars",
		"eur-usd",
		`eur"usd`,
	}
	for _, symbol := range symbols {
		err := reader.LoadBars(context.Background(), symbol, time.Time{}, time.Now(), nil)
		if !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("LoadBars(%q) error = %v, want ErrInvalidSymbol", symbol, err)
		}
	}
}
