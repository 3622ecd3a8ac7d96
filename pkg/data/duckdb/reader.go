package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/peter-kozarec/tradekit/pkg/common"
	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

var ErrInvalidSymbol = errors.New("symbol must contain only letters, digits and underscores")

// The symbol names the bar table, so it must stay a plain identifier.
var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Reader streams daily bars of a symbol out of a duckdb database. Each
// symbol lives in its own <symbol>_bars table ordered by timestamp.
type Reader struct {
	dataSourceName string
	db             *sql.DB
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %v", err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	_ = r.db.Close()
}

func (r *Reader) LoadBars(ctx context.Context, symbol string, from, to time.Time, handler func(bar common.Bar) error) error {
	if !symbolPattern.MatchString(symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}

	query := fmt.Sprintf(`SELECT ts, open, high, low, close, volume FROM %s_bars WHERE ts BETWEEN ? AND ? ORDER BY ts`, symbol)

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return fmt.Errorf("error preparing query: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	for rows.Next() {
		var timeStamp time.Time
		var open, high, low, closePrice, volume float64

		if err := rows.Scan(&timeStamp, &open, &high, &low, &closePrice, &volume); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}

		bar := common.Bar{Symbol: symbol, TimeStamp: timeStamp, Period: 24 * time.Hour}
		if bar.Open, err = fixed.FromFloat64(open); err != nil {
			return fmt.Errorf("invalid open at %s: %w", timeStamp, err)
		}
		if bar.High, err = fixed.FromFloat64(high); err != nil {
			return fmt.Errorf("invalid high at %s: %w", timeStamp, err)
		}
		if bar.Low, err = fixed.FromFloat64(low); err != nil {
			return fmt.Errorf("invalid low at %s: %w", timeStamp, err)
		}
		if bar.Close, err = fixed.FromFloat64(closePrice); err != nil {
			return fmt.Errorf("invalid close at %s: %w", timeStamp, err)
		}
		if bar.Volume, err = fixed.FromFloat64(volume); err != nil {
			return fmt.Errorf("invalid volume at %s: %w", timeStamp, err)
		}

		if err := handler(bar); err != nil {
			return fmt.Errorf("error processing bar: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error scanning rows: %w", err)
	}

	return nil
}
