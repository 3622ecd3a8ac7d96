package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/peter-kozarec/tradekit/pkg/series"
	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

const dateLayout = "2006-01-02"

// PriceHistory is a dated close-price series loaded from a CSV file.
type PriceHistory struct {
	Dates  []time.Time
	Closes series.Observations
}

// Load reads a two-column date,close CSV file. A header row is skipped if
// the first field does not parse as a date.
func Load(path string) (PriceHistory, error) {
	f, err := os.Open(path)
	if err != nil {
		return PriceHistory{}, fmt.Errorf("unable to open %q: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Read(f)
}

// Read parses date,close records from r.
func Read(r io.Reader) (PriceHistory, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	var history PriceHistory
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return PriceHistory{}, fmt.Errorf("error reading record: %w", err)
		}
		line++

		date, err := time.Parse(dateLayout, record[0])
		if err != nil {
			if line == 1 {
				// Header row.
				continue
			}
			return PriceHistory{}, fmt.Errorf("invalid date %q on line %d: %w", record[0], line, err)
		}

		value, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return PriceHistory{}, fmt.Errorf("%w: invalid close %q on line %d", series.ErrInvalidData, record[1], line)
		}
		closePrice, err := fixed.FromFloat64(value)
		if err != nil {
			return PriceHistory{}, fmt.Errorf("%w: non-finite close on line %d", series.ErrInvalidData, line)
		}

		history.Dates = append(history.Dates, date)
		history.Closes = append(history.Closes, closePrice)
	}

	if len(history.Closes) == 0 {
		return PriceHistory{}, series.ErrEmptyInput
	}
	return history, nil
}
