package historical

import (
	"fmt"
	"time"

	"github.com/peter-kozarec/tradekit/pkg/common"
	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

const invalidIndex = -1

// BinaryBar is the on-disk layout of one bar entry.
type BinaryBar struct {
	TimeStamp int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

func (binaryBar BinaryBar) ToBar(bar *common.Bar) error {
	var err error
	bar.TimeStamp = time.Unix(0, binaryBar.TimeStamp)
	if bar.Open, err = fixed.FromFloat64(binaryBar.Open); err != nil {
		return fmt.Errorf("invalid open: %w", err)
	}
	if bar.High, err = fixed.FromFloat64(binaryBar.High); err != nil {
		return fmt.Errorf("invalid high: %w", err)
	}
	if bar.Low, err = fixed.FromFloat64(binaryBar.Low); err != nil {
		return fmt.Errorf("invalid low: %w", err)
	}
	if bar.Close, err = fixed.FromFloat64(binaryBar.Close); err != nil {
		return fmt.Errorf("invalid close: %w", err)
	}
	if bar.Volume, err = fixed.FromFloat64(binaryBar.Volume); err != nil {
		return fmt.Errorf("invalid volume: %w", err)
	}
	return nil
}

// BarReader iterates bars of one symbol over a time range, locating the
// first entry with a binary search over the timestamp-ordered file.
type BarReader struct {
	source *Source[BinaryBar]

	symbol string
	from   int64
	to     int64
	idx    int64
}

func NewBarReader(source *Source[BinaryBar], symbol string, from, to time.Time) *BarReader {
	return &BarReader{
		source: source,
		symbol: symbol,
		from:   from.UnixNano(),
		to:     to.UnixNano(),
		idx:    invalidIndex,
	}
}

func (r *BarReader) GetNext() (common.Bar, error) {

	var bar common.Bar
	var binBar BinaryBar

	if r.idx == invalidIndex {
		if err := r.lookupStartIndex(); err != nil {
			return bar, err
		}
	}

	if err := r.source.Read(r.idx, &binBar); err != nil {
		return bar, fmt.Errorf("error reading entry at index %d: %w", r.idx, err)
	}
	r.idx++

	if binBar.TimeStamp < r.from {
		return bar, fmt.Errorf("timestamp is not from the proposed range")
	}

	if binBar.TimeStamp > r.to {
		return bar, ErrEof
	}

	if err := binBar.ToBar(&bar); err != nil {
		return bar, fmt.Errorf("error converting entry at index %d: %w", r.idx-1, err)
	}
	bar.Symbol = r.symbol

	return bar, nil
}

func (r *BarReader) lookupStartIndex() error {
	entryCount, err := r.source.EntryCount()
	if err != nil {
		return fmt.Errorf("error getting entry count: %w", err)
	}

	if entryCount == 0 {
		return fmt.Errorf("entry count is zero")
	}

	var entry BinaryBar

	low := int64(0)
	high := entryCount - 1

	for low <= high {
		mid := (low + high) / 2

		if err := r.source.Read(mid, &entry); err != nil {
			return fmt.Errorf("error reading entry at index %d: %w", mid, err)
		}

		if entry.TimeStamp < r.from {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	if low >= entryCount {
		return fmt.Errorf("no entry found with timestamp >= from")
	}

	r.idx = low
	return nil
}
