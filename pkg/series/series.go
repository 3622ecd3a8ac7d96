package series

import (
	"fmt"

	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

// Observations is an ordered numeric series, one value per time step.
type Observations []fixed.Point

// FromFloat64s validates and converts raw float input. Non-finite entries
// are rejected with ErrInvalidData.
func FromFloat64s(values []float64) (Observations, error) {
	result := make(Observations, len(values))
	for i, v := range values {
		p, err := fixed.FromFloat64(v)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidData, i, err)
		}
		result[i] = p
	}
	return result, nil
}

// Value is a single indicator sample. Valid reports whether the sample is
// defined at its position, which is distinct from the value being zero.
type Value struct {
	Point fixed.Point
	Valid bool
}

// Indicator is an indicator series aligned 1:1 with its input observations.
type Indicator []Value

// LeadingUndefined returns the length of the undefined warm-up prefix.
func (ind Indicator) LeadingUndefined() int {
	for i, v := range ind {
		if v.Valid {
			return i
		}
	}
	return len(ind)
}

// Defined returns the count of defined samples.
func (ind Indicator) Defined() int {
	count := 0
	for _, v := range ind {
		if v.Valid {
			count++
		}
	}
	return count
}

type Action int8

const (
	Sell Action = -1
	Hold Action = 0
	Buy  Action = 1
)

func (a Action) String() string {
	switch a {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "hold"
	}
}

// Signal is a single classified position. Valid is false during warm-up
// periods where an underlying indicator is undefined.
type Signal struct {
	Action Action
	Valid  bool
}

type Signals []Signal

// LeadingUndefined returns the length of the undefined warm-up prefix.
func (s Signals) LeadingUndefined() int {
	for i, sig := range s {
		if sig.Valid {
			return i
		}
	}
	return len(s)
}

// Count returns how many valid signals carry the given action.
func (s Signals) Count(action Action) int {
	count := 0
	for _, sig := range s {
		if sig.Valid && sig.Action == action {
			count++
		}
	}
	return count
}
