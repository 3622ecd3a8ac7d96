package series

import (
	"errors"
	"math"
	"testing"

	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

func TestSeries_FromFloat64s(t *testing.T) {
	data, err := FromFloat64s([]float64{1.5, -2, 0})
	if err != nil {
		t.Fatalf("FromFloat64s() error = %v", err)
	}
	if len(data) != 3 {
		t.Fatalf("Expected 3 observations, got %d", len(data))
	}
	if !data[0].Eq(fixed.MustFromFloat64(1.5)) {
		t.Errorf("Expected first observation 1.5, got %s", data[0])
	}
}

func TestSeries_FromFloat64sInvalid(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"nan", []float64{1, math.NaN(), 3}},
		{"positive infinity", []float64{math.Inf(1)}},
		{"negative infinity", []float64{1, math.Inf(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromFloat64s(tt.values); !errors.Is(err, ErrInvalidData) {
				t.Errorf("FromFloat64s() error = %v, want ErrInvalidData", err)
			}
		})
	}
}

func TestSeries_IndicatorCounts(t *testing.T) {
	ind := Indicator{
		{Valid: false},
		{Valid: false},
		{Point: fixed.Two, Valid: true},
		{Point: fixed.Zero, Valid: true},
	}

	if got := ind.LeadingUndefined(); got != 2 {
		t.Errorf("LeadingUndefined() = %d, want 2", got)
	}
	if got := ind.Defined(); got != 2 {
		t.Errorf("Defined() = %d, want 2", got)
	}

	allUndefined := Indicator{{}, {}, {}}
	if got := allUndefined.LeadingUndefined(); got != 3 {
		t.Errorf("LeadingUndefined() = %d, want 3", got)
	}
}

func TestSeries_SignalCounts(t *testing.T) {
	signals := Signals{
		{Valid: false},
		{Action: Buy, Valid: true},
		{Action: Sell, Valid: true},
		{Action: Buy, Valid: true},
		{Action: Hold, Valid: true},
	}

	if got := signals.LeadingUndefined(); got != 1 {
		t.Errorf("LeadingUndefined() = %d, want 1", got)
	}
	if got := signals.Count(Buy); got != 2 {
		t.Errorf("Count(Buy) = %d, want 2", got)
	}
	if got := signals.Count(Sell); got != 1 {
		t.Errorf("Count(Sell) = %d, want 1", got)
	}
	if got := signals.Count(Hold); got != 1 {
		t.Errorf("Count(Hold) = %d, want 1", got)
	}
}

func TestSeries_ActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{Buy, "buy"},
		{Sell, "sell"},
		{Hold, "hold"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %s, want %s", tt.action, got, tt.want)
		}
	}
}
