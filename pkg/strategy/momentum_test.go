package strategy

import (
	"errors"
	"testing"

	"github.com/peter-kozarec/tradekit/pkg/series"
)

func TestMomentumSignals(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want []series.Action
	}{
		{
			name: "mixed moves",
			data: []float64{100, 101, 101, 99, 102},
			want: []series.Action{series.Hold, series.Buy, series.Hold, series.Sell, series.Buy},
		},
		{
			name: "single observation",
			data: []float64{5},
			want: []series.Action{series.Hold},
		},
		{
			name: "monotonic rise",
			data: []float64{1, 2, 3},
			want: []series.Action{series.Hold, series.Buy, series.Buy},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MomentumSignals(observations(t, tt.data...))
			if err != nil {
				t.Fatalf("MomentumSignals() error = %v", err)
			}
			assertActions(t, got, tt.want, 0)
		})
	}
}

func TestMomentumSignals_Empty(t *testing.T) {
	if _, err := MomentumSignals(nil); !errors.Is(err, series.ErrEmptyInput) {
		t.Errorf("MomentumSignals(empty) error = %v, want ErrEmptyInput", err)
	}
}
