package indicators

import (
	"errors"
	"testing"

	"github.com/peter-kozarec/tradekit/pkg/series"
)

func TestWma(t *testing.T) {
	tests := []struct {
		name   string
		data   []float64
		window int
		want   []float64
	}{
		{
			name:   "window of three",
			data:   []float64{1, 2, 3, 4, 5},
			window: 3,
			want:   []float64{undefined, undefined, 2.3333333333333335, 3.3333333333333335, 4.333333333333333},
		},
		{
			name:   "window of one is identity",
			data:   []float64{7, 8, 9},
			window: 1,
			want:   []float64{7, 8, 9},
		},
		{
			name:   "window equals series length",
			data:   []float64{1, 2, 3, 4},
			window: 4,
			want:   []float64{undefined, undefined, undefined, 3.0},
		},
		{
			name:   "window exceeds series length",
			data:   []float64{1, 2, 3},
			window: 4,
			want:   []float64{undefined, undefined, undefined},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Wma(observations(t, tt.data...), tt.window)
			if err != nil {
				t.Fatalf("Wma() error = %v", err)
			}
			assertIndicator(t, got, tt.want)
		})
	}
}

func TestWma_ConstantSeries(t *testing.T) {
	// A weighted average of a constant is the constant, for any window
	// and any precision.
	data := observations(t, 42.5, 42.5, 42.5, 42.5, 42.5, 42.5)

	for window := 1; window <= len(data); window++ {
		for _, precision := range []int{1, 2, 6} {
			got, err := WmaPrecision(data, window, precision)
			if err != nil {
				t.Fatalf("WmaPrecision(window=%d, precision=%d) error = %v", window, precision, err)
			}
			for i := window - 1; i < len(got); i++ {
				v, _ := got[i].Point.Float64()
				if !got[i].Valid || v != 42.5 {
					t.Errorf("WmaPrecision(window=%d, precision=%d) position %d = %v, want 42.5",
						window, precision, i, v)
				}
			}
		}
	}
}

func TestWmaPrecision(t *testing.T) {
	data := observations(t, 100, 102, 104, 106, 108)

	tests := []struct {
		name      string
		precision int
		want      []float64
	}{
		{"two digits", 2, []float64{undefined, undefined, 102.67, 104.67, 106.67}},
		{"four digits", 4, []float64{undefined, undefined, 102.6667, 104.6667, 106.6667}},
		{"six digits", 6, []float64{undefined, undefined, 102.666667, 104.666667, 106.666667}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WmaPrecision(data, 3, tt.precision)
			if err != nil {
				t.Fatalf("WmaPrecision() error = %v", err)
			}
			assertIndicator(t, got, tt.want)
		})
	}
}

func TestWmaPrecision_Rounding(t *testing.T) {
	got, err := WmaPrecision(observations(t, 100, 102, 104, 106, 108), 3, 2)
	if err != nil {
		t.Fatalf("WmaPrecision() error = %v", err)
	}
	// (100*1 + 102*2 + 104*3) / 6 = 102.666..., rounded to 102.67 exactly.
	if got[2].Point.String() != "102.67" {
		t.Errorf("Expected rounded value 102.67, got %s", got[2].Point)
	}
}

func TestWma_Idempotence(t *testing.T) {
	data := observations(t, 5, 9, 2, 8, 3, 7, 4)

	first, err := Wma(data, 3)
	if err != nil {
		t.Fatalf("Wma() error = %v", err)
	}
	second, err := Wma(data, 3)
	if err != nil {
		t.Fatalf("Wma() error = %v", err)
	}

	for i := range first {
		if first[i].Valid != second[i].Valid {
			t.Fatalf("Validity differs at position %d", i)
		}
		if first[i].Valid && !first[i].Point.Eq(second[i].Point) {
			t.Errorf("Position %d differs between runs: %s vs %s", i, first[i].Point, second[i].Point)
		}
	}
}

func TestWma_Errors(t *testing.T) {
	data := observations(t, 1, 2, 3)

	if _, err := Wma(data, 0); !errors.Is(err, series.ErrInvalidWindow) {
		t.Errorf("Wma(window=0) error = %v, want ErrInvalidWindow", err)
	}
	if _, err := Wma(nil, 2); !errors.Is(err, series.ErrEmptyInput) {
		t.Errorf("Wma(empty) error = %v, want ErrEmptyInput", err)
	}
	if _, err := WmaPrecision(data, 2, -1); !errors.Is(err, series.ErrInvalidData) {
		t.Errorf("WmaPrecision(precision=-1) error = %v, want ErrInvalidData", err)
	}
}

func TestWma_WeightedSumOverflow(t *testing.T) {
	// The weight multiplication pushes representable observations past the
	// coefficient range.
	data := observations(t, 9e18, 9e18, 9e18)

	if _, err := Wma(data, 2); !errors.Is(err, series.ErrInvalidData) {
		t.Errorf("Wma() error = %v, want ErrInvalidData on weighted sum overflow", err)
	}
}

func BenchmarkWma(b *testing.B) {
	values := make([]float64, 1000)
	for i := range values {
		values[i] = 100 + float64(i%11)
	}
	data := observations(b, values...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Wma(data, 30)
	}
}
