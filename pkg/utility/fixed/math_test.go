package fixed

import (
	"testing"
)

func points(values ...float64) []Point {
	result := make([]Point, len(values))
	for i, v := range values {
		result[i] = MustFromFloat64(v)
	}
	return result
}

func TestFixedMath_Mean(t *testing.T) {
	tests := []struct {
		name string
		data []Point
		want Point
	}{
		{"empty", nil, Zero},
		{"single", points(5), MustFromFloat64(5)},
		{"simple", points(1, 2, 3, 4, 5), MustFromFloat64(3)},
		{"prices", points(50, 52, 51, 49, 48, 47, 48, 51, 55, 54), MustFromFloat64(50.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean(tt.data)
			if err != nil {
				t.Fatalf("Mean() error = %v", err)
			}
			if !got.Eq(tt.want) {
				t.Errorf("Mean() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFixedMath_MeanOverflow(t *testing.T) {
	if _, err := Mean(points(9e18, 9e18)); err == nil {
		t.Error("Expected an error when the running sum exceeds the coefficient range")
	}
}

func TestFixedMath_SampleStdDev(t *testing.T) {
	data := points(10, 12, 14, 16, 18)
	mean, err := Mean(data)
	if err != nil {
		t.Fatalf("Mean() error = %v", err)
	}

	stdDev, err := SampleStdDev(data, mean)
	if err != nil {
		t.Fatalf("SampleStdDev() error = %v", err)
	}
	got, _ := stdDev.Float64()
	want := 3.1622776601683795

	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > 0.000001 {
		t.Errorf("SampleStdDev() = %v, want %v", got, want)
	}
}

func TestFixedMath_StdDevDegenerate(t *testing.T) {
	if got, err := StdDev(points(5), MustFromFloat64(5)); err != nil || !got.IsZero() {
		t.Errorf("Expected zero std dev for a single point, got %s, %v", got, err)
	}
	if got, err := SampleStdDev(nil, Zero); err != nil || !got.IsZero() {
		t.Errorf("Expected zero sample std dev for empty input, got %s, %v", got, err)
	}
	if got, err := SampleStdDev(points(3, 3, 3, 3), MustFromFloat64(3)); err != nil || !got.IsZero() {
		t.Errorf("Expected zero sample std dev for a constant series, got %s, %v", got, err)
	}
}

func TestFixedMath_StdDevOverflow(t *testing.T) {
	// Each value is within range but the squared deviations are not.
	data := points(1e15, 2e15, 3e15, 4e15)
	mean, err := Mean(data)
	if err != nil {
		t.Fatalf("Mean() error = %v", err)
	}

	if _, err := SampleStdDev(data, mean); err == nil {
		t.Error("Expected an error when squared deviations exceed the coefficient range")
	}
	if _, err := StdDev(data, mean); err == nil {
		t.Error("Expected an error when squared deviations exceed the coefficient range")
	}
}

func TestFixedMath_MinMax(t *testing.T) {
	data := points(3, 1, 4, 1, 5, 9, 2, 6)

	if got := Min(data); !got.Eq(One) {
		t.Errorf("Min() = %s, want 1", got)
	}
	if got := Max(data); !got.Eq(MustFromFloat64(9)) {
		t.Errorf("Max() = %s, want 9", got)
	}
}

func TestFixedMath_SampleVariance(t *testing.T) {
	data := points(1, 2, 3, 4, 5)
	mean, err := Mean(data)
	if err != nil {
		t.Fatalf("Mean() error = %v", err)
	}

	if got, err := SampleVariance(data, mean); err != nil || !got.Eq(MustFromFloat64(2.5)) {
		t.Errorf("SampleVariance() = %s, %v, want 2.5", got, err)
	}
	if got, err := Variance(data, mean); err != nil || !got.Eq(MustFromFloat64(2)) {
		t.Errorf("Variance() = %s, %v, want 2", got, err)
	}
}
