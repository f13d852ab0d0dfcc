package align

import (
	"math"
	"testing"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		in     float64
		places int
		want   float64
	}{
		{0.4, 3, 0.4},
		{1.86633333, 3, 1.866},
		{0.0625, 3, 0.062},
		{0.0635, 3, 0.064},
		{2.675, 2, 2.67},
		{1.0005, 3, 1.0},
		{-1.2345678, 3, -1.235},
		{12.5, 0, 12},
	}
	for _, tt := range tests {
		if got := roundTo(tt.in, tt.places); got != tt.want {
			t.Errorf("roundTo(%v, %d) = %v, want %v", tt.in, tt.places, got, tt.want)
		}
	}
}

func TestRoundToNonFinite(t *testing.T) {
	if got := roundTo(math.Inf(1), 3); !math.IsInf(got, 1) {
		t.Errorf("roundTo(+Inf) = %v", got)
	}
	if got := roundTo(math.NaN(), 3); !math.IsNaN(got) {
		t.Errorf("roundTo(NaN) = %v", got)
	}
}
