package disruptor

import (
	"math"
	"testing"
)

func TestClamp255(t *testing.T) {
	tests := []struct {
		in       float64
		expected byte
	}{
		{-300, 0},
		{-0.4, 0},
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{127.2, 127},
		{254.49, 254},
		{254.5, 255},
		{255, 255},
		{1e9, 255},
		{math.Inf(-1), 0},
		{math.Inf(1), 255},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := Clamp255(tt.in); got != tt.expected {
			t.Errorf("Clamp255(%v) = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}
