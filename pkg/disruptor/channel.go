package disruptor

import "math"

// Clamp255 rounds v half up and saturates it to a channel byte.
func Clamp255(v float64) byte {
	r := math.Floor(v + 0.5)
	if r <= 0 || math.IsNaN(r) {
		return 0
	}
	if r >= 255 {
		return 255
	}
	return byte(r)
}
