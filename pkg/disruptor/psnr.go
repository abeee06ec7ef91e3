package disruptor

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDimensionMismatch = errors.New("original and processed buffers differ in length")
)

// PSNR returns the peak signal-to-noise ratio in dB between two byte buffers, alpha included.
// Identical buffers yield +Inf.
func PSNR(original, processed []byte) (float64, error) {
	if len(original) != len(processed) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(original), len(processed))
	}

	var sum float64
	for i := range original {
		diff := float64(original[i]) - float64(processed[i])
		sum += diff * diff
	}
	if sum == 0 {
		return math.Inf(1), nil
	}

	mse := sum / float64(len(original))
	return 20 * math.Log10(255/math.Sqrt(mse)), nil
}
