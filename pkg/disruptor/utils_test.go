package disruptor

import (
	"math/rand"
	"testing"
)

const testImageSize = 97

func generateBuffer(t testing.TB, width, height int) *PixelBuffer {
	t.Helper()
	pix := make([]byte, width*height*bytesPerPixel)
	if _, err := rand.Read(pix); err != nil {
		t.Fatalf("Error generating random pixels: %v", err)
	}
	buf, err := NewPixelBuffer(width, height, pix)
	if err != nil {
		t.Fatalf("Error creating pixel buffer: %v", err)
	}
	return buf
}

func generateSolidBuffer(t testing.TB, width, height int, r, g, b, a byte) *PixelBuffer {
	t.Helper()
	pix := make([]byte, width*height*bytesPerPixel)
	for i := 0; i < len(pix); i += bytesPerPixel {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
	buf, err := NewPixelBuffer(width, height, pix)
	if err != nil {
		t.Fatalf("Error creating pixel buffer: %v", err)
	}
	return buf
}

func assertAlphaUnchanged(t *testing.T, before, after *PixelBuffer) {
	t.Helper()
	for i := 3; i < len(before.Pix); i += bytesPerPixel {
		if before.Pix[i] != after.Pix[i] {
			t.Fatalf("Alpha at byte %d changed from %d to %d", i, before.Pix[i], after.Pix[i])
		}
	}
}

// drawsConsumed reports how many values gen produced since it was created from seed.
func drawsConsumed(seed int64, gen *Generator) int {
	return int(gen.counter - float64(seed))
}
