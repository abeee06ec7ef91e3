package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"testing"
)

const testImageSize = 128

func generateImage(width, height int, randomizePixelOpaqueness bool) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Min: image.Point{}, Max: image.Point{X: width, Y: height}})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alpha := uint8(255)
			if randomizePixelOpaqueness {
				alpha = randUint8()
			}
			img.Set(x, y, color.NRGBA{R: uint8(x * 255 / width), G: uint8(y * 255 / height), B: randUint8(), A: alpha})
		}
	}
	return img
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}

func encodeTestPNG(t testing.TB, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Error encoding test image: %v", err)
	}
	return buf.Bytes()
}
