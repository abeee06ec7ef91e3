package disruptor

import (
	"errors"
	"fmt"
	"image"
)

const bytesPerPixel = 4

var (
	ErrInvalidBuffer = errors.New("pixel buffer dimensions do not match its data")
)

// PixelBuffer holds width*height RGBA8 pixels in row-major order.
type PixelBuffer struct {
	Width, Height int
	Pix           []byte
}

func NewPixelBuffer(width, height int, pix []byte) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBuffer, width, height)
	}
	if len(pix) != width*height*bytesPerPixel {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrInvalidBuffer, width, height, width*height*bytesPerPixel, len(pix))
	}
	return &PixelBuffer{Width: width, Height: height, Pix: pix}, nil
}

// FromRGBA copies the pixels of img into a tightly packed buffer.
func FromRGBA(img *image.RGBA) (*PixelBuffer, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rowLen := w * bytesPerPixel
	pix := make([]byte, rowLen*h)
	for y := 0; y < h; y++ {
		start := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pix[y*rowLen:(y+1)*rowLen], img.Pix[start:start+rowLen])
	}
	return NewPixelBuffer(w, h, pix)
}

func (b *PixelBuffer) ToRGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: b.Width * bytesPerPixel,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &PixelBuffer{Width: b.Width, Height: b.Height, Pix: pix}
}

func (b *PixelBuffer) offset(x, y int) int {
	return (y*b.Width + x) * bytesPerPixel
}

// addRGB adds delta to the colour channels of the pixel at idx, leaving alpha alone.
func (b *PixelBuffer) addRGB(idx int, delta float64) {
	b.Pix[idx] = Clamp255(float64(b.Pix[idx]) + delta)
	b.Pix[idx+1] = Clamp255(float64(b.Pix[idx+1]) + delta)
	b.Pix[idx+2] = Clamp255(float64(b.Pix[idx+2]) + delta)
}
