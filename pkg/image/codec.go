package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrDecode        = errors.New("could not decode image")
	ErrNotAnImage    = errors.New("supplied data is not an image")
	ErrImageTooLarge = errors.New("image exceeds the maximum allowed number of pixels")
)

// DetectImageType returns the MIME type of raw, failing with ErrNotAnImage for anything that is
// not an image.
func DetectImageType(raw []byte) (string, error) {
	mime := mimetype.Detect(raw)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotAnImage, mime.String())
	}
	return mime.String(), nil
}

// DecodeImage decodes raw into an RGBA image. maxPixels of 0 disables the size check.
func DecodeImage(raw []byte, maxPixels int) (*image.RGBA, string, error) {
	if _, err := DetectImageType(raw); err != nil {
		return nil, "", err
	}

	imgConfig, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if imgConfig.Width <= 0 || imgConfig.Height <= 0 {
		return nil, "", fmt.Errorf("%w: empty image %dx%d", ErrDecode, imgConfig.Width, imgConfig.Height)
	}
	if maxPixels > 0 && imgConfig.Width*imgConfig.Height > maxPixels {
		return nil, "", fmt.Errorf("%w: %dx%d", ErrImageTooLarge, imgConfig.Width, imgConfig.Height)
	}

	srcImage, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	// TODO: Work with 16-bit images instead of flattening them to 8 bits per channel
	img := image.NewRGBA(image.Rect(0, 0, srcImage.Bounds().Dx(), srcImage.Bounds().Dy()))
	draw.Draw(img, img.Bounds(), srcImage, srcImage.Bounds().Min, draw.Src)

	return img, format, nil
}

func EncodePNG(w io.Writer, img image.Image, level png.CompressionLevel) error {
	enc := png.Encoder{CompressionLevel: level}
	return enc.Encode(w, img)
}
