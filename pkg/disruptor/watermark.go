package disruptor

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	watermarkGlyph   = "©"
	watermarkSize    = 48
	watermarkOpacity = 0.05
	watermarkDPI     = 72
	maxCoverageValue = 255.0
	maxChannelValue  = 255.0
)

var watermarkFont = mustParseFont(gobold.TTF)

func mustParseFont(ttf []byte) *opentype.Font {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("parsing embedded watermark font: %v", err))
	}
	return f
}

// Watermark blends a faint white copyright glyph into the centre of the image. Only pixels
// covered by the glyph change.
type Watermark struct{}

func (Watermark) Name() string { return "watermark" }

func (Watermark) Apply(buf *PixelBuffer, _ *Generator) {
	mask, err := watermarkMask()
	if err != nil {
		// The font is embedded, a failure here means the face options are broken.
		panic(err)
	}

	mb := mask.Bounds()
	originX := buf.Width/2 - mb.Dx()/2
	originY := buf.Height/2 - mb.Dy()/2

	for my := 0; my < mb.Dy(); my++ {
		y := originY + my
		if y < 0 || y >= buf.Height {
			continue
		}
		for mx := 0; mx < mb.Dx(); mx++ {
			x := originX + mx
			if x < 0 || x >= buf.Width {
				continue
			}
			coverage := mask.AlphaAt(mx, my).A
			if coverage == 0 {
				continue
			}
			alpha := watermarkOpacity * float64(coverage) / maxCoverageValue
			idx := buf.offset(x, y)
			for c := 0; c < 3; c++ {
				v := float64(buf.Pix[idx+c])
				buf.Pix[idx+c] = Clamp255(v + (maxChannelValue-v)*alpha)
			}
		}
	}
}

// watermarkMask rasterises the glyph into a coverage mask sized to its bounding box.
func watermarkMask() (*image.Alpha, error) {
	face, err := opentype.NewFace(watermarkFont, &opentype.FaceOptions{
		Size:    watermarkSize,
		DPI:     watermarkDPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating watermark face: %w", err)
	}
	defer face.Close()

	bounds, _ := font.BoundString(face, watermarkGlyph)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	height := (bounds.Max.Y - bounds.Min.Y).Ceil()
	mask := image.NewAlpha(image.Rect(0, 0, width, height))

	drawer := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	drawer.DrawString(watermarkGlyph)
	return mask, nil
}
