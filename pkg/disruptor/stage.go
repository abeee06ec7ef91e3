package disruptor

import (
	"math"
)

// Stage is a single in place pixel transform. Stages that need randomness draw from gen, in
// row-major pixel order, so the draw order across a pipeline is fixed.
type Stage interface {
	Name() string
	Apply(buf *PixelBuffer, gen *Generator)
}

// Pipeline is an ordered list of stages resolved from a preset.
type Pipeline []Stage

func (p Pipeline) Apply(buf *PixelBuffer, gen *Generator) {
	for _, stage := range p {
		stage.Apply(buf, gen)
	}
}

func (p Pipeline) Names() []string {
	names := make([]string, 0, len(p))
	for _, stage := range p {
		names = append(names, stage.Name())
	}
	return names
}

// GrainNoise adds the same random offset to R, G and B of every pixel.
type GrainNoise struct {
	Strength float64
}

func (GrainNoise) Name() string { return "grain_noise" }

func (s GrainNoise) Apply(buf *PixelBuffer, gen *Generator) {
	for i := 0; i < len(buf.Pix); i += bytesPerPixel {
		noise := (gen.Next() - 0.5) * s.Strength * 2
		buf.addRGB(i, noise)
	}
}

// ColorShift biases each colour channel of the whole image by one random amount.
type ColorShift struct {
	Intensity float64
}

func (ColorShift) Name() string { return "color_shift" }

func (s ColorShift) Apply(buf *PixelBuffer, gen *Generator) {
	rShift := (gen.Next() - 0.5) * s.Intensity * 255
	gShift := (gen.Next() - 0.5) * s.Intensity * 255
	bShift := (gen.Next() - 0.5) * s.Intensity * 255

	for i := 0; i < len(buf.Pix); i += bytesPerPixel {
		buf.Pix[i] = Clamp255(float64(buf.Pix[i]) + rShift)
		buf.Pix[i+1] = Clamp255(float64(buf.Pix[i+1]) + gShift)
		buf.Pix[i+2] = Clamp255(float64(buf.Pix[i+2]) + bShift)
	}
}

// GridPattern adds noise only to pixels on every GridSize-th row and column.
type GridPattern struct {
	GridSize int
	Strength float64
}

func (GridPattern) Name() string { return "grid_pattern" }

func (s GridPattern) Apply(buf *PixelBuffer, gen *Generator) {
	if s.GridSize <= 0 {
		return
	}
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			if y%s.GridSize == 0 || x%s.GridSize == 0 {
				noise := (gen.Next() - 0.5) * s.Strength
				buf.addRGB(buf.offset(x, y), noise)
			}
		}
	}
}

const (
	// Bounds of the summed sinusoids below: 0.3 + 0.2 + 0.25.
	adversarialMin = -0.75
	adversarialMax = 0.75
)

// AdversarialPattern overlays a fixed interference pattern. It depends only on pixel
// coordinates, so the generator is ignored.
type AdversarialPattern struct {
	Strength float64
}

func (AdversarialPattern) Name() string { return "adversarial_pattern" }

func (s AdversarialPattern) Apply(buf *PixelBuffer, _ *Generator) {
	for y := 0; y < buf.Height; y++ {
		fy := float64(y)
		for x := 0; x < buf.Width; x++ {
			fx := float64(x)
			pattern := math.Sin(fx*0.5+fy*0.3)*0.3 +
				math.Sin(fx*0.8-fy*0.6)*0.2 +
				math.Cos(fx*0.4+fy*0.9)*0.25

			normalized := (pattern - adversarialMin) / (adversarialMax - adversarialMin)
			perturbation := (normalized - 0.5) * 2 * s.Strength * 0.3
			buf.addRGB(buf.offset(x, y), perturbation)
		}
	}
}
