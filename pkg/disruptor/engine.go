package disruptor

import (
	"fmt"
	"time"

	"artdisrupt/pkg/model"
)

// Process runs the pipeline for preset over a copy of buf and reports PSNR, timing and the
// preset's effectiveness scores. buf is left untouched. OriginalSize and ProcessedSize are
// left zero, the codec that owns the encoded bytes fills them in.
func Process(buf *PixelBuffer, preset Preset, seed int64) (*PixelBuffer, model.ProcessingResult, error) {
	pipeline, err := Resolve(preset)
	if err != nil {
		return nil, model.ProcessingResult{}, err
	}
	effectiveness, err := EffectivenessFor(preset)
	if err != nil {
		return nil, model.ProcessingResult{}, err
	}
	if buf == nil {
		return nil, model.ProcessingResult{}, fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if _, err = NewPixelBuffer(buf.Width, buf.Height, buf.Pix); err != nil {
		return nil, model.ProcessingResult{}, err
	}

	working := buf.Clone()
	gen := NewGenerator(seed)

	start := time.Now()
	pipeline.Apply(working, gen)
	psnr, err := PSNR(buf.Pix, working.Pix)
	if err != nil {
		return nil, model.ProcessingResult{}, err
	}
	elapsed := time.Since(start)

	return working, model.ProcessingResult{
		Preset:           string(preset),
		Seed:             seed,
		Width:            working.Width,
		Height:           working.Height,
		PSNR:             model.PSNR(psnr),
		ProcessingTimeMs: float64(elapsed) / float64(time.Millisecond),
		Effectiveness:    effectiveness,
	}, nil
}
