package image

import (
	"bytes"
	"io"
	"time"

	"artdisrupt/pkg/config"
	"artdisrupt/pkg/disruptor"
	"artdisrupt/pkg/model"
)

// Protector decodes an image, runs it through the disruption pipeline and encodes the result as
// PNG. A Protector is not safe for concurrent use, create one per image.
type Protector struct {
	config config.ProtectConfig
	stats  model.ProtectStats
}

func NewImageProtector(pConfig config.ProtectConfig) (*Protector, error) {
	pConfig.PopulateUnsetConfigVars()
	if err := pConfig.Validate(); err != nil {
		return nil, err
	}
	return &Protector{config: pConfig}, nil
}

func (p *Protector) Stats() model.ProtectStats {
	return p.stats
}

func (p *Protector) Config() config.ProtectConfig {
	return p.config
}

// Protect writes the protected PNG for raw to output and returns the processing result, with
// OriginalSize set to len(raw) and ProcessedSize to the number of PNG bytes written.
func (p *Protector) Protect(raw []byte, output io.Writer) (model.ProcessingResult, error) {
	p.stats = model.ProtectStats{}

	decodeStart := time.Now()
	img, _, err := DecodeImage(raw, p.config.MaxPixels)
	p.stats.Decode = time.Since(decodeStart)
	if err != nil {
		return model.ProcessingResult{}, err
	}

	buf, err := disruptor.FromRGBA(img)
	if err != nil {
		return model.ProcessingResult{}, err
	}

	disruptStart := time.Now()
	processed, result, err := disruptor.Process(buf, p.config.Preset, p.config.SeedOrDefault())
	p.stats.Disruption = time.Since(disruptStart)
	if err != nil {
		return model.ProcessingResult{}, err
	}

	processedImage := processed.ToRGBA()
	result.HashDistance, err = PerceptualDistance(img, processedImage)
	if err != nil {
		return model.ProcessingResult{}, err
	}

	encodeStart := time.Now()
	encoded := bytes.NewBuffer(make([]byte, 0, len(raw))) // the output is usually close to the input in size
	err = EncodePNG(encoded, processedImage, p.config.PngCompressionLevel)
	p.stats.OutputImageEncoding = time.Since(encodeStart)
	if err != nil {
		return model.ProcessingResult{}, err
	}

	result.OriginalSize = int64(len(raw))
	result.ProcessedSize = int64(encoded.Len())

	if _, err = encoded.WriteTo(output); err != nil {
		return model.ProcessingResult{}, err
	}
	return result, nil
}
