package model

import (
	"encoding/json"
	"math"
)

type Effectiveness struct {
	GoogleReverseImage float64 `json:"google_reverse_image" yaml:"google_reverse_image"`
	AIModelTraining    float64 `json:"ai_model_training" yaml:"ai_model_training"`
	Overall            float64 `json:"overall" yaml:"overall"`
}

type ProcessingResult struct {
	Preset           string        `json:"preset" yaml:"preset"`
	Seed             int64         `json:"seed" yaml:"seed"`
	Width            int           `json:"width" yaml:"width"`
	Height           int           `json:"height" yaml:"height"`
	OriginalSize     int64         `json:"original_size" yaml:"original_size"`
	ProcessedSize    int64         `json:"processed_size" yaml:"processed_size"`
	PSNR             PSNR          `json:"psnr" yaml:"psnr"`
	ProcessingTimeMs float64       `json:"processing_time_ms" yaml:"processing_time_ms"`
	HashDistance     int           `json:"hash_distance" yaml:"hash_distance"`
	Effectiveness    Effectiveness `json:"effectiveness" yaml:"effectiveness"`
}

// PSNR is a peak signal-to-noise ratio in dB. Identical images have an infinite PSNR, which
// encoding/json refuses, so it is written as the string "Infinity".
type PSNR float64

const infinityLiteral = "Infinity"

func (p PSNR) IsInf() bool {
	return math.IsInf(float64(p), 1)
}

func (p PSNR) MarshalJSON() ([]byte, error) {
	if p.IsInf() {
		return json.Marshal(infinityLiteral)
	}
	return json.Marshal(float64(p))
}

func (p *PSNR) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == infinityLiteral {
			*p = PSNR(math.Inf(1))
			return nil
		}
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = PSNR(f)
	return nil
}
