package model

import (
	"time"
)

type ProtectStats struct {
	Decode              time.Duration `json:"decode" yaml:"decode"`
	Disruption          time.Duration `json:"disruption" yaml:"disruption"`
	OutputImageEncoding time.Duration `json:"output_image_encoding" yaml:"output_image_encoding"`
}
