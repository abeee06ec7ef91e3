package config

import (
	"fmt"
	"image/png"
	"strings"

	"artdisrupt/pkg/disruptor"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

type ProtectConfig struct {
	Preset              disruptor.Preset
	Seed                *int64
	PngCompressionLevel png.CompressionLevel
	// MaxPixels caps width*height of accepted images, 0 disables the check.
	MaxPixels int
}

func (c *ProtectConfig) PopulateUnsetConfigVars() {
	if c.Preset == "" {
		c.Preset = disruptor.DefaultPreset
	}
	if c.Seed == nil {
		seed := disruptor.DefaultSeed
		c.Seed = &seed
	}
}

// SeedOrDefault returns the configured seed, falling back to disruptor.DefaultSeed.
func (c ProtectConfig) SeedOrDefault() int64 {
	if c.Seed == nil {
		return disruptor.DefaultSeed
	}
	return *c.Seed
}

func (c ProtectConfig) Validate() error {
	_, err := disruptor.ParsePreset(string(c.Preset))
	return err
}

func ParsePngCompression(name string) (png.CompressionLevel, error) {
	level, found := pngCompressionMapping[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return png.DefaultCompression, fmt.Errorf("unknown png compression %q, options are default, none, fast, best", name)
	}
	return level, nil
}
