package image

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"testing"

	"artdisrupt/pkg/config"
	"artdisrupt/pkg/disruptor"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestProtect(t *testing.T) {
	for _, preset := range disruptor.Presets() {
		for _, randomizeOpaqueness := range []bool{false, true} {
			t.Run(preset.String()+"/"+getOpaquenessLabel(randomizeOpaqueness), func(t *testing.T) {
				t.Parallel()
				src := generateImage(testImageSize, testImageSize, randomizeOpaqueness)
				raw := encodeTestPNG(t, src)

				protector, err := NewImageProtector(config.ProtectConfig{Preset: preset, PngCompressionLevel: png.BestSpeed})
				if err != nil {
					t.Fatalf("Error creating protector: %v", err)
				}

				var out bytes.Buffer
				result, err := protector.Protect(raw, &out)
				if err != nil {
					t.Fatalf("Error protecting image: %v", err)
				}

				if result.OriginalSize != int64(len(raw)) {
					t.Errorf("expected original size %d, got %d", len(raw), result.OriginalSize)
				}
				if result.ProcessedSize != int64(out.Len()) {
					t.Errorf("expected processed size %d, got %d", out.Len(), result.ProcessedSize)
				}
				if result.Seed != disruptor.DefaultSeed || result.Preset != preset.String() {
					t.Errorf("unexpected preset/seed in result %+v", result)
				}
				if math.IsInf(float64(result.PSNR), 0) {
					t.Errorf("expected a finite PSNR")
				}

				decoded, err := png.Decode(&out)
				if err != nil {
					t.Fatalf("Output is not a PNG: %v", err)
				}
				if decoded.Bounds() != src.Bounds() {
					t.Errorf("output bounds %v differ from input %v", decoded.Bounds(), src.Bounds())
				}

				stats := protector.Stats()
				if stats.Decode <= 0 || stats.Disruption <= 0 || stats.OutputImageEncoding <= 0 {
					t.Errorf("expected all stages to be timed, got %+v", stats)
				}
			})
		}
	}
}

func TestProtectIsReproducible(t *testing.T) {
	raw := encodeTestPNG(t, generateImage(64, 64, false))
	cfg := config.ProtectConfig{Preset: disruptor.PresetStrong, Seed: int64Ptr(77)}

	var first, second bytes.Buffer
	for _, out := range []*bytes.Buffer{&first, &second} {
		protector, err := NewImageProtector(cfg)
		if err != nil {
			t.Fatalf("Error creating protector: %v", err)
		}
		if _, err = protector.Protect(raw, out); err != nil {
			t.Fatalf("Error protecting image: %v", err)
		}
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("same input, preset and seed produced different output")
	}
}

func TestNewImageProtectorRejectsUnknownPreset(t *testing.T) {
	_, err := NewImageProtector(config.ProtectConfig{Preset: "bogus"})
	if !errors.Is(err, disruptor.ErrInvalidPreset) {
		t.Errorf("expected ErrInvalidPreset, got %v", err)
	}
}

func TestProtectPropagatesDecodeErrors(t *testing.T) {
	protector, err := NewImageProtector(config.ProtectConfig{})
	if err != nil {
		t.Fatalf("Error creating protector: %v", err)
	}
	var out bytes.Buffer
	_, err = protector.Protect([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0}, &out)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written on failure")
	}
}

func getOpaquenessLabel(randomizeOpaqueness bool) string {
	if randomizeOpaqueness {
		return "non-opaque"
	}
	return "opaque"
}
