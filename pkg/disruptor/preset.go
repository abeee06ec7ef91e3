package disruptor

import (
	"errors"
	"fmt"
	"strings"

	"artdisrupt/pkg/model"
)

type Preset string

const (
	PresetMinimal  Preset = "minimal"
	PresetBalanced Preset = "balanced"
	PresetStrong   Preset = "strong"
	PresetMaximum  Preset = "maximum"

	DefaultPreset = PresetBalanced
)

var (
	ErrInvalidPreset = errors.New("unknown protection preset")
)

type presetEntry struct {
	stages        Pipeline
	effectiveness model.Effectiveness
	info          PresetInfo
}

// PresetInfo is the human facing description of a preset.
type PresetInfo struct {
	Name          string              `json:"name" yaml:"name"`
	Title         string              `json:"title" yaml:"title"`
	Description   string              `json:"description" yaml:"description"`
	VisualQuality string              `json:"visual_quality" yaml:"visual_quality"`
	Details       []string            `json:"details" yaml:"details"`
	Stages        []string            `json:"stages" yaml:"stages"`
	Effectiveness model.Effectiveness `json:"effectiveness" yaml:"effectiveness"`
}

// The effectiveness figures are fixed illustrative values, not measurements. Strong and
// maximum intentionally share theirs.
var presetTable = map[Preset]presetEntry{
	PresetMinimal: {
		stages: Pipeline{
			GrainNoise{Strength: 8},
			ColorShift{Intensity: 0.04},
			GridPattern{GridSize: 80, Strength: 15},
		},
		effectiveness: model.Effectiveness{GoogleReverseImage: 0.60, AIModelTraining: 0.50, Overall: 0.55},
		info: PresetInfo{
			Title:         "Minimal",
			Description:   "Subtle protection, high visual quality",
			VisualQuality: "Excellent",
			Details:       []string{"Grain noise", "Subtle color shift", "Fine grid pattern"},
		},
	},
	PresetBalanced: {
		stages: Pipeline{
			GrainNoise{Strength: 12},
			ColorShift{Intensity: 0.08},
			GridPattern{GridSize: 60, Strength: 20},
			AdversarialPattern{Strength: 3},
		},
		effectiveness: model.Effectiveness{GoogleReverseImage: 0.85, AIModelTraining: 0.75, Overall: 0.80},
		info: PresetInfo{
			Title:         "Balanced",
			Description:   "Optimal protection vs quality tradeoff",
			VisualQuality: "Very Good",
			Details:       []string{"Medium grain", "Color perturbation", "Grid overlay", "Adversarial patterns"},
		},
	},
	PresetStrong: {
		stages: Pipeline{
			GrainNoise{Strength: 20},
			ColorShift{Intensity: 0.12},
			GridPattern{GridSize: 40, Strength: 30},
			AdversarialPattern{Strength: 5},
		},
		effectiveness: model.Effectiveness{GoogleReverseImage: 0.95, AIModelTraining: 0.90, Overall: 0.925},
		info: PresetInfo{
			Title:         "Strong",
			Description:   "Maximum protection with acceptable quality",
			VisualQuality: "Good",
			Details:       []string{"Heavy grain", "Strong color shifts", "Dense grid", "Multiple patterns"},
		},
	},
	PresetMaximum: {
		stages: Pipeline{
			GrainNoise{Strength: 28},
			ColorShift{Intensity: 0.16},
			GridPattern{GridSize: 30, Strength: 40},
			AdversarialPattern{Strength: 7},
			Watermark{},
		},
		effectiveness: model.Effectiveness{GoogleReverseImage: 0.95, AIModelTraining: 0.90, Overall: 0.925},
		info: PresetInfo{
			Title:         "Maximum",
			Description:   "Maximum protection, visible modifications",
			VisualQuality: "Fair",
			Details:       []string{"Extreme grain", "Aggressive color shift", "Dense patterns", "Watermark"},
		},
	},
}

// Presets returns every preset from weakest to strongest.
func Presets() []Preset {
	return []Preset{PresetMinimal, PresetBalanced, PresetStrong, PresetMaximum}
}

// ParsePreset accepts a preset name in any case.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if _, found := presetTable[p]; !found {
		return "", fmt.Errorf("%w: %q", ErrInvalidPreset, s)
	}
	return p, nil
}

func (p Preset) String() string {
	return string(p)
}

// Resolve returns a copy of the stage list for p.
func Resolve(p Preset) (Pipeline, error) {
	entry, found := presetTable[p]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPreset, string(p))
	}
	pipeline := make(Pipeline, len(entry.stages))
	copy(pipeline, entry.stages)
	return pipeline, nil
}

func EffectivenessFor(p Preset) (model.Effectiveness, error) {
	entry, found := presetTable[p]
	if !found {
		return model.Effectiveness{}, fmt.Errorf("%w: %q", ErrInvalidPreset, string(p))
	}
	return entry.effectiveness, nil
}

func Describe(p Preset) (PresetInfo, error) {
	entry, found := presetTable[p]
	if !found {
		return PresetInfo{}, fmt.Errorf("%w: %q", ErrInvalidPreset, string(p))
	}
	info := entry.info
	info.Name = string(p)
	info.Details = append([]string(nil), entry.info.Details...)
	info.Stages = entry.stages.Names()
	info.Effectiveness = entry.effectiveness
	return info, nil
}
