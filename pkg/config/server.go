package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"artdisrupt/pkg/disruptor"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix    = "ARTDISRUPT__"
	envDelimiter = "__"

	DefaultPort          = "8080"
	DefaultLogLevel      = "info"
	DefaultMaxImageBytes = 25 * 1024 * 1024
	DefaultMaxPixels     = 50_000_000
)

var validate = validator.New()

type ServerConfig struct {
	Port           string `koanf:"port" validate:"required,numeric"`
	LogLevel       string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogJSON        bool   `koanf:"log_json"`
	MaxImageBytes  int64  `koanf:"max_image_bytes" validate:"gt=0"`
	MaxPixels      int    `koanf:"max_pixels" validate:"gt=0"`
	MetricsEnabled bool   `koanf:"metrics_enabled"`
	SwaggerEnabled bool   `koanf:"swagger_enabled"`
	Protect        struct {
		Preset         string `koanf:"preset" validate:"omitempty,oneof=minimal balanced strong maximum"`
		Seed           *int64 `koanf:"seed"`
		PngCompression string `koanf:"png_compression" validate:"omitempty,oneof=default none fast best"`
	} `koanf:"protect"`
}

func DefaultServerConfig() ServerConfig {
	c := ServerConfig{
		Port:           DefaultPort,
		LogLevel:       DefaultLogLevel,
		MaxImageBytes:  DefaultMaxImageBytes,
		MaxPixels:      DefaultMaxPixels,
		MetricsEnabled: true,
		SwaggerEnabled: true,
	}
	c.Protect.PngCompression = "best"
	return c
}

// LoadServerConfig merges defaults, the YAML file at path (if present) and env vars
// (prefix ARTDISRUPT__, nesting with __, e.g. ARTDISRUPT__PROTECT__PRESET).
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), envDelimiter, ".")
	}), nil)
	if err != nil {
		return cfg, fmt.Errorf("loading config from environment: %w", err)
	}

	if err = k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Protect.Preset = strings.ToLower(strings.TrimSpace(cfg.Protect.Preset))

	if err = validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ProtectConfig converts the protect section into the config used by image protectors.
func (c ServerConfig) ProtectConfig() (ProtectConfig, error) {
	compression := c.Protect.PngCompression
	if compression == "" {
		compression = "best"
	}
	level, err := ParsePngCompression(compression)
	if err != nil {
		return ProtectConfig{}, err
	}
	pc := ProtectConfig{
		Seed:                c.Protect.Seed,
		PngCompressionLevel: level,
		MaxPixels:           c.MaxPixels,
	}
	pc.Preset = disruptor.Preset(c.Protect.Preset)
	pc.PopulateUnsetConfigVars()
	return pc, pc.Validate()
}
