package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScene  = "frontier"
	DefaultWidth  = 1280.0
	DefaultHeight = 640.0
	DefaultFPS    = 60
)

// Config describes one render target. Zero values mean "scene default":
// PixelRatio 0 detects the host ratio, DurationMs 0 keeps the variant's
// reveal duration, empty palette fields keep the built-in colors.
type Config struct {
	Scene      string        `yaml:"scene"`
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	PixelRatio float64       `yaml:"pixel_ratio"`
	FPS        int           `yaml:"fps"`
	DurationMs int           `yaml:"duration_ms"`
	DataDir    string        `yaml:"data_dir"`
	Palette    PaletteConfig `yaml:"palette"`
}

// PaletteConfig overrides growth-variant colors with "#rrggbb" values.
type PaletteConfig struct {
	Background string `yaml:"background"`
	Line       string `yaml:"line"`
	Glow       string `yaml:"glow"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:   DefaultScene,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		FPS:     DefaultFPS,
		DataDir: "renders",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
