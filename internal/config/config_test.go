package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scene != "frontier" {
		t.Errorf("expected scene frontier, got %s", cfg.Scene)
	}
	if cfg.Width <= 0 {
		t.Error("width should be positive")
	}
	if cfg.Height <= 0 {
		t.Error("height should be positive")
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.PixelRatio != 0 {
		t.Errorf("default pixel ratio should be 0 (host-detected), got %f", cfg.PixelRatio)
	}
	if cfg.DurationMs != 0 {
		t.Errorf("default duration override should be 0, got %d", cfg.DurationMs)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finmotif.yaml")
	data := []byte("scene: growth-green\nduration_ms: 2400\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Scene != "growth-green" {
		t.Errorf("expected scene growth-green, got %s", cfg.Scene)
	}
	if cfg.DurationMs != 2400 {
		t.Errorf("expected duration_ms 2400, got %d", cfg.DurationMs)
	}
	if cfg.Width != DefaultWidth {
		t.Errorf("unset width should keep default %v, got %v", DefaultWidth, cfg.Width)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("unset fps should keep default %d, got %d", DefaultFPS, cfg.FPS)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Scene = "growth-blue"
	cfg.Palette.Line = "#34d399"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Scene != "growth-blue" {
		t.Errorf("expected scene growth-blue, got %s", loaded.Scene)
	}
	if loaded.Palette.Line != "#34d399" {
		t.Errorf("expected palette line #34d399, got %s", loaded.Palette.Line)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("growth-blue", "card")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Width != 420 {
		t.Errorf("expected width 420, got %f", cfg.Width)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("frontier", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "hero")
	if cfg != nil {
		t.Error("expected nil for nonexistent scene")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("frontier")
	if len(presets) == 0 {
		t.Error("expected presets for frontier")
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent scene")
	}
}

func TestPresetScenesMatchKeys(t *testing.T) {
	for sceneName, scenePresets := range Presets {
		for preset, cfg := range scenePresets {
			if cfg.Scene != sceneName {
				t.Errorf("preset %s/%s names scene %s", sceneName, preset, cfg.Scene)
			}
		}
	}
}
