package config

// Presets maps scene name to the named render targets used on the site.
var Presets = map[string]map[string]*Config{
	"frontier": {
		"hero": {
			Scene: "frontier", Width: 1280, Height: 640, FPS: 60,
		},
		"banner": {
			Scene: "frontier", Width: 1600, Height: 420, FPS: 60,
		},
		"thumb": {
			Scene: "frontier", Width: 480, Height: 300, FPS: 30, PixelRatio: 1,
		},
	},
	"growth-blue": {
		"hero": {
			Scene: "growth-blue", Width: 960, Height: 480, FPS: 60,
		},
		"card": {
			Scene: "growth-blue", Width: 420, Height: 260, FPS: 60,
		},
		"slow": {
			Scene: "growth-blue", Width: 960, Height: 480, FPS: 60, DurationMs: 3600,
		},
	},
	"growth-green": {
		"hero": {
			Scene: "growth-green", Width: 960, Height: 480, FPS: 60,
		},
		"card": {
			Scene: "growth-green", Width: 420, Height: 260, FPS: 60,
		},
	},
}

func GetPreset(sceneName, preset string) *Config {
	scenePresets, ok := Presets[sceneName]
	if !ok {
		return nil
	}
	cfg, ok := scenePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(sceneName string) []string {
	scenePresets, ok := Presets[sceneName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	return names
}
